package pricing

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// PricingGW defines the external calls the quote flow makes
type PricingGW interface {
	ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error)
}
