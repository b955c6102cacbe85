package pricing

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// PricingRepo defines access to the vehicle class catalog
type PricingRepo interface {
	// ListVehicleClasses returns the catalog ordered by ascending capacity
	ListVehicleClasses(ctx context.Context) ([]models.VehicleClass, error)
}
