package pricing

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// PricingUC defines the interface for quoting a cart before payment
type PricingUC interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
}
