package usecase

import (
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/services/pricing"
)

// PricingUC implements the quote flow
type PricingUC struct {
	cfg  models.PricingConfig
	repo pricing.PricingRepo
	gw   pricing.PricingGW
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(cfg models.PricingConfig, repo pricing.PricingRepo, gw pricing.PricingGW) *PricingUC {
	return &PricingUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}
