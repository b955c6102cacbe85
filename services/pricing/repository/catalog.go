package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/antarkan/internal/pkg/models"
)

// PricingRepo reads the vehicle class catalog from Postgres
type PricingRepo struct {
	db *sqlx.DB
}

// NewPricingRepository creates a new pricing repository
func NewPricingRepository(db *sqlx.DB) *PricingRepo {
	return &PricingRepo{db: db}
}

// ListVehicleClasses returns the catalog ordered by ascending capacity
func (r *PricingRepo) ListVehicleClasses(ctx context.Context) ([]models.VehicleClass, error) {
	query := `
		SELECT type, capacity_cubic_feet, max_weight_lbs, base_fee_usd, price_per_mile_usd
		FROM vehicle_classes
		ORDER BY capacity_cubic_feet, type`

	var classes []models.VehicleClass
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("failed to list vehicle classes: %w", err)
	}
	return classes, nil
}
