package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
)

// Quote prices a cart for the road distance between pickup and dropoff
func (uc *PricingUC) Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	if req.Priority == "" {
		req.Priority = models.PriorityStandard
	}
	if err := validateQuoteRequest(req); err != nil {
		return nil, err
	}

	catalog := uc.vehicleCatalog(ctx)

	meters, err := uc.tripDistance(ctx, req.Pickup, req.Dropoff)
	if err != nil {
		return nil, err
	}
	miles := meters / constants.MetersPerMile

	allocation, err := NewCapacityAllocator(catalog, uc.cfg.ServiceFeeRate).Allocate(req.Products, req.Priority, miles)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Quote computed",
		logger.Float64("distance_miles", miles),
		logger.Int("vehicle_lines", len(allocation.Vehicles)),
		logger.Float64("total_fees_usd", allocation.TotalFeesUSD))

	return &models.Quote{
		Vehicles:      allocation.Vehicles,
		DistanceMiles: roundCents(miles),
		SubtotalUSD:   allocation.SubtotalUSD,
		TotalFeesUSD:  allocation.TotalFeesUSD,
	}, nil
}

// vehicleCatalog falls back to the reference catalog when the store is empty or unreachable
func (uc *PricingUC) vehicleCatalog(ctx context.Context) []models.VehicleClass {
	catalog, err := uc.repo.ListVehicleClasses(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load vehicle catalog, using reference catalog", logger.Err(err))
		return models.ReferenceVehicleCatalog()
	}
	if len(catalog) == 0 {
		return models.ReferenceVehicleCatalog()
	}
	return catalog
}

func (uc *PricingUC) tripDistance(ctx context.Context, pickup, dropoff models.Coordinate) (float64, error) {
	entries, err := uc.gw.ComputeDistances(ctx, []models.Coordinate{pickup}, []models.Coordinate{dropoff})
	for _, entry := range entries {
		if entry.OriginIndex == 0 && entry.DestinationIndex == 0 {
			return entry.DistanceMeters, nil
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to compute trip distance: %w", err)
	}
	return 0, fmt.Errorf("failed to compute trip distance: no route between pickup and dropoff")
}

func validateQuoteRequest(req models.QuoteRequest) error {
	if !req.Pickup.Valid() {
		return fmt.Errorf("%w: invalid pickup coordinate", models.ErrInvalidQuoteRequest)
	}
	if !req.Dropoff.Valid() {
		return fmt.Errorf("%w: invalid dropoff coordinate", models.ErrInvalidQuoteRequest)
	}
	if !req.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", models.ErrInvalidQuoteRequest, req.Priority)
	}
	if len(req.Products) == 0 {
		return fmt.Errorf("%w: at least one product is required", models.ErrInvalidQuoteRequest)
	}
	if len(req.Products) > constants.MaxProductsPerQuote {
		return fmt.Errorf("%w: at most %d products per quote", models.ErrInvalidQuoteRequest, constants.MaxProductsPerQuote)
	}
	for i, p := range req.Products {
		d := p.Dimensions
		switch {
		case p.Quantity <= 0:
			return fmt.Errorf("%w: product %d has no quantity", models.ErrInvalidQuoteRequest, i)
		case p.Quantity > constants.MaxProductQuantity:
			return fmt.Errorf("%w: product %d quantity exceeds %d", models.ErrInvalidQuoteRequest, i, constants.MaxProductQuantity)
		case d.LengthIn <= 0 || d.WidthIn <= 0 || d.HeightIn <= 0:
			return fmt.Errorf("%w: product %d has invalid dimensions", models.ErrInvalidQuoteRequest, i)
		case p.WeightLbs < 0:
			return fmt.Errorf("%w: product %d has negative weight", models.ErrInvalidQuoteRequest, i)
		}
	}
	return nil
}
