package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
)

// HandleDriverLocation moves the driver to its reported position in the location index
func (uc *DispatchUC) HandleDriverLocation(ctx context.Context, event models.DriverLocationEvent) error {
	if event.DriverID == "" {
		return fmt.Errorf("driver location event without driver id")
	}

	coord := models.Coordinate{Latitude: event.Latitude, Longitude: event.Longitude}
	if !coord.Valid() {
		return fmt.Errorf("invalid coordinate %f,%f for driver %s", event.Latitude, event.Longitude, event.DriverID)
	}

	ts := event.Timestamp
	if ts.IsZero() {
		ts = uc.now()
	}

	location := models.DriverLocation{
		Coordinate: coord,
		GeoHash:    utils.Geohash(coord),
		Timestamp:  ts,
	}
	if err := uc.driverRepo.UpdateDriverLocation(ctx, event.DriverID, location, event.VehicleType); err != nil {
		return fmt.Errorf("failed to update location of driver %s: %w", event.DriverID, err)
	}

	logger.DebugCtx(ctx, "Driver location updated",
		logger.DriverID(event.DriverID),
		logger.String("geohash", location.GeoHash))
	return nil
}
