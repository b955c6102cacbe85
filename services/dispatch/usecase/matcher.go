package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
	"github.com/piresc/antarkan/services/dispatch"
)

// DriverMatcher picks a driver near a task group's pickup centre
type DriverMatcher struct {
	drivers dispatch.DriverRepo
}

// NewDriverMatcher creates a matcher over the driver location index
func NewDriverMatcher(drivers dispatch.DriverRepo) *DriverMatcher {
	return &DriverMatcher{drivers: drivers}
}

// FindNearestDriver returns the first idle driver inside the radius bounds, else the
// first driver found at all. A nil driver with a nil error means nobody is available.
// Results come from geohash ranges, so drivers slightly outside the radius are accepted.
func (m *DriverMatcher) FindNearestDriver(ctx context.Context, group *models.TaskGroup, radiusMeters float64) (*models.Driver, error) {
	bounds := utils.GeohashQueryBounds(group.PickupCenter, radiusMeters)

	var (
		found   []*models.Driver
		seen    = make(map[string]bool)
		failed  int
		lastErr error
	)
	for _, b := range bounds {
		drivers, err := m.drivers.FindDriversInRange(ctx, b.Lo, b.Hi)
		if err != nil {
			failed++
			lastErr = err
			logger.WarnCtx(ctx, "Driver range query failed",
				logger.TaskGroupID(group.ID),
				logger.String("lo", b.Lo),
				logger.String("hi", b.Hi),
				logger.Err(err))
			continue
		}
		for _, d := range drivers {
			if d == nil || seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			found = append(found, d)
		}
	}

	if len(bounds) > 0 && failed == len(bounds) {
		return nil, fmt.Errorf("failed to query drivers near task group %s: %w", group.ID, lastErr)
	}

	for _, d := range found {
		if d.ActiveTasks <= 0 {
			return d, nil
		}
	}
	if len(found) > 0 {
		return found[0], nil
	}
	return nil, nil
}
