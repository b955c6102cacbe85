package dispatch

import (
	"context"
	"time"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// DispatchRepo defines data access for orders, task groups and platform settings
type DispatchRepo interface {
	ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error)
	ListTaskGroupsByStatus(ctx context.Context, statuses ...models.TaskGroupStatus) ([]*models.TaskGroup, error)

	// CreateTaskGroup writes a new group, overwriting any row with the same id,
	// and moves addedOrderIDs to the grouped status in the same transaction.
	CreateTaskGroup(ctx context.Context, group *models.TaskGroup, addedOrderIDs []string) error
	// UpdateTaskGroup overwrites an existing group and moves addedOrderIDs to
	// the grouped status in the same transaction.
	UpdateTaskGroup(ctx context.Context, group *models.TaskGroup, addedOrderIDs []string) error

	GetPlatformSettings(ctx context.Context) (*models.PlatformSettings, error)
}

// DriverRepo defines access to the driver location index and the pass lock
type DriverRepo interface {
	// FindDriversInRange returns drivers whose geohash lies in [lo, hi], in geohash order
	FindDriversInRange(ctx context.Context, lo, hi string) ([]*models.Driver, error)
	UpdateDriverLocation(ctx context.Context, driverID string, location models.DriverLocation, vehicleType string) error

	AcquirePassLock(ctx context.Context, owner string, ttl time.Duration) (bool, error)
	ReleasePassLock(ctx context.Context, owner string) error
}
