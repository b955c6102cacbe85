package dispatch

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// DispatchUC defines the interface for order batching and driver dispatch
type DispatchUC interface {
	RunPass(ctx context.Context) (*models.DispatchPassReport, error)
	GetPlatformSettings(ctx context.Context) models.PlatformSettings
	HandleDriverLocation(ctx context.Context, event models.DriverLocationEvent) error
}
