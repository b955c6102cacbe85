package dispatch

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// DispatchGW defines the outbound dependencies of the dispatcher
type DispatchGW interface {
	// ComputeDistances returns road distances between every origin and destination.
	// Missing cells mean no distance is known; entries may be partial when an error is returned.
	ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error)
	PublishTaskGroupAssigned(ctx context.Context, event models.TaskGroupAssignedEvent) error
}
