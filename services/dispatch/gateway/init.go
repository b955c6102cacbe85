package gateway

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// DispatchGW combines the distance provider and the event publisher
type DispatchGW struct {
	distances   DistanceClient
	natsGateway *NATSGateway
}

// NewDispatchGW creates the dispatch gateway
func NewDispatchGW(distances DistanceClient, publisher Publisher) *DispatchGW {
	return &DispatchGW{
		distances:   distances,
		natsGateway: NewNATSGateway(publisher),
	}
}

// ComputeDistances forwards to the distance provider
func (g *DispatchGW) ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error) {
	return g.distances.ComputeDistances(ctx, origins, destinations)
}

// PublishTaskGroupAssigned forwards to the NATS gateway
func (g *DispatchGW) PublishTaskGroupAssigned(ctx context.Context, event models.TaskGroupAssignedEvent) error {
	return g.natsGateway.PublishTaskGroupAssigned(ctx, event)
}
