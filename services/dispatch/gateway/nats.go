package gateway

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
)

// Publisher is the subset of the NATS client the gateway needs
type Publisher interface {
	PublishJSON(subject string, v interface{}) error
}

// NATSGateway publishes dispatch events
type NATSGateway struct {
	publisher Publisher
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(publisher Publisher) *NATSGateway {
	return &NATSGateway{publisher: publisher}
}

// PublishTaskGroupAssigned announces that a driver was set on a task group
func (g *NATSGateway) PublishTaskGroupAssigned(ctx context.Context, event models.TaskGroupAssignedEvent) error {
	logger.DebugCtx(ctx, "Publishing task group assignment",
		logger.TaskGroupID(event.TaskGroupID),
		logger.DriverID(event.DriverID))
	return g.publisher.PublishJSON(constants.SubjectTaskGroupAssigned, event)
}
