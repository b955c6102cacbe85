package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	natspkg "github.com/piresc/antarkan/internal/pkg/nats"
	"github.com/piresc/antarkan/services/dispatch"
)

type LocationHandler struct {
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewLocationHandler creates a new driver location NATS handler
func NewLocationHandler(dispatchUC dispatch.DispatchUC, client *natspkg.Client) *LocationHandler {
	return &LocationHandler{
		dispatchUC: dispatchUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes the dispatch service to driver location updates.
// Replicas share one queue group so each update is indexed once.
func (h *LocationHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectDriverLocation, constants.QueueGroupDispatchService, func(msg *nats.Msg) {
		if err := h.handleDriverLocation(msg.Data); err != nil {
			logger.Error("Error handling driver location event",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectDriverLocation, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Subscribed to driver location updates",
		logger.String("subject", constants.SubjectDriverLocation),
		logger.String("queue", constants.QueueGroupDispatchService))
	return nil
}

// Unsubscribe drops every subscription made by InitNATSConsumers
func (h *LocationHandler) Unsubscribe() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = h.subs[:0]
}

func (h *LocationHandler) handleDriverLocation(data []byte) error {
	var event models.DriverLocationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal driver location event: %w", err)
	}

	return h.dispatchUC.HandleDriverLocation(context.Background(), event)
}
