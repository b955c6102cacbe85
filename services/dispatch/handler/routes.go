package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/antarkan/internal/pkg/middleware"
	natspkg "github.com/piresc/antarkan/internal/pkg/nats"
	"github.com/piresc/antarkan/services/dispatch"
	httpHandler "github.com/piresc/antarkan/services/dispatch/handler/http"
	natsHandler "github.com/piresc/antarkan/services/dispatch/handler/nats"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	locationNATS *natsHandler.LocationHandler
	adminAPIKey  string
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC, natsClient *natspkg.Client, adminAPIKey string) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		locationNATS: natsHandler.NewLocationHandler(dispatchUC, natsClient),
		adminAPIKey:  adminAPIKey,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/v1/dispatch", middleware.ValidateAPIKey(h.adminAPIKey))
	group.POST("/passes", h.dispatchHTTP.RunPass)
	group.GET("/settings", h.dispatchHTTP.GetSettings)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.locationNATS.InitNATSConsumers()
}

// Close unsubscribes the NATS consumers
func (h *Handler) Close() {
	h.locationNATS.Unsubscribe()
}
