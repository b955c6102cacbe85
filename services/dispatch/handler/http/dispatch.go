package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
	"github.com/piresc/antarkan/services/dispatch"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// RunPass triggers a dispatch pass outside of the scheduler tick
func (h *DispatchHandler) RunPass(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.dispatchUC.RunPass(ctx)
	if errors.Is(err, models.ErrPassInProgress) {
		return utils.ConflictResponse(c, err.Error())
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Manual dispatch pass failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to run dispatch pass: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispatch pass completed", report)
}

// GetSettings returns the platform settings the scheduler currently works with
func (h *DispatchHandler) GetSettings(c echo.Context) error {
	settings := h.dispatchUC.GetPlatformSettings(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Platform settings retrieved", settings)
}
