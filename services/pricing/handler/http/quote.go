package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
	"github.com/piresc/antarkan/services/pricing"
)

// QuoteHandler handles HTTP requests for price quotes
type QuoteHandler struct {
	pricingUC pricing.PricingUC
}

// NewQuoteHandler creates a new quote HTTP handler
func NewQuoteHandler(pricingUC pricing.PricingUC) *QuoteHandler {
	return &QuoteHandler{
		pricingUC: pricingUC,
	}
}

// RegisterRoutes registers the quote routes behind the given middleware
func (h *QuoteHandler) RegisterRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.POST("/v1/quotes", h.CreateQuote, m...)
}

// CreateQuote prices a cart for a pickup and dropoff
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ctx := c.Request().Context()
	quote, err := h.pricingUC.Quote(ctx, req)
	switch {
	case errors.Is(err, models.ErrInvalidQuoteRequest):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrNoVehicleFits):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case err != nil:
		logger.ErrorCtx(ctx, "Failed to compute quote", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to compute quote")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote computed", quote)
}
