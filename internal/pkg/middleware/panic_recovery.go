package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/antarkan/internal/pkg/logger"
)

// PanicRecoveryWithZapMiddleware recovers handler panics, logs them with a stack trace
// and answers 500 if nothing has been written yet
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	req := c.Request()

	requestID := c.Response().Header().Get(RequestIDHeader)
	if requestID == "" {
		requestID = req.Header.Get(RequestIDHeader)
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", req.UserAgent()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}
	err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":      "Internal Server Error",
		"message":    "An unexpected error occurred while processing your request",
		"request_id": requestID,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
