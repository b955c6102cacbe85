package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/antarkan/internal/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware adds a unique request ID to each request and carries it in the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set("request_id", requestID)

			ctx := logger.WithContextFields(c.Request().Context(), logger.String("request_id", requestID))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// LoggerMiddleware logs every request once it has been served
func LoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the error response so the logged status is the real one
				c.Error(err)
			}

			req := c.Request()
			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path = path + "?" + req.URL.RawQuery
			}
			status := c.Response().Status

			fields := []logger.Field{
				logger.Int("status", status),
				logger.Duration("latency", time.Since(start)),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", req.Method),
				logger.String("path", path),
			}

			ctx := req.Context()
			switch {
			case status >= 500:
				logger.ErrorCtx(ctx, "Server error", append(fields, logger.Err(err))...)
			case status >= 400:
				logger.WarnCtx(ctx, "Client error", fields...)
			default:
				logger.InfoCtx(ctx, "Request processed", fields...)
			}

			return nil
		}
	}
}
