package http

import (
	"net/http"
	"time"

	"github.com/piresc/antarkan/internal/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// NewClient creates an HTTP client for outbound provider calls.
// Every round trip is logged without its query string, which carries API keys.
func NewClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingTransport{next: http.DefaultTransport},
	}
}

type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := []logger.Field{
		logger.String("method", req.Method),
		logger.String("host", req.URL.Host),
		logger.String("path", req.URL.Path),
		logger.Duration("latency", time.Since(start)),
	}
	ctx := req.Context()
	if err != nil {
		logger.WarnCtx(ctx, "Outbound request failed", append(fields, logger.Err(err))...)
		return nil, err
	}

	fields = append(fields, logger.Int("status", resp.StatusCode))
	if resp.StatusCode >= 500 {
		logger.WarnCtx(ctx, "Outbound request returned server error", fields...)
	} else {
		logger.DebugCtx(ctx, "Outbound request completed", fields...)
	}
	return resp, nil
}
