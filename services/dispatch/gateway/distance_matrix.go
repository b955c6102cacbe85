package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/antarkan/internal/pkg/circuitbreaker"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/pkg/retry"
	"googlemaps.github.io/maps"
)

// retryableStatuses are Distance Matrix failures worth another attempt
var retryableStatuses = []string{"OVER_QUERY_LIMIT", "UNKNOWN_ERROR", "429", "500", "502", "503", "504"}

// GoogleDistanceClient fetches road distances from the Google Distance Matrix API
type GoogleDistanceClient struct {
	client  *maps.Client
	timeout time.Duration
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// NewGoogleDistanceClient creates a Distance Matrix client guarded by a circuit breaker and retrier
func NewGoogleDistanceClient(cfg models.DistanceConfig, httpClient *http.Client) (*GoogleDistanceClient, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(cfg.BaseURL))
	}
	if httpClient != nil {
		opts = append(opts, maps.WithHTTPClient(httpClient))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create distance matrix client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.IsRetryable = isRetryableDistanceError

	breakerCfg := circuitbreaker.DefaultConfig("distance-matrix")
	breakerCfg.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, context.Canceled)
	}

	return &GoogleDistanceClient{
		client:  client,
		timeout: timeout,
		breaker: circuitbreaker.New(breakerCfg),
		retrier: retry.New("distance-matrix", retryCfg),
	}, nil
}

// ComputeDistances returns the OK cells of the origins x destinations matrix.
// Cells the API could not route are omitted.
func (c *GoogleDistanceClient) ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error) {
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, nil
	}

	req := &maps.DistanceMatrixRequest{
		Origins:      formatCoordinates(origins),
		Destinations: formatCoordinates(destinations),
		Mode:         maps.TravelModeDriving,
	}

	var resp *maps.DistanceMatrixResponse
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			r, err := c.client.DistanceMatrix(attemptCtx, req)
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
					return fmt.Errorf("distance matrix attempt timed out after %s: %w", c.timeout, err)
				}
				return err
			}
			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute distance matrix: %w", err)
	}

	var entries []models.DistanceEntry
	for i, row := range resp.Rows {
		for j, el := range row.Elements {
			if el == nil || el.Status != "OK" {
				continue
			}
			entries = append(entries, models.DistanceEntry{
				OriginIndex:      i,
				DestinationIndex: j,
				DistanceMeters:   float64(el.Distance.Meters),
				DurationSeconds:  el.Duration.Seconds(),
			})
		}
	}

	if missing := len(origins)*len(destinations) - len(entries); missing > 0 {
		logger.DebugCtx(ctx, "Distance matrix returned unroutable cells", logger.Int("missing", missing))
	}
	return entries, nil
}

func formatCoordinates(coords []models.Coordinate) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = strconv.FormatFloat(c.Latitude, 'f', 6, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', 6, 64)
	}
	return out
}

func isRetryableDistanceError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	for _, s := range retryableStatuses {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
