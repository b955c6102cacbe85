package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
)

// DistanceClient is any distance matrix provider
type DistanceClient interface {
	ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error)
}

// CachedDistanceClient serves distances from Redis and sends only misses to the next client
type CachedDistanceClient struct {
	redis *redis.Client
	next  DistanceClient
	ttl   time.Duration
}

// NewCachedDistanceClient wraps next with a Redis cache keyed by coarse geohashes
func NewCachedDistanceClient(client *redis.Client, next DistanceClient, ttl time.Duration) *CachedDistanceClient {
	return &CachedDistanceClient{redis: client, next: next, ttl: ttl}
}

func distanceKey(origin, destination models.Coordinate) string {
	return fmt.Sprintf(constants.KeyDistance,
		utils.GeohashWithPrecision(origin, constants.DistanceCachePrecision),
		utils.GeohashWithPrecision(destination, constants.DistanceCachePrecision))
}

// ComputeDistances returns cached cells plus whatever the next client resolves.
// Redis failures fall through to the next client.
func (c *CachedDistanceClient) ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error) {
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(origins)*len(destinations))
	for _, o := range origins {
		for _, d := range destinations {
			keys = append(keys, distanceKey(o, d))
		}
	}

	cached, err := c.redis.MGet(ctx, keys...).Result()
	if err != nil {
		logger.WarnCtx(ctx, "Distance cache read failed", logger.Err(err))
		cached = make([]interface{}, len(keys))
	}

	entries := make([]models.DistanceEntry, 0, len(keys))
	missOrigins := make(map[int]bool)
	missDests := make(map[int]bool)
	for i := range origins {
		for j := range destinations {
			idx := i*len(destinations) + j
			if meters, ok := parseCachedMeters(cached[idx]); ok {
				entries = append(entries, models.DistanceEntry{OriginIndex: i, DestinationIndex: j, DistanceMeters: meters})
				continue
			}
			missOrigins[i] = true
			missDests[j] = true
		}
	}
	if len(missOrigins) == 0 {
		return entries, nil
	}

	subOrigins, originIdx := subset(origins, missOrigins)
	subDests, destIdx := subset(destinations, missDests)

	fetched, fetchErr := c.next.ComputeDistances(ctx, subOrigins, subDests)

	have := make(map[[2]int]bool, len(entries))
	for _, e := range entries {
		have[[2]int{e.OriginIndex, e.DestinationIndex}] = true
	}

	pipe := c.redis.Pipeline()
	writes := 0
	for _, e := range fetched {
		if e.OriginIndex < 0 || e.OriginIndex >= len(originIdx) || e.DestinationIndex < 0 || e.DestinationIndex >= len(destIdx) {
			continue
		}
		i, j := originIdx[e.OriginIndex], destIdx[e.DestinationIndex]
		if have[[2]int{i, j}] {
			continue
		}
		have[[2]int{i, j}] = true

		e.OriginIndex, e.DestinationIndex = i, j
		entries = append(entries, e)
		pipe.Set(ctx, keys[i*len(destinations)+j], strconv.FormatFloat(e.DistanceMeters, 'f', -1, 64), c.ttl)
		writes++
	}
	if writes > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			logger.WarnCtx(ctx, "Distance cache write failed", logger.Int("entries", writes), logger.Err(err))
		}
	}

	if fetchErr != nil {
		return entries, fetchErr
	}
	return entries, nil
}

func parseCachedMeters(v interface{}) (float64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	meters, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return meters, true
}

// subset returns the selected coordinates in index order and the original index of each
func subset(coords []models.Coordinate, selected map[int]bool) ([]models.Coordinate, []int) {
	out := make([]models.Coordinate, 0, len(selected))
	idx := make([]int, 0, len(selected))
	for i, c := range coords {
		if selected[i] {
			out = append(out, c)
			idx = append(idx, i)
		}
	}
	return out, idx
}
