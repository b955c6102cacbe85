package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
)

func geoIndexMember(geohash, driverID string) string {
	return geohash + constants.GeoIndexSeparator + driverID
}

// FindDriversInRange scans the geohash index between lo and hi (inclusive) and loads
// each driver's hash. Members whose hash is gone or has moved are skipped.
func (r *DriverRepo) FindDriversInRange(ctx context.Context, lo, hi string) ([]*models.Driver, error) {
	client := r.redis.GetClient()

	members, err := client.ZRangeByLex(ctx, constants.KeyDriverGeoIndex, &redis.ZRangeBy{
		Min: "[" + lo,
		Max: "[" + hi,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to scan driver index: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	type indexed struct {
		id      string
		geohash string
		cmd     *redis.StringStringMapCmd
	}

	pipe := client.Pipeline()
	pending := make([]indexed, 0, len(members))
	for _, m := range members {
		sep := strings.LastIndex(m, constants.GeoIndexSeparator)
		if sep <= 0 || sep == len(m)-1 {
			continue
		}
		id := m[sep+1:]
		pending = append(pending, indexed{
			id:      id,
			geohash: m[:sep],
			cmd:     pipe.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverLocation, id)),
		})
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to load drivers: %w", err)
	}

	drivers := make([]*models.Driver, 0, len(pending))
	for _, p := range pending {
		fields, err := p.cmd.Result()
		if err != nil || len(fields) == 0 {
			continue
		}
		if fields[constants.FieldGeohash] != p.geohash {
			continue
		}

		driver, err := driverFromHash(p.id, fields)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping malformed driver entry", logger.DriverID(p.id), logger.Err(err))
			continue
		}
		drivers = append(drivers, driver)
	}
	return drivers, nil
}

func driverFromHash(id string, fields map[string]string) (*models.Driver, error) {
	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	driver := &models.Driver{
		ID:          id,
		VehicleType: fields[constants.FieldVehicleType],
		LatestLocation: models.DriverLocation{
			Coordinate: models.Coordinate{Latitude: lat, Longitude: lng},
			GeoHash:    fields[constants.FieldGeohash],
		},
	}

	if v, ok := fields[constants.FieldActiveTasks]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid active tasks: %w", err)
		}
		driver.ActiveTasks = n
	}
	if v, ok := fields[constants.FieldUpdatedAt]; ok && v != "" {
		ts, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("invalid updated_at: %w", err)
		}
		driver.LatestLocation.Timestamp = ts
	}
	return driver, nil
}

// moveDriver swaps the driver's index member and rewrites its hash in one step.
// KEYS: index, driver hash. ARGV: geohash field, new geohash, member suffix, field/value pairs.
var moveDriver = redis.NewScript(`local previous = redis.call("HGET", KEYS[2], ARGV[1])
if previous and previous ~= ARGV[2] then
	redis.call("ZREM", KEYS[1], previous .. ARGV[3])
end
redis.call("ZADD", KEYS[1], 0, ARGV[2] .. ARGV[3])
redis.call("HSET", KEYS[2], unpack(ARGV, 4))
return 1`)

// UpdateDriverLocation moves the driver in the geohash index and rewrites its location
// fields. The active task counter is owned by other flows and left alone.
func (r *DriverRepo) UpdateDriverLocation(ctx context.Context, driverID string, location models.DriverLocation, vehicleType string) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	args := []interface{}{
		constants.FieldGeohash,
		location.GeoHash,
		constants.GeoIndexSeparator + driverID,
		constants.FieldLatitude, strconv.FormatFloat(location.Coordinate.Latitude, 'f', -1, 64),
		constants.FieldLongitude, strconv.FormatFloat(location.Coordinate.Longitude, 'f', -1, 64),
		constants.FieldGeohash, location.GeoHash,
		constants.FieldUpdatedAt, location.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if vehicleType != "" {
		args = append(args, constants.FieldVehicleType, vehicleType)
	}

	err := moveDriver.Run(ctx, r.redis.GetClient(), []string{constants.KeyDriverGeoIndex, key}, args...).Err()
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}
	return nil
}
