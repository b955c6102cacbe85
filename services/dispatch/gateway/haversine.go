package gateway

import (
	"context"

	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
)

// averageSpeedMetersPerSecond turns straight-line meters into a rough drive time (~40 km/h)
const averageSpeedMetersPerSecond = 11.1

// HaversineMatrixClient answers distance requests with great-circle distances
type HaversineMatrixClient struct{}

// NewHaversineMatrixClient creates a straight-line distance client
func NewHaversineMatrixClient() *HaversineMatrixClient {
	return &HaversineMatrixClient{}
}

// ComputeDistances returns one entry for every origin/destination pair
func (c *HaversineMatrixClient) ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]models.DistanceEntry, 0, len(origins)*len(destinations))
	for i, o := range origins {
		for j, d := range destinations {
			meters := utils.HaversineMeters(o, d)
			entries = append(entries, models.DistanceEntry{
				OriginIndex:      i,
				DestinationIndex: j,
				DistanceMeters:   meters,
				DurationSeconds:  meters / averageSpeedMetersPerSecond,
			})
		}
	}
	return entries, nil
}
