package utils

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineMeters(t *testing.T) {
	tests := []struct {
		name      string
		a         models.Coordinate
		b         models.Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			a:         models.Coordinate{Latitude: -6.175392, Longitude: 106.827153},
			b:         models.Coordinate{Latitude: -6.175392, Longitude: 106.827153},
			expected:  0,
			tolerance: 1e-6,
		},
		{
			name:      "One hundredth of a degree of latitude",
			a:         models.Coordinate{Latitude: 40.70, Longitude: -74.0},
			b:         models.Coordinate{Latitude: 40.71, Longitude: -74.0},
			expected:  EarthRadiusMeters * math.Pi / 180 * 0.01,
			tolerance: 0.01,
		},
		{
			name:      "Jakarta to Bandung (approximately)",
			a:         models.Coordinate{Latitude: -6.175392, Longitude: 106.827153},
			b:         models.Coordinate{Latitude: -6.914744, Longitude: 107.609810},
			expected:  120000,
			tolerance: 10000,
		},
		{
			name:      "Quarter of the equator",
			a:         models.Coordinate{Latitude: 0, Longitude: 0},
			b:         models.Coordinate{Latitude: 0, Longitude: 90},
			expected:  EarthRadiusMeters * math.Pi / 2,
			tolerance: 0.01,
		},
		{
			name:      "Across the antimeridian",
			a:         models.Coordinate{Latitude: 0, Longitude: 179.99},
			b:         models.Coordinate{Latitude: 0, Longitude: -179.99},
			expected:  EarthRadiusMeters * math.Pi / 180 * 0.02,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMeters(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
			assert.InDelta(t, got, HaversineMeters(tt.b, tt.a), 1e-9)
		})
	}
}

func TestGeohash(t *testing.T) {
	c := models.Coordinate{Latitude: 57.64911, Longitude: 10.40744}

	hash := Geohash(c)

	assert.Len(t, hash, 12)
	assert.True(t, strings.HasPrefix(hash, "u4pruydqqvj"))
	assert.Equal(t, "u4pru", GeohashWithPrecision(c, 5))
}

func TestDecodeGeohash(t *testing.T) {
	c, err := DecodeGeohash("u4pruydqqvj")
	require.NoError(t, err)
	assert.InDelta(t, 57.64911, c.Latitude, 1e-4)
	assert.InDelta(t, 10.40744, c.Longitude, 1e-4)

	_, err = DecodeGeohash("not a hash!")
	assert.Error(t, err)
}

func TestCentroid(t *testing.T) {
	got := Centroid([]models.Coordinate{
		{Latitude: 1, Longitude: 10},
		{Latitude: 3, Longitude: 20},
		{Latitude: 5, Longitude: 30},
	})
	assert.InDelta(t, 3.0, got.Latitude, 1e-12)
	assert.InDelta(t, 20.0, got.Longitude, 1e-12)

	assert.Equal(t, models.Coordinate{}, Centroid(nil))
}

func TestDestination(t *testing.T) {
	origin := models.Coordinate{Latitude: 40.7, Longitude: -74.0}
	for _, bearing := range []float64{0, 45, 90, 180, 270, 333} {
		dest := Destination(origin, bearing, 2500)
		assert.InDelta(t, 2500, HaversineMeters(origin, dest), 1e-3)
	}
}

func covered(ranges []GeohashRange, hash string) bool {
	for _, r := range ranges {
		if r.Contains(hash) {
			return true
		}
	}
	return false
}

func TestGeohashQueryBounds_CoversEveryPointInRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	centers := []models.Coordinate{
		{Latitude: 40.7128, Longitude: -74.0060},
		{Latitude: -6.175392, Longitude: 106.827153},
		{Latitude: 0, Longitude: 0},
		{Latitude: 0.0001, Longitude: 179.9999},
		{Latitude: -33.8688, Longitude: -179.999},
		{Latitude: 89.99, Longitude: 12.5},
		{Latitude: -89.5, Longitude: -100},
		{Latitude: 64.1466, Longitude: -21.9426},
	}
	radii := []float64{1, 150, 1000, 5000, 25000, 200000}

	for _, center := range centers {
		for _, radius := range radii {
			ranges := GeohashQueryBounds(center, radius)
			require.NotEmpty(t, ranges)

			for i := 0; i < 300; i++ {
				// uniform over the cap area, plus exact boundary points
				d := radius * math.Sqrt(rng.Float64())
				if i%10 == 0 {
					d = radius
				}
				p := Destination(center, rng.Float64()*360, d)
				hash := Geohash(p)
				assert.Truef(t, covered(ranges, hash),
					"point %v (%s) at %.2fm from %v not covered by %v", p, hash, d, center, ranges)
			}
		}
	}
}

func TestGeohashQueryBounds_RangesAreOrderedAndFew(t *testing.T) {
	ranges := GeohashQueryBounds(models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 5000)

	assert.LessOrEqual(t, len(ranges), maxBoundsCells)
	for i, r := range ranges {
		assert.Less(t, r.Lo, r.Hi)
		if i > 0 {
			assert.Less(t, ranges[i-1].Hi, r.Lo)
		}
	}
}

func TestGeohashQueryBounds_ZeroRadius(t *testing.T) {
	center := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	ranges := GeohashQueryBounds(center, 0)

	require.NotEmpty(t, ranges)
	assert.True(t, covered(ranges, Geohash(center)))
}

func TestGeohashQueryBounds_ExcludesFarPoints(t *testing.T) {
	ranges := GeohashQueryBounds(models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 1000)

	assert.False(t, covered(ranges, Geohash(models.Coordinate{Latitude: 34.0522, Longitude: -118.2437})))
}

func TestNextGeohash(t *testing.T) {
	assert.Equal(t, "1", nextGeohash("0"))
	assert.Equal(t, "b", nextGeohash("9"))
	assert.Equal(t, "u5", nextGeohash("u4"))
	assert.Equal(t, "v0", nextGeohash("uz"))
	assert.Equal(t, "", nextGeohash("zz"))
}

func TestMergeCells(t *testing.T) {
	got := mergeCells([]string{"u4", "u5", "u6", "u8", "uz", "v0"})

	assert.Equal(t, []GeohashRange{
		{Lo: "u4", Hi: "u6~"},
		{Lo: "u8", Hi: "u8~"},
		{Lo: "uz", Hi: "v0~"},
	}, got)
}
