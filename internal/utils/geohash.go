package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/models"
)

// EarthRadiusMeters is the mean Earth radius used for every great-circle computation
const EarthRadiusMeters = 6371009.0

// Geohash encodes a coordinate at the standard storage precision
func Geohash(c models.Coordinate) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, constants.GeohashPrecision)
}

// GeohashWithPrecision encodes a coordinate with the given number of characters
func GeohashWithPrecision(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash returns the center of the geohash cell
func DecodeGeohash(hash string) (models.Coordinate, error) {
	if err := geohash.Validate(hash); err != nil {
		return models.Coordinate{}, err
	}
	lat, lng := geohash.DecodeCenter(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}, nil
}

// HaversineMeters returns the great-circle distance between two points in meters
func HaversineMeters(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Centroid returns the arithmetic mean of the coordinates
func Centroid(points []models.Coordinate) models.Coordinate {
	if len(points) == 0 {
		return models.Coordinate{}
	}
	var lat, lng float64
	for _, p := range points {
		lat += p.Latitude
		lng += p.Longitude
	}
	n := float64(len(points))
	return models.Coordinate{Latitude: lat / n, Longitude: lng / n}
}

// Destination returns the point reached by travelling distanceMeters on the
// given initial bearing (degrees clockwise from north) along a great circle.
func Destination(origin models.Coordinate, bearingDeg, distanceMeters float64) models.Coordinate {
	delta := distanceMeters / EarthRadiusMeters
	theta := toRadians(bearingDeg)
	phi1 := toRadians(origin.Latitude)
	lambda1 := toRadians(origin.Longitude)

	phi2 := math.Asin(math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta))
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*math.Sin(phi2),
	)

	lng := math.Mod(toDegrees(lambda2)+540, 360) - 180
	return models.Coordinate{Latitude: toDegrees(phi2), Longitude: lng}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
