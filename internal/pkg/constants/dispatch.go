package constants

// Dispatch tuning that is not operator-configurable
const (
	// GeohashPrecision is the geohash length stored for every coordinate
	GeohashPrecision = 12
	// DistanceCachePrecision is the geohash length used as distance cache key
	DistanceCachePrecision = 9
	// GroupingThresholdMeters is the max pickup and dropoff distance between co-batched orders
	GroupingThresholdMeters = 3000.0
	// MetersPerMile converts road distance for pricing
	MetersPerMile = 1609.344
)
