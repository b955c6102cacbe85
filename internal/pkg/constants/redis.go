package constants

// Redis keys
const (
	// KeyDriverGeoIndex is a sorted set with score 0 whose members are
	// "<geohash>:<driver_id>", so ZRANGEBYLEX walks drivers in geohash order.
	KeyDriverGeoIndex = "drivers:geo"
	// KeyDriverLocation is a hash holding a driver's latest location and load.
	KeyDriverLocation = "driver:%s"
	// KeyDispatchPassLock guards a single dispatch pass across instances.
	KeyDispatchPassLock = "dispatch:pass:lock"
	// KeyDistance caches a road distance between two geohash cells.
	KeyDistance = "distance:%s:%s"
)

// Driver hash fields
const (
	FieldLatitude    = "lat"
	FieldLongitude   = "lng"
	FieldGeohash     = "geohash"
	FieldUpdatedAt   = "updated_at"
	FieldActiveTasks = "active_tasks"
	FieldVehicleType = "vehicle_type"
)

// GeoIndexSeparator joins geohash and driver id in the geo index member
const GeoIndexSeparator = ":"
