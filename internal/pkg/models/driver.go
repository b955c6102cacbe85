package models

import "time"

// DriverLocation is the last position a driver reported
type DriverLocation struct {
	Coordinate Coordinate `json:"coordinate"`
	GeoHash    string     `json:"geohash"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Driver is the view of a driver the dispatcher reads from the location index
type Driver struct {
	ID             string         `json:"id"`
	ActiveTasks    int            `json:"active_tasks"`
	LatestLocation DriverLocation `json:"latest_location"`
	VehicleType    string         `json:"vehicle_type,omitempty"`
}

// DriverLocationEvent is published by the driver app on every location beacon
type DriverLocationEvent struct {
	DriverID    string    `json:"driver_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	VehicleType string    `json:"vehicle_type,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
