package models

import "time"

// DistanceEntry is one cell of a distance matrix response
type DistanceEntry struct {
	OriginIndex      int     `json:"origin_index"`
	DestinationIndex int     `json:"destination_index"`
	DistanceMeters   float64 `json:"distance_meters"`
	DurationSeconds  float64 `json:"duration_seconds,omitempty"`
}

// TaskGroupAssignedEvent is published once a driver is set on a task group
type TaskGroupAssignedEvent struct {
	TaskGroupID  string     `json:"task_group_id"`
	DriverID     string     `json:"driver_id"`
	OrderIDs     []string   `json:"order_ids"`
	PickupCenter Coordinate `json:"pickup_center"`
	AssignedAt   time.Time  `json:"assigned_at"`
}

// DispatchPassReport summarises one scheduler pass
type DispatchPassReport struct {
	PassID          string        `json:"pass_id"`
	Skipped         bool          `json:"skipped"`
	OrdersEligible  int           `json:"orders_eligible"`
	GroupsOpen      int           `json:"groups_open"`
	GroupsCreated   int           `json:"groups_created"`
	GroupsUpdated   int           `json:"groups_updated"`
	DriversAssigned int           `json:"drivers_assigned"`
	PersistFailures int           `json:"persist_failures"`
	StartedAt       time.Time     `json:"started_at"`
	Duration        time.Duration `json:"duration"`
}
