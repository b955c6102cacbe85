package models

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// TaskGroupStatus represents the lifecycle state of a task group
type TaskGroupStatus string

const (
	TaskGroupStatusIdle       TaskGroupStatus = "idle"
	TaskGroupStatusInProgress TaskGroupStatus = "in-progress"
	TaskGroupStatusCompleted  TaskGroupStatus = "completed"
)

// OrderSnapshot is a copy of a member order taken when it joined the group.
// It is not a live view: later changes to the order are not reflected here.
type OrderSnapshot struct {
	OrderID          string              `json:"order_id"`
	CustomerID       string              `json:"customer_id"`
	PickupLocation   Place               `json:"pickup_location"`
	DeliveryLocation Place               `json:"delivery_location"`
	Priority         Priority            `json:"priority"`
	RequiredVehicles []VehicleAllocation `json:"required_vehicles"`
	TotalFeesUSD     float64             `json:"total_fees_usd"`
	CapturedAt       time.Time           `json:"captured_at"`
}

// TaskGroup is a batch of orders delivered as one multi-stop trip by one driver
type TaskGroup struct {
	ID              string                   `json:"id"`
	DriverID        string                   `json:"driver_id,omitempty"`
	OrderIDs        []string                 `json:"order_ids"`
	OrderIDValueMap map[string]OrderSnapshot `json:"order_id_value_map"`
	PickupCenter    Coordinate               `json:"pickup_center_coordinate"`
	PickupGeohash   string                   `json:"pickup_geohash"`
	DropoffCenter   Coordinate               `json:"dropoff_center_coordinate"`
	DropoffGeohash  string                   `json:"dropoff_geohash"`
	Status          TaskGroupStatus          `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// HasDriver reports whether a driver has been assigned
func (g *TaskGroup) HasDriver() bool {
	return g.DriverID != ""
}

// Contains reports whether orderID is a member of the group
func (g *TaskGroup) Contains(orderID string) bool {
	for _, id := range g.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate without aliasing the source
func (g *TaskGroup) Clone() *TaskGroup {
	c := *g
	c.OrderIDs = append([]string(nil), g.OrderIDs...)
	c.OrderIDValueMap = make(map[string]OrderSnapshot, len(g.OrderIDValueMap))
	for k, v := range g.OrderIDValueMap {
		c.OrderIDValueMap[k] = v
	}
	return &c
}

// TaskGroupDTO is the flattened row shape of the task_groups table
type TaskGroupDTO struct {
	ID               string          `db:"id"`
	DriverID         sql.NullString  `db:"driver_id"`
	OrderIDs         pq.StringArray  `db:"order_ids"`
	OrderSnapshots   []byte          `db:"order_snapshots"`
	PickupLatitude   float64         `db:"pickup_center_latitude"`
	PickupLongitude  float64         `db:"pickup_center_longitude"`
	PickupGeohash    string          `db:"pickup_geohash"`
	DropoffLatitude  float64         `db:"dropoff_center_latitude"`
	DropoffLongitude float64         `db:"dropoff_center_longitude"`
	DropoffGeohash   string          `db:"dropoff_geohash"`
	Status           TaskGroupStatus `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// ToDTO converts a TaskGroup into its row shape
func (g *TaskGroup) ToDTO() (*TaskGroupDTO, error) {
	snapshots, err := json.Marshal(g.OrderIDValueMap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order snapshots of task group %s: %w", g.ID, err)
	}

	return &TaskGroupDTO{
		ID:               g.ID,
		DriverID:         sql.NullString{String: g.DriverID, Valid: g.DriverID != ""},
		OrderIDs:         pq.StringArray(g.OrderIDs),
		OrderSnapshots:   snapshots,
		PickupLatitude:   g.PickupCenter.Latitude,
		PickupLongitude:  g.PickupCenter.Longitude,
		PickupGeohash:    g.PickupGeohash,
		DropoffLatitude:  g.DropoffCenter.Latitude,
		DropoffLongitude: g.DropoffCenter.Longitude,
		DropoffGeohash:   g.DropoffGeohash,
		Status:           g.Status,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}, nil
}

// ToTaskGroup converts the row into a TaskGroup
func (dto *TaskGroupDTO) ToTaskGroup() (*TaskGroup, error) {
	group := &TaskGroup{
		ID:              dto.ID,
		DriverID:        dto.DriverID.String,
		OrderIDs:        []string(dto.OrderIDs),
		OrderIDValueMap: map[string]OrderSnapshot{},
		PickupCenter:    Coordinate{Latitude: dto.PickupLatitude, Longitude: dto.PickupLongitude},
		PickupGeohash:   dto.PickupGeohash,
		DropoffCenter:   Coordinate{Latitude: dto.DropoffLatitude, Longitude: dto.DropoffLongitude},
		DropoffGeohash:  dto.DropoffGeohash,
		Status:          dto.Status,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}

	if len(dto.OrderSnapshots) > 0 {
		if err := json.Unmarshal(dto.OrderSnapshots, &group.OrderIDValueMap); err != nil {
			return nil, fmt.Errorf("failed to decode order snapshots of task group %s: %w", dto.ID, err)
		}
	}

	return group, nil
}
