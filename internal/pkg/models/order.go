package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderStatus represents the lifecycle state of a delivery order
type OrderStatus string

const (
	OrderStatusPendingPayment  OrderStatus = "pending-payment"
	OrderStatusPaymentReceived OrderStatus = "payment-received"
	OrderStatusGrouped         OrderStatus = "grouped"
	OrderStatusInProgress      OrderStatus = "in-progress"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

// Priority is the delivery urgency chosen by the customer
type Priority string

const (
	PriorityStandard  Priority = "standard"
	PriorityExpedited Priority = "expedited"
	PriorityUrgent    Priority = "urgent"
)

// Valid reports whether p is a known priority level
func (p Priority) Valid() bool {
	switch p {
	case PriorityStandard, PriorityExpedited, PriorityUrgent:
		return true
	}
	return false
}

// Dimensions of a single product unit in inches
type Dimensions struct {
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// CubicFeet returns the unit volume in cubic feet
func (d Dimensions) CubicFeet() float64 {
	return d.LengthIn * d.WidthIn * d.HeightIn / 1728
}

// Product is one line of a customer's cart
type Product struct {
	Name       string     `json:"name"`
	Dimensions Dimensions `json:"dimensions"`
	WeightLbs  float64    `json:"weight_lbs"` // per unit
	Quantity   int        `json:"quantity"`
}

// VehicleAllocation is one vehicle-class line of an order's capacity plan
type VehicleAllocation struct {
	VehicleType    string    `json:"vehicle_type"`
	Quantity       int       `json:"quantity"`
	FeesUSD        float64   `json:"fees_usd"`
	WeightSplitLbs []float64 `json:"weight_split_lbs"`
}

// Order is a paid delivery request
type Order struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customer_id"`
	PickupLocation   Place               `json:"pickup_location"`
	DeliveryLocation Place               `json:"delivery_location"`
	Products         []Product           `json:"products"`
	Priority         Priority            `json:"priority"`
	RequiredVehicles []VehicleAllocation `json:"required_vehicles"`
	TotalFeesUSD     float64             `json:"total_fees_usd"`
	Status           OrderStatus         `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OrderDTO is the flattened row shape of the orders table
type OrderDTO struct {
	ID                string      `db:"id"`
	CustomerID        string      `db:"customer_id"`
	PickupAddress     string      `db:"pickup_address"`
	PickupLatitude    float64     `db:"pickup_latitude"`
	PickupLongitude   float64     `db:"pickup_longitude"`
	DeliveryAddress   string      `db:"delivery_address"`
	DeliveryLatitude  float64     `db:"delivery_latitude"`
	DeliveryLongitude float64     `db:"delivery_longitude"`
	Products          []byte      `db:"products"`
	Priority          Priority    `db:"priority"`
	RequiredVehicles  []byte      `db:"required_vehicles"`
	TotalFeesUSD      float64     `db:"total_fees_usd"`
	Status            OrderStatus `db:"status"`
	CreatedAt         time.Time   `db:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

// ToOrder converts the row into an Order
func (dto *OrderDTO) ToOrder() (*Order, error) {
	order := &Order{
		ID:         dto.ID,
		CustomerID: dto.CustomerID,
		PickupLocation: Place{
			Address:    dto.PickupAddress,
			Coordinate: Coordinate{Latitude: dto.PickupLatitude, Longitude: dto.PickupLongitude},
		},
		DeliveryLocation: Place{
			Address:    dto.DeliveryAddress,
			Coordinate: Coordinate{Latitude: dto.DeliveryLatitude, Longitude: dto.DeliveryLongitude},
		},
		Priority:     dto.Priority,
		TotalFeesUSD: dto.TotalFeesUSD,
		Status:       dto.Status,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}

	if len(dto.Products) > 0 {
		if err := json.Unmarshal(dto.Products, &order.Products); err != nil {
			return nil, fmt.Errorf("failed to decode products of order %s: %w", dto.ID, err)
		}
	}
	if len(dto.RequiredVehicles) > 0 {
		if err := json.Unmarshal(dto.RequiredVehicles, &order.RequiredVehicles); err != nil {
			return nil, fmt.Errorf("failed to decode required vehicles of order %s: %w", dto.ID, err)
		}
	}

	return order, nil
}

// Snapshot captures the order as it looks when it joins a task group
func (o *Order) Snapshot(at time.Time) OrderSnapshot {
	vehicles := make([]VehicleAllocation, len(o.RequiredVehicles))
	copy(vehicles, o.RequiredVehicles)

	return OrderSnapshot{
		OrderID:          o.ID,
		CustomerID:       o.CustomerID,
		PickupLocation:   o.PickupLocation,
		DeliveryLocation: o.DeliveryLocation,
		Priority:         o.Priority,
		RequiredVehicles: vehicles,
		TotalFeesUSD:     o.TotalFeesUSD,
		CapturedAt:       at,
	}
}
