package models

// VehicleClass is one tier of the capacity catalog
type VehicleClass struct {
	Type              string  `json:"type" db:"type"`
	CapacityCubicFeet float64 `json:"capacity_cubic_feet" db:"capacity_cubic_feet"`
	MaxWeightLbs      float64 `json:"max_weight_lbs" db:"max_weight_lbs"`
	BaseFeeUSD        float64 `json:"base_fee_usd" db:"base_fee_usd"`
	PricePerMileUSD   float64 `json:"price_per_mile_usd" db:"price_per_mile_usd"`
}

// ReferenceVehicleCatalog is the built-in catalog used when the store has none
func ReferenceVehicleCatalog() []VehicleClass {
	return []VehicleClass{
		{Type: "sedan", CapacityCubicFeet: 15, MaxWeightLbs: 500, BaseFeeUSD: 14.99, PricePerMileUSD: 2.25},
		{Type: "suv", CapacityCubicFeet: 35, MaxWeightLbs: 1000, BaseFeeUSD: 24.99, PricePerMileUSD: 2.75},
		{Type: "van", CapacityCubicFeet: 120, MaxWeightLbs: 3000, BaseFeeUSD: 39.99, PricePerMileUSD: 3.25},
		{Type: "truck", CapacityCubicFeet: 400, MaxWeightLbs: 7000, BaseFeeUSD: 74.99, PricePerMileUSD: 4.25},
		{Type: "freight", CapacityCubicFeet: 1000, MaxWeightLbs: 20000, BaseFeeUSD: 149.99, PricePerMileUSD: 5.75},
	}
}

// Quote is the priced capacity plan for a cart
type Quote struct {
	Vehicles      []VehicleAllocation `json:"vehicles"`
	DistanceMiles float64             `json:"distance_miles"`
	SubtotalUSD   float64             `json:"subtotal_usd"`
	TotalFeesUSD  float64             `json:"total_fees_usd"`
}

// QuoteRequest asks for a price before the order is paid
type QuoteRequest struct {
	Pickup   Coordinate `json:"pickup"`
	Dropoff  Coordinate `json:"dropoff"`
	Products []Product  `json:"products"`
	Priority Priority   `json:"priority"`
}
