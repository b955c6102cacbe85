package models

// Coordinate is a WGS84 point in degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within WGS84 ranges
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Place is a street address with its resolved coordinate
type Place struct {
	Address    string     `json:"address"`
	Coordinate Coordinate `json:"coordinate"`
}
