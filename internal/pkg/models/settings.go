package models

// PlatformSettings holds the operator-tunable dispatch parameters
type PlatformSettings struct {
	DriverRadiusInMeters float64 `json:"driver_radius_in_meters" db:"driver_radius_meters"`
	MaxOrdersPerGroup    int     `json:"max_orders_per_group" db:"max_orders_per_group"`
}

const (
	DefaultDriverRadiusInMeters = 5000
	DefaultMaxOrdersPerGroup    = 3
)

// DefaultPlatformSettings is used when no settings row exists
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		DriverRadiusInMeters: DefaultDriverRadiusInMeters,
		MaxOrdersPerGroup:    DefaultMaxOrdersPerGroup,
	}
}

// WithDefaults fills zero or negative fields from fallback
func (s PlatformSettings) WithDefaults(fallback PlatformSettings) PlatformSettings {
	if s.DriverRadiusInMeters <= 0 {
		s.DriverRadiusInMeters = fallback.DriverRadiusInMeters
	}
	if s.MaxOrdersPerGroup <= 0 {
		s.MaxOrdersPerGroup = fallback.MaxOrdersPerGroup
	}
	return s
}
