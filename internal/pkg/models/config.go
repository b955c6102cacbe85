package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Logger   LoggerConfig
	Dispatch DispatchConfig
	Distance DistanceConfig
	Pricing  PricingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AdminAPIKey     string
	QuoteRateLimit  int
	QuoteRatePeriod time.Duration
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DispatchConfig drives the periodic dispatch pass
type DispatchConfig struct {
	Enabled                 bool
	TickInterval            time.Duration
	SettingsTTL             time.Duration
	PassLockTTL             time.Duration
	DriverRadiusMeters      float64 // fallback when no platform settings row exists
	MaxOrdersPerGroup       int     // fallback when no platform settings row exists
	GroupingThresholdMeters float64
	Concurrency             int
}

// DistanceConfig configures the road distance matrix provider
type DistanceConfig struct {
	Provider   string // "google" or "haversine"
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	BatchSize  int
	CacheTTL   time.Duration
}

// PricingConfig contains quote pricing configuration
type PricingConfig struct {
	ServiceFeeRate float64 `json:"service_fee_rate"`
}
