package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file for local runs and builds the config from the environment
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_NAME", "dispatch-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9995)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("SERVER_QUOTE_RATE_LIMIT", 60)
	v.SetDefault("SERVER_QUOTE_RATE_PERIOD", "1m")

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 5)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("DISPATCH_ENABLED", true)
	v.SetDefault("DISPATCH_TICK_INTERVAL", "5m")
	v.SetDefault("DISPATCH_SETTINGS_TTL", "1m")
	v.SetDefault("DISPATCH_PASS_LOCK_TTL", "4m")
	v.SetDefault("DISPATCH_DRIVER_RADIUS_METERS", models.DefaultDriverRadiusInMeters)
	v.SetDefault("DISPATCH_MAX_ORDERS_PER_GROUP", models.DefaultMaxOrdersPerGroup)
	v.SetDefault("DISPATCH_GROUPING_THRESHOLD_METERS", constants.GroupingThresholdMeters)
	v.SetDefault("DISPATCH_CONCURRENCY", 5)

	v.SetDefault("DISTANCE_PROVIDER", "google")
	v.SetDefault("DISTANCE_TIMEOUT", "10s")
	v.SetDefault("DISTANCE_MAX_RETRIES", 3)
	v.SetDefault("DISTANCE_BATCH_SIZE", 10)
	v.SetDefault("DISTANCE_CACHE_TTL", "24h")

	v.SetDefault("PRICING_SERVICE_FEE_RATE", 0.06)

	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.AdminAPIKey = v.GetString("SERVER_ADMIN_API_KEY")
	configs.Server.QuoteRateLimit = v.GetInt("SERVER_QUOTE_RATE_LIMIT")
	configs.Server.QuoteRatePeriod = v.GetDuration("SERVER_QUOTE_RATE_PERIOD")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Dispatch config
	configs.Dispatch.Enabled = v.GetBool("DISPATCH_ENABLED")
	configs.Dispatch.TickInterval = v.GetDuration("DISPATCH_TICK_INTERVAL")
	configs.Dispatch.SettingsTTL = v.GetDuration("DISPATCH_SETTINGS_TTL")
	configs.Dispatch.PassLockTTL = v.GetDuration("DISPATCH_PASS_LOCK_TTL")
	configs.Dispatch.DriverRadiusMeters = v.GetFloat64("DISPATCH_DRIVER_RADIUS_METERS")
	configs.Dispatch.MaxOrdersPerGroup = v.GetInt("DISPATCH_MAX_ORDERS_PER_GROUP")
	configs.Dispatch.GroupingThresholdMeters = v.GetFloat64("DISPATCH_GROUPING_THRESHOLD_METERS")
	configs.Dispatch.Concurrency = v.GetInt("DISPATCH_CONCURRENCY")

	// Distance matrix config
	configs.Distance.Provider = v.GetString("DISTANCE_PROVIDER")
	configs.Distance.APIKey = v.GetString("DISTANCE_API_KEY")
	configs.Distance.BaseURL = v.GetString("DISTANCE_BASE_URL")
	configs.Distance.Timeout = v.GetDuration("DISTANCE_TIMEOUT")
	configs.Distance.MaxRetries = v.GetInt("DISTANCE_MAX_RETRIES")
	configs.Distance.BatchSize = v.GetInt("DISTANCE_BATCH_SIZE")
	configs.Distance.CacheTTL = v.GetDuration("DISTANCE_CACHE_TTL")

	// Pricing config
	configs.Pricing.ServiceFeeRate = v.GetFloat64("PRICING_SERVICE_FEE_RATE")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
