package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/antarkan/internal/pkg/config"
	"github.com/piresc/antarkan/internal/pkg/database"
	"github.com/piresc/antarkan/internal/pkg/health"
	httpclient "github.com/piresc/antarkan/internal/pkg/http"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/middleware"
	"github.com/piresc/antarkan/internal/pkg/models"
	natspkg "github.com/piresc/antarkan/internal/pkg/nats"
	"github.com/piresc/antarkan/internal/pkg/server"
	"github.com/piresc/antarkan/services/dispatch/gateway"
	"github.com/piresc/antarkan/services/dispatch/handler"
	"github.com/piresc/antarkan/services/dispatch/repository"
	"github.com/piresc/antarkan/services/dispatch/usecase"
	pricingHandler "github.com/piresc/antarkan/services/pricing/handler/http"
	pricingRepository "github.com/piresc/antarkan/services/pricing/repository"
	pricingUsecase "github.com/piresc/antarkan/services/pricing/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  appName,
	})
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	if configs.Database.AutoMigrate {
		if err := database.RunMigrations(postgresClient); err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.Err(err))
		}
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	distances := newDistanceClient(configs.Distance, redisClient)

	// Initialize repositories
	dispatchRepo := repository.NewDispatchRepository(postgresClient.GetDB())
	driverRepo := repository.NewDriverRepository(redisClient)
	pricingRepo := pricingRepository.NewPricingRepository(postgresClient.GetDB())

	// Initialize gateway
	dispatchGW := gateway.NewDispatchGW(distances, natsClient)

	// Initialize usecases
	dispatchUC := usecase.NewDispatchUC(configs.Dispatch, configs.Distance.BatchSize, dispatchRepo, driverRepo, dispatchGW)
	pricingUC := pricingUsecase.NewPricingUC(configs.Pricing, pricingRepo, distances)

	// Initialize handlers
	dispatchHandler := handler.NewHandler(dispatchUC, natsClient, configs.Server.AdminAPIKey)
	quoteHandler := pricingHandler.NewQuoteHandler(pricingUC)

	if err := dispatchHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware())

	health.RegisterHealthEndpoints(e, appName,
		health.CheckFunc{CheckName: "postgres", Fn: postgresClient.Ping},
		health.CheckFunc{CheckName: "redis", Fn: redisClient.Ping},
		health.CheckFunc{CheckName: "nats", Fn: func(context.Context) error {
			if !natsClient.IsConnected() {
				return errors.New("not connected")
			}
			return nil
		}},
	)

	dispatchHandler.RegisterRoutes(e)
	quoteHandler.RegisterRoutes(e,
		middleware.IPRateLimiter(configs.Server.QuoteRateLimit, configs.Server.QuoteRatePeriod, redisClient.GetClient()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	schedulerDone := make(chan struct{})
	if configs.Dispatch.Enabled {
		go func() {
			defer close(schedulerDone)
			dispatchUC.RunScheduler(ctx, configs.Dispatch.TickInterval)
		}()
	} else {
		logger.Warn("Dispatch scheduler disabled, passes run only on demand")
		close(schedulerDone)
	}

	shutdown := server.NewShutdownManager()
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdown.Register("nats consumers", func(context.Context) error {
		dispatchHandler.Close()
		return nil
	})

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, configs.Server.Port, shutdownTimeout)
	if err := srv.Run(ctx); err != nil {
		logger.Error("HTTP server stopped with error", logger.Err(err))
	}

	// let an in-flight pass finish before its stores close
	stop()
	<-schedulerDone

	cleanupCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown.Shutdown(cleanupCtx); err != nil {
		logger.Error("Shutdown completed with errors", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}

// newDistanceClient picks the matrix provider and puts the Redis cache in front of it
func newDistanceClient(cfg models.DistanceConfig, redisClient *database.RedisClient) gateway.DistanceClient {
	var provider gateway.DistanceClient = gateway.NewHaversineMatrixClient()

	if cfg.Provider == "google" && cfg.APIKey != "" {
		google, err := gateway.NewGoogleDistanceClient(cfg, httpclient.NewClient(cfg.Timeout))
		if err != nil {
			logger.Fatal("Failed to create distance matrix client", logger.Err(err))
		}
		provider = google
	} else {
		logger.Warn("No distance matrix API key configured, using straight-line distances",
			logger.String("provider", cfg.Provider))
	}

	if cfg.CacheTTL <= 0 {
		return provider
	}
	return gateway.NewCachedDistanceClient(redisClient.GetClient(), provider, cfg.CacheTTL)
}
