package usecase

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg        models.DispatchConfig
	repo       dispatch.DispatchRepo
	driverRepo dispatch.DriverRepo
	gw         dispatch.DispatchGW

	settings  *SettingsProvider
	clusterer *ProximityClusterer
	matcher   *DriverMatcher

	running atomic.Bool
	now     func() time.Time
	newID   func() string
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg models.DispatchConfig,
	batchSize int,
	repo dispatch.DispatchRepo,
	driverRepo dispatch.DriverRepo,
	gw dispatch.DispatchGW,
) *DispatchUC {
	fallback := models.PlatformSettings{
		DriverRadiusInMeters: cfg.DriverRadiusMeters,
		MaxOrdersPerGroup:    cfg.MaxOrdersPerGroup,
	}

	return &DispatchUC{
		cfg:        cfg,
		repo:       repo,
		driverRepo: driverRepo,
		gw:         gw,
		settings:   NewSettingsProvider(repo, cfg.SettingsTTL, fallback),
		clusterer:  NewProximityClusterer(gw, cfg.GroupingThresholdMeters, batchSize, cfg.Concurrency),
		matcher:    NewDriverMatcher(driverRepo),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}
