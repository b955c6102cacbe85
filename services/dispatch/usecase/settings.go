package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
)

type settingsReader interface {
	GetPlatformSettings(ctx context.Context) (*models.PlatformSettings, error)
}

// SettingsProvider serves platform settings from a TTL cache in front of the store.
// A stale value is preferred over the fallback when a refresh fails.
type SettingsProvider struct {
	store    settingsReader
	ttl      time.Duration
	fallback models.PlatformSettings
	now      func() time.Time

	mu        sync.Mutex
	cached    *models.PlatformSettings
	lastFetch time.Time
}

// NewSettingsProvider creates a settings cache with the given TTL and fallback values
func NewSettingsProvider(store settingsReader, ttl time.Duration, fallback models.PlatformSettings) *SettingsProvider {
	return &SettingsProvider{
		store:    store,
		ttl:      ttl,
		fallback: fallback.WithDefaults(models.DefaultPlatformSettings()),
		now:      time.Now,
	}
}

// Get returns the effective settings, refreshing from the store once the TTL has passed
func (p *SettingsProvider) Get(ctx context.Context) models.PlatformSettings {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.cached != nil && now.Sub(p.lastFetch) < p.ttl {
		return *p.cached
	}

	settings, err := p.store.GetPlatformSettings(ctx)
	switch {
	case err == nil:
		effective := settings.WithDefaults(p.fallback)
		p.cached = &effective
	case errors.Is(err, models.ErrSettingsNotFound):
		logger.DebugCtx(ctx, "No platform settings stored, using defaults")
		effective := p.fallback
		p.cached = &effective
	case p.cached != nil:
		logger.WarnCtx(ctx, "Failed to refresh platform settings, serving stale value", logger.Err(err))
		return *p.cached
	default:
		logger.WarnCtx(ctx, "Failed to load platform settings, using defaults", logger.Err(err))
		return p.fallback
	}

	p.lastFetch = now
	return *p.cached
}

// Invalidate forces the next Get to hit the store
func (p *SettingsProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = nil
}
