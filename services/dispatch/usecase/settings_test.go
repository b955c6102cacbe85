package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestSettingsProvider(t *testing.T) (*SettingsProvider, *mocks.MockDispatchRepo, *fakeClock) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDispatchRepo(ctrl)
	clock := &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}

	p := NewSettingsProvider(repo, time.Minute, models.PlatformSettings{DriverRadiusInMeters: 4000, MaxOrdersPerGroup: 2})
	p.now = clock.now
	return p, repo, clock
}

func TestSettingsProvider_CachesWithinTTL(t *testing.T) {
	p, repo, clock := newTestSettingsProvider(t)
	ctx := context.Background()

	repo.EXPECT().GetPlatformSettings(gomock.Any()).
		Return(&models.PlatformSettings{DriverRadiusInMeters: 8000, MaxOrdersPerGroup: 5}, nil).
		Times(1)

	first := p.Get(ctx)
	clock.t = clock.t.Add(30 * time.Second)
	second := p.Get(ctx)

	assert.Equal(t, models.PlatformSettings{DriverRadiusInMeters: 8000, MaxOrdersPerGroup: 5}, first)
	assert.Equal(t, first, second)
}

func TestSettingsProvider_RefreshesAfterTTL(t *testing.T) {
	p, repo, clock := newTestSettingsProvider(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetPlatformSettings(gomock.Any()).
			Return(&models.PlatformSettings{DriverRadiusInMeters: 8000, MaxOrdersPerGroup: 5}, nil),
		repo.EXPECT().GetPlatformSettings(gomock.Any()).
			Return(&models.PlatformSettings{DriverRadiusInMeters: 9000, MaxOrdersPerGroup: 6}, nil),
	)

	p.Get(ctx)
	clock.t = clock.t.Add(time.Minute)
	got := p.Get(ctx)

	assert.Equal(t, 9000.0, got.DriverRadiusInMeters)
	assert.Equal(t, 6, got.MaxOrdersPerGroup)
}

func TestSettingsProvider_NotFoundUsesFallback(t *testing.T) {
	p, repo, _ := newTestSettingsProvider(t)

	repo.EXPECT().GetPlatformSettings(gomock.Any()).Return(nil, models.ErrSettingsNotFound).Times(1)

	got := p.Get(context.Background())
	again := p.Get(context.Background())

	assert.Equal(t, models.PlatformSettings{DriverRadiusInMeters: 4000, MaxOrdersPerGroup: 2}, got)
	assert.Equal(t, got, again)
}

func TestSettingsProvider_ErrorServesStaleValue(t *testing.T) {
	p, repo, clock := newTestSettingsProvider(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetPlatformSettings(gomock.Any()).
			Return(&models.PlatformSettings{DriverRadiusInMeters: 8000, MaxOrdersPerGroup: 5}, nil),
		repo.EXPECT().GetPlatformSettings(gomock.Any()).Return(nil, assert.AnError),
	)

	p.Get(ctx)
	clock.t = clock.t.Add(2 * time.Minute)
	got := p.Get(ctx)

	assert.Equal(t, 8000.0, got.DriverRadiusInMeters)
}

func TestSettingsProvider_ErrorWithoutCacheUsesFallback(t *testing.T) {
	p, repo, _ := newTestSettingsProvider(t)

	repo.EXPECT().GetPlatformSettings(gomock.Any()).Return(nil, assert.AnError).Times(2)

	assert.Equal(t, 4000.0, p.Get(context.Background()).DriverRadiusInMeters)
	assert.Equal(t, 2, p.Get(context.Background()).MaxOrdersPerGroup, "failures are not cached")
}

func TestSettingsProvider_FillsZeroFields(t *testing.T) {
	p, repo, _ := newTestSettingsProvider(t)

	repo.EXPECT().GetPlatformSettings(gomock.Any()).
		Return(&models.PlatformSettings{DriverRadiusInMeters: 7000}, nil)

	got := p.Get(context.Background())

	assert.Equal(t, 7000.0, got.DriverRadiusInMeters)
	assert.Equal(t, 2, got.MaxOrdersPerGroup)
}

func TestSettingsProvider_Invalidate(t *testing.T) {
	p, repo, _ := newTestSettingsProvider(t)

	repo.EXPECT().GetPlatformSettings(gomock.Any()).
		Return(&models.PlatformSettings{DriverRadiusInMeters: 8000, MaxOrdersPerGroup: 5}, nil).
		Times(2)

	p.Get(context.Background())
	p.Invalidate()
	p.Get(context.Background())
}

func TestNewSettingsProvider_DefaultsFallback(t *testing.T) {
	p := NewSettingsProvider(nil, time.Minute, models.PlatformSettings{})

	assert.Equal(t, models.DefaultPlatformSettings(), p.fallback)
}
