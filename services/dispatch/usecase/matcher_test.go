package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherGroup() *models.TaskGroup {
	return &models.TaskGroup{
		ID:           "tg-1",
		PickupCenter: models.Coordinate{Latitude: 40.709, Longitude: -74.0},
	}
}

// firstCallReturns answers the first range query with drivers and every later one with nothing
func firstCallReturns(drivers ...*models.Driver) func(context.Context, string, string) ([]*models.Driver, error) {
	var once sync.Once
	return func(context.Context, string, string) ([]*models.Driver, error) {
		var out []*models.Driver
		once.Do(func() { out = drivers })
		return out, nil
	}
}

func TestFindNearestDriver_PrefersIdleDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)

	busy := &models.Driver{ID: "busy", ActiveTasks: 2}
	idle := &models.Driver{ID: "idle", ActiveTasks: 0}
	repo.EXPECT().FindDriversInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(firstCallReturns(busy, idle)).
		MinTimes(1)

	driver, err := NewDriverMatcher(repo).FindNearestDriver(context.Background(), matcherGroup(), 5000)

	require.NoError(t, err)
	require.NotNil(t, driver)
	assert.Equal(t, "idle", driver.ID)
}

func TestFindNearestDriver_FallsBackToBusyDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)

	repo.EXPECT().FindDriversInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(firstCallReturns(&models.Driver{ID: "busy-1", ActiveTasks: 1}, &models.Driver{ID: "busy-2", ActiveTasks: 3})).
		MinTimes(1)

	driver, err := NewDriverMatcher(repo).FindNearestDriver(context.Background(), matcherGroup(), 5000)

	require.NoError(t, err)
	require.NotNil(t, driver)
	assert.Equal(t, "busy-1", driver.ID)
}

func TestFindNearestDriver_NoDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)

	repo.EXPECT().FindDriversInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).MinTimes(1)

	driver, err := NewDriverMatcher(repo).FindNearestDriver(context.Background(), matcherGroup(), 5000)

	assert.NoError(t, err)
	assert.Nil(t, driver)
}

func TestFindNearestDriver_DedupesAcrossBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)

	busy := &models.Driver{ID: "busy", ActiveTasks: 1}
	var calls int
	repo.EXPECT().FindDriversInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) ([]*models.Driver, error) {
			calls++
			return []*models.Driver{busy}, nil
		}).
		MinTimes(1)

	driver, err := NewDriverMatcher(repo).FindNearestDriver(context.Background(), matcherGroup(), 5000)

	require.NoError(t, err)
	assert.Equal(t, "busy", driver.ID)
	assert.GreaterOrEqual(t, calls, 1)
}

func TestFindNearestDriver_SkipsFailedBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)

	var calls int
	repo.EXPECT().FindDriversInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) ([]*models.Driver, error) {
			calls++
			if calls == 1 {
				return nil, assert.AnError
			}
			return []*models.Driver{{ID: "d1"}}, nil
		}).
		MinTimes(1)

	// 3 km around the centre spans four geohash ranges
	driver, err := NewDriverMatcher(repo).FindNearestDriver(context.Background(), matcherGroup(), 3000)

	require.NoError(t, err)
	require.NotNil(t, driver)
	assert.Equal(t, "d1", driver.ID)
	assert.Equal(t, 4, calls)
}

func TestFindNearestDriver_AllBoundsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)

	repo.EXPECT().FindDriversInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError).MinTimes(1)

	driver, err := NewDriverMatcher(repo).FindNearestDriver(context.Background(), matcherGroup(), 5000)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, driver)
}

func TestFindNearestDriver_QueriesBoundsAroundPickupCenter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)

	var ranges [][2]string
	repo.EXPECT().FindDriversInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lo, hi string) ([]*models.Driver, error) {
			ranges = append(ranges, [2]string{lo, hi})
			return nil, nil
		}).
		MinTimes(1)

	_, err := NewDriverMatcher(repo).FindNearestDriver(context.Background(), matcherGroup(), 5000)
	require.NoError(t, err)

	covered := false
	for _, r := range ranges {
		// geohash of the pickup centre
		if "dr5rs4fg558e" >= r[0] && "dr5rs4fg558e" <= r[1] {
			covered = true
		}
	}
	assert.True(t, covered)
	assert.LessOrEqual(t, len(ranges), 9)
}
