package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
	"github.com/piresc/antarkan/services/dispatch/gateway"
	"github.com/piresc/antarkan/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clusterNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// orderAt places pickup on the -74 meridian and dropoff 0.1 degrees north of it,
// so pickup and dropoff distances between two orders are equal.
func orderAt(id string, lat float64) *models.Order {
	return &models.Order{
		ID:               id,
		CustomerID:       "customer-" + id,
		PickupLocation:   models.Place{Coordinate: models.Coordinate{Latitude: lat, Longitude: -74.0}},
		DeliveryLocation: models.Place{Coordinate: models.Coordinate{Latitude: lat + 0.1, Longitude: -74.0}},
		Priority:         models.PriorityStandard,
		Status:           models.OrderStatusPaymentReceived,
	}
}

func newTestClusterer(distances distanceComputer) *ProximityClusterer {
	c := NewProximityClusterer(distances, 3000, 10, 4)
	c.now = func() time.Time { return clusterNow }
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("tg-%d", n)
	}
	return c
}

func memberSets(groups []*models.TaskGroup) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = g.OrderIDs
	}
	return out
}

func TestFixtureDistances(t *testing.T) {
	o1, o2 := orderAt("1", 40.7000), orderAt("2", 40.7180)
	joins, alone := orderAt("3", 40.7090), orderAt("3", 40.6800)

	d := func(a, b *models.Order) float64 {
		return utils.HaversineMeters(a.PickupLocation.Coordinate, b.PickupLocation.Coordinate)
	}

	assert.Less(t, d(o1, o2), 3000.0)
	assert.Less(t, d(joins, o1), 3000.0)
	assert.Less(t, d(joins, o2), 3000.0)
	assert.Less(t, d(alone, o1), 3000.0)
	assert.Greater(t, d(alone, o2), 3000.0)
}

func TestCluster_EndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		order3   float64
		maxSize  int
		expected [][]string
	}{
		{
			name:     "order 3 near both members joins",
			order3:   40.7090,
			maxSize:  3,
			expected: [][]string{{"1", "2", "3"}, {"4"}},
		},
		{
			name:     "order 3 near order 1 only starts its own group",
			order3:   40.6800,
			maxSize:  3,
			expected: [][]string{{"1", "2"}, {"3"}, {"4"}},
		},
		{
			name:     "full group is skipped",
			order3:   40.7090,
			maxSize:  2,
			expected: [][]string{{"1", "2"}, {"3"}, {"4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClusterer(gateway.NewHaversineMatrixClient())
			orders := []*models.Order{
				orderAt("1", 40.7000),
				orderAt("2", 40.7180),
				orderAt("3", tt.order3),
				orderAt("4", 41.0000),
			}

			groups := c.Cluster(context.Background(), orders, nil, tt.maxSize)

			assert.Equal(t, tt.expected, memberSets(groups))
			for _, g := range groups {
				assert.Equal(t, models.TaskGroupStatusIdle, g.Status)
				assert.False(t, g.HasDriver())
				assert.Len(t, g.OrderIDValueMap, len(g.OrderIDs))
			}
		})
	}
}

func TestCluster_CentroidsAndGeohashes(t *testing.T) {
	c := newTestClusterer(gateway.NewHaversineMatrixClient())
	orders := []*models.Order{orderAt("1", 40.7000), orderAt("2", 40.7180), orderAt("3", 40.7090)}

	groups := c.Cluster(context.Background(), orders, nil, 3)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "tg-1", g.ID)
	assert.InDelta(t, 40.709, g.PickupCenter.Latitude, 1e-9)
	assert.InDelta(t, 40.809, g.DropoffCenter.Latitude, 1e-9)
	assert.InDelta(t, -74.0, g.PickupCenter.Longitude, 1e-9)
	assert.Equal(t, utils.Geohash(g.PickupCenter), g.PickupGeohash)
	assert.Equal(t, utils.Geohash(g.DropoffCenter), g.DropoffGeohash)
	assert.Len(t, g.PickupGeohash, 12)
	assert.Equal(t, clusterNow, g.CreatedAt)
}

func TestCluster_SingletonUsesOrderCoordinates(t *testing.T) {
	c := newTestClusterer(gateway.NewHaversineMatrixClient())
	order := orderAt("1", 40.7)

	groups := c.Cluster(context.Background(), []*models.Order{order}, nil, 3)

	require.Len(t, groups, 1)
	assert.Equal(t, order.PickupLocation.Coordinate, groups[0].PickupCenter)
	assert.Equal(t, order.DeliveryLocation.Coordinate, groups[0].DropoffCenter)
	assert.Equal(t, "customer-1", groups[0].OrderIDValueMap["1"].CustomerID)
}

func TestCluster_IdempotentOnStableInput(t *testing.T) {
	c := newTestClusterer(gateway.NewHaversineMatrixClient())
	orders := []*models.Order{orderAt("1", 40.7000), orderAt("2", 40.7180), orderAt("3", 40.6800), orderAt("4", 41.0)}

	first := c.Cluster(context.Background(), orders, nil, 3)
	noNew := c.Cluster(context.Background(), nil, first, 3)
	replayed := c.Cluster(context.Background(), orders, first, 3)

	assert.Equal(t, memberSets(first), memberSets(noNew))
	assert.Equal(t, memberSets(first), memberSets(replayed), "already grouped orders are skipped")
}

func TestCluster_JoinsExistingGroupWithoutMutatingInput(t *testing.T) {
	c := newTestClusterer(gateway.NewHaversineMatrixClient())
	member := orderAt("9", 40.7005)
	captured := clusterNow.Add(-time.Hour)
	existing := &models.TaskGroup{
		ID:              "existing",
		OrderIDs:        []string{"9"},
		OrderIDValueMap: map[string]models.OrderSnapshot{"9": member.Snapshot(captured)},
		PickupCenter:    member.PickupLocation.Coordinate,
		DropoffCenter:   member.DeliveryLocation.Coordinate,
		Status:          models.TaskGroupStatusIdle,
	}

	groups := c.Cluster(context.Background(), []*models.Order{orderAt("1", 40.7)}, []*models.TaskGroup{existing}, 3)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "existing", g.ID)
	assert.Equal(t, []string{"9", "1"}, g.OrderIDs)
	assert.InDelta(t, 40.70025, g.PickupCenter.Latitude, 1e-9)
	assert.Equal(t, captured, g.OrderIDValueMap["9"].CapturedAt, "existing snapshots are kept")
	assert.Equal(t, clusterNow, g.OrderIDValueMap["1"].CapturedAt)
	assert.Equal(t, clusterNow, g.UpdatedAt)

	assert.Equal(t, []string{"9"}, existing.OrderIDs)
	assert.Len(t, existing.OrderIDValueMap, 1)
}

func TestCluster_SkipsFullExistingGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockDispatchGW(ctrl)
	haversine := gateway.NewHaversineMatrixClient()

	full := &models.TaskGroup{
		ID:       "full",
		OrderIDs: []string{"8", "9"},
		OrderIDValueMap: map[string]models.OrderSnapshot{
			"8": orderAt("8", 40.7001).Snapshot(clusterNow),
			"9": orderAt("9", 40.7002).Snapshot(clusterNow),
		},
		Status: models.TaskGroupStatusIdle,
	}

	// members of full groups are never requested, so a single order asks for nothing
	gw.EXPECT().ComputeDistances(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(haversine.ComputeDistances).Times(0)

	c := newTestClusterer(gw)
	groups := c.Cluster(context.Background(), []*models.Order{orderAt("1", 40.7)}, []*models.TaskGroup{full}, 2)

	assert.Equal(t, [][]string{{"8", "9"}, {"1"}}, memberSets(groups))
}

func TestCluster_DistanceFailureKeepsOrdersApart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockDispatchGW(ctrl)
	gw.EXPECT().ComputeDistances(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError).
		AnyTimes()

	c := newTestClusterer(gw)
	orders := []*models.Order{orderAt("1", 40.7000), orderAt("2", 40.7001)}

	groups := c.Cluster(context.Background(), orders, nil, 3)

	assert.Equal(t, [][]string{{"1"}, {"2"}}, memberSets(groups))
}

func TestCluster_PartialDistancesNeedBothLegs(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockDispatchGW(ctrl)
	haversine := gateway.NewHaversineMatrixClient()

	// dropoff lookups fail, pickup lookups succeed
	gw.EXPECT().ComputeDistances(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error) {
			if origins[0].Latitude > 40.75 {
				return nil, assert.AnError
			}
			return haversine.ComputeDistances(ctx, origins, destinations)
		}).
		AnyTimes()

	c := newTestClusterer(gw)
	orders := []*models.Order{orderAt("1", 40.7000), orderAt("2", 40.7001)}

	groups := c.Cluster(context.Background(), orders, nil, 3)

	assert.Equal(t, [][]string{{"1"}, {"2"}}, memberSets(groups))
}

func TestCluster_BatchesDestinations(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockDispatchGW(ctrl)
	haversine := gateway.NewHaversineMatrixClient()

	var maxDestinations int
	gw.EXPECT().ComputeDistances(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error) {
			assert.Len(t, origins, 1)
			if len(destinations) > maxDestinations {
				maxDestinations = len(destinations)
			}
			return haversine.ComputeDistances(ctx, origins, destinations)
		}).
		AnyTimes()

	c := NewProximityClusterer(gw, 3000, 2, 1)
	var orders []*models.Order
	for i := 0; i < 6; i++ {
		orders = append(orders, orderAt(fmt.Sprintf("%d", i), 40.7+float64(i)*0.001))
	}

	groups := c.Cluster(context.Background(), orders, nil, 3)

	assert.Equal(t, 2, maxDestinations)
	assert.Len(t, groups, 2)
}

func TestCluster_NoOrdersReturnsInput(t *testing.T) {
	c := newTestClusterer(nil)
	groups := []*models.TaskGroup{{ID: "a"}}

	got := c.Cluster(context.Background(), nil, groups, 3)

	assert.Equal(t, groups, got)
}

func TestProximityTable_MissingIsInfinite(t *testing.T) {
	table := newProximityTable()
	table.set("b", "a", true, 100)

	pickup, dropoff := table.Distances("a", "b")

	assert.Equal(t, 100.0, pickup)
	assert.True(t, dropoff > 1e300)
	assert.False(t, table.Within("a", "b", 3000))

	table.set("a", "b", false, 200)
	assert.True(t, table.Within("b", "a", 3000))
}
