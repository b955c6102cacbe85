package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/internal/utils"
)

// ProximityClusterer batches eligible orders into task groups first-fit, in input order
type ProximityClusterer struct {
	distances   distanceComputer
	threshold   float64
	batchSize   int
	concurrency int
	now         func() time.Time
	newID       func() string
}

// NewProximityClusterer creates a clusterer that admits an order to a group only when
// both legs are within thresholdMeters of every member
func NewProximityClusterer(distances distanceComputer, thresholdMeters float64, batchSize, concurrency int) *ProximityClusterer {
	if thresholdMeters <= 0 {
		thresholdMeters = constants.GroupingThresholdMeters
	}
	return &ProximityClusterer{
		distances:   distances,
		threshold:   thresholdMeters,
		batchSize:   batchSize,
		concurrency: concurrency,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Cluster returns the open groups (copied, then extended) followed by any new groups.
// The input groups are not modified.
func (c *ProximityClusterer) Cluster(ctx context.Context, orders []*models.Order, groups []*models.TaskGroup, maxGroupSize int) []*models.TaskGroup {
	if len(orders) == 0 {
		return groups
	}

	result := make([]*models.TaskGroup, 0, len(groups)+len(orders))
	grouped := make(map[string]bool)
	for _, g := range groups {
		clone := g.Clone()
		for _, id := range clone.OrderIDs {
			grouped[id] = true
		}
		result = append(result, clone)
	}

	var candidates []*models.Order
	seen := make(map[string]bool)
	for _, o := range orders {
		if grouped[o.ID] || seen[o.ID] {
			logger.WarnCtx(ctx, "Skipping order already present in a task group", logger.OrderID(o.ID))
			continue
		}
		seen[o.ID] = true
		candidates = append(candidates, o)
	}
	if len(candidates) == 0 {
		return result
	}

	table := buildProximityTable(ctx, c.distances, orderStops(candidates), memberStops(result, maxGroupSize), c.batchSize, c.concurrency)

	now := c.now()
	for _, order := range candidates {
		if target := c.firstFit(table, result, order.ID, maxGroupSize); target != nil {
			addMember(target, order, now)
			logger.DebugCtx(ctx, "Order joined task group",
				logger.OrderID(order.ID),
				logger.TaskGroupID(target.ID),
				logger.Int("members", len(target.OrderIDs)))
			continue
		}

		group := c.newGroup(order, now)
		result = append(result, group)
		logger.DebugCtx(ctx, "Order seeded new task group",
			logger.OrderID(order.ID),
			logger.TaskGroupID(group.ID))
	}

	return result
}

func (c *ProximityClusterer) firstFit(table *ProximityTable, groups []*models.TaskGroup, orderID string, maxGroupSize int) *models.TaskGroup {
	for _, g := range groups {
		if len(g.OrderIDs) >= maxGroupSize {
			continue
		}
		fits := true
		for _, member := range g.OrderIDs {
			if !table.Within(orderID, member, c.threshold) {
				fits = false
				break
			}
		}
		if fits {
			return g
		}
	}
	return nil
}

func (c *ProximityClusterer) newGroup(order *models.Order, now time.Time) *models.TaskGroup {
	pickup := order.PickupLocation.Coordinate
	dropoff := order.DeliveryLocation.Coordinate

	return &models.TaskGroup{
		ID:       c.newID(),
		OrderIDs: []string{order.ID},
		OrderIDValueMap: map[string]models.OrderSnapshot{
			order.ID: order.Snapshot(now),
		},
		PickupCenter:   pickup,
		PickupGeohash:  utils.Geohash(pickup),
		DropoffCenter:  dropoff,
		DropoffGeohash: utils.Geohash(dropoff),
		Status:         models.TaskGroupStatusIdle,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// addMember appends the order and recomputes both centres from every member snapshot
func addMember(group *models.TaskGroup, order *models.Order, now time.Time) {
	group.OrderIDs = append(group.OrderIDs, order.ID)
	if group.OrderIDValueMap == nil {
		group.OrderIDValueMap = make(map[string]models.OrderSnapshot)
	}
	if _, ok := group.OrderIDValueMap[order.ID]; !ok {
		group.OrderIDValueMap[order.ID] = order.Snapshot(now)
	}

	pickups := make([]models.Coordinate, 0, len(group.OrderIDs))
	dropoffs := make([]models.Coordinate, 0, len(group.OrderIDs))
	for _, id := range group.OrderIDs {
		snap, ok := group.OrderIDValueMap[id]
		if !ok {
			continue
		}
		pickups = append(pickups, snap.PickupLocation.Coordinate)
		dropoffs = append(dropoffs, snap.DeliveryLocation.Coordinate)
	}

	group.PickupCenter = utils.Centroid(pickups)
	group.PickupGeohash = utils.Geohash(group.PickupCenter)
	group.DropoffCenter = utils.Centroid(dropoffs)
	group.DropoffGeohash = utils.Geohash(group.DropoffCenter)
	group.UpdatedAt = now
}

func orderStops(orders []*models.Order) []stop {
	stops := make([]stop, len(orders))
	for i, o := range orders {
		stops[i] = stop{
			orderID: o.ID,
			pickup:  o.PickupLocation.Coordinate,
			dropoff: o.DeliveryLocation.Coordinate,
		}
	}
	return stops
}

// memberStops lists members of groups that can still take an order
func memberStops(groups []*models.TaskGroup, maxGroupSize int) []stop {
	var stops []stop
	for _, g := range groups {
		if len(g.OrderIDs) >= maxGroupSize {
			continue
		}
		for _, id := range g.OrderIDs {
			snap, ok := g.OrderIDValueMap[id]
			if !ok {
				continue
			}
			stops = append(stops, stop{
				orderID: id,
				pickup:  snap.PickupLocation.Coordinate,
				dropoff: snap.DeliveryLocation.Coordinate,
			})
		}
	}
	return stops
}
