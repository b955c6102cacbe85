package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
)

const (
	defaultPassLockTTL  = 4 * time.Minute
	defaultTickInterval = 5 * time.Minute
)

// groupChange is a task group that must be written back after a pass
type groupChange struct {
	group         *models.TaskGroup
	created       bool
	addedOrderIDs []string
	newDriver     bool
}

// GetPlatformSettings returns the effective platform settings
func (uc *DispatchUC) GetPlatformSettings(ctx context.Context) models.PlatformSettings {
	return uc.settings.Get(ctx)
}

// RunPass clusters eligible orders into task groups, matches drivers and persists the result.
// Only one pass runs at a time across all instances sharing the lock store.
func (uc *DispatchUC) RunPass(ctx context.Context) (*models.DispatchPassReport, error) {
	report := &models.DispatchPassReport{
		PassID:    uc.newID(),
		StartedAt: uc.now(),
	}
	ctx = logger.WithContextFields(ctx, logger.PassID(report.PassID))

	if !uc.running.CompareAndSwap(false, true) {
		report.Skipped = true
		return report, models.ErrPassInProgress
	}
	defer uc.running.Store(false)

	ttl := uc.cfg.PassLockTTL
	if ttl <= 0 {
		ttl = defaultPassLockTTL
	}
	acquired, err := uc.driverRepo.AcquirePassLock(ctx, report.PassID, ttl)
	if err != nil {
		return report, fmt.Errorf("failed to acquire dispatch pass lock: %w", err)
	}
	if !acquired {
		report.Skipped = true
		return report, models.ErrPassInProgress
	}
	defer func() {
		if err := uc.driverRepo.ReleasePassLock(context.WithoutCancel(ctx), report.PassID); err != nil {
			logger.WarnCtx(ctx, "Failed to release dispatch pass lock", logger.Err(err))
		}
	}()

	settings := uc.settings.Get(ctx)

	orders, err := uc.repo.ListOrdersByStatus(ctx, models.OrderStatusPaymentReceived)
	if err != nil {
		return report, fmt.Errorf("failed to load eligible orders: %w", err)
	}
	groups, err := uc.repo.ListTaskGroupsByStatus(ctx, models.TaskGroupStatusIdle)
	if err != nil {
		return report, fmt.Errorf("failed to load open task groups: %w", err)
	}
	report.OrdersEligible = len(orders)
	report.GroupsOpen = len(groups)

	before := make(map[string]*models.TaskGroup, len(groups))
	for _, g := range groups {
		before[g.ID] = g
	}

	clustered := uc.clusterer.Cluster(ctx, orders, groups, settings.MaxOrdersPerGroup)

	matched := make(map[string]bool)
	for _, g := range clustered {
		if g.HasDriver() {
			continue
		}
		driver, err := uc.matcher.FindNearestDriver(ctx, g, settings.DriverRadiusInMeters)
		if err != nil {
			logger.WarnCtx(ctx, "Driver matching failed, task group stays unassigned",
				logger.TaskGroupID(g.ID), logger.Err(err))
			continue
		}
		if driver == nil {
			logger.DebugCtx(ctx, "No driver available for task group", logger.TaskGroupID(g.ID))
			continue
		}
		g.DriverID = driver.ID
		g.UpdatedAt = uc.now()
		matched[g.ID] = true
	}

	changes := diffGroups(before, clustered, matched)
	for _, ch := range changes {
		if ch.created {
			report.GroupsCreated++
		} else {
			report.GroupsUpdated++
		}
	}

	persisted := uc.persist(ctx, changes)
	for _, ch := range changes {
		if !persisted[ch.group.ID] {
			report.PersistFailures++
			continue
		}
		if ch.newDriver {
			report.DriversAssigned++
			uc.publishAssigned(ctx, ch.group)
		}
	}

	report.Duration = uc.now().Sub(report.StartedAt)
	logger.InfoCtx(ctx, "Dispatch pass completed",
		logger.Int("orders_eligible", report.OrdersEligible),
		logger.Int("groups_open", report.GroupsOpen),
		logger.Int("groups_created", report.GroupsCreated),
		logger.Int("groups_updated", report.GroupsUpdated),
		logger.Int("drivers_assigned", report.DriversAssigned),
		logger.Int("persist_failures", report.PersistFailures),
		logger.Duration("duration", report.Duration))

	return report, nil
}

// diffGroups keeps new groups and existing groups that gained members or a driver
func diffGroups(before map[string]*models.TaskGroup, after []*models.TaskGroup, matched map[string]bool) []groupChange {
	var changes []groupChange
	for _, g := range after {
		prev, existed := before[g.ID]
		if !existed {
			changes = append(changes, groupChange{
				group:         g,
				created:       true,
				addedOrderIDs: append([]string(nil), g.OrderIDs...),
				newDriver:     matched[g.ID],
			})
			continue
		}

		var added []string
		if len(g.OrderIDs) > len(prev.OrderIDs) {
			added = append([]string(nil), g.OrderIDs[len(prev.OrderIDs):]...)
		}
		if len(added) == 0 && !matched[g.ID] {
			continue
		}
		changes = append(changes, groupChange{
			group:         g,
			addedOrderIDs: added,
			newDriver:     matched[g.ID],
		})
	}
	return changes
}

// persist writes every change concurrently and returns the ids that were stored
func (uc *DispatchUC) persist(ctx context.Context, changes []groupChange) map[string]bool {
	concurrency := uc.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		failures atomic.Int32
		stored   = make(map[string]bool, len(changes))
		sem      = make(chan struct{}, concurrency)
	)
	for _, ch := range changes {
		wg.Add(1)
		sem <- struct{}{}
		go func(ch groupChange) {
			defer wg.Done()
			defer func() { <-sem }()

			var err error
			if ch.created {
				err = uc.repo.CreateTaskGroup(ctx, ch.group, ch.addedOrderIDs)
			} else {
				err = uc.repo.UpdateTaskGroup(ctx, ch.group, ch.addedOrderIDs)
			}
			if err != nil {
				failures.Add(1)
				logger.ErrorCtx(ctx, "Failed to persist task group",
					logger.TaskGroupID(ch.group.ID),
					logger.Bool("created", ch.created),
					logger.Strings("added_order_ids", ch.addedOrderIDs),
					logger.Err(err))
				return
			}

			mu.Lock()
			stored[ch.group.ID] = true
			mu.Unlock()
		}(ch)
	}
	wg.Wait()

	if n := failures.Load(); n > 0 {
		logger.WarnCtx(ctx, "Some task groups were not persisted and will be retried next pass",
			logger.Int("failures", int(n)))
	}
	return stored
}

func (uc *DispatchUC) publishAssigned(ctx context.Context, group *models.TaskGroup) {
	event := models.TaskGroupAssignedEvent{
		TaskGroupID:  group.ID,
		DriverID:     group.DriverID,
		OrderIDs:     append([]string(nil), group.OrderIDs...),
		PickupCenter: group.PickupCenter,
		AssignedAt:   group.UpdatedAt,
	}
	if err := uc.gw.PublishTaskGroupAssigned(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish task group assignment",
			logger.TaskGroupID(group.ID),
			logger.DriverID(group.DriverID),
			logger.Err(err))
	}
}

// RunScheduler runs a pass on every tick until ctx is cancelled
func (uc *DispatchUC) RunScheduler(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Dispatch scheduler started", logger.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Dispatch scheduler stopped")
			return
		case <-ticker.C:
			_, err := uc.RunPass(ctx)
			switch {
			case err == nil:
			case errors.Is(err, models.ErrPassInProgress):
				logger.Info("Dispatch pass skipped, another pass holds the lock")
			default:
				logger.Error("Dispatch pass failed", logger.Err(err))
			}
		}
	}
}
