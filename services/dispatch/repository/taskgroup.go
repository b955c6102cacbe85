package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/piresc/antarkan/internal/pkg/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ListTaskGroupsByStatus returns task groups in any of the given statuses, oldest first
func (r *DispatchRepo) ListTaskGroupsByStatus(ctx context.Context, statuses ...models.TaskGroupStatus) ([]*models.TaskGroup, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	query := `
		SELECT id, driver_id, order_ids, order_snapshots,
			pickup_center_latitude, pickup_center_longitude, pickup_geohash,
			dropoff_center_latitude, dropoff_center_longitude, dropoff_geohash,
			status, created_at, updated_at
		FROM task_groups
		WHERE status = ANY($1)
		ORDER BY created_at, id`

	var rows []models.TaskGroupDTO
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(values)); err != nil {
		return nil, fmt.Errorf("failed to list task groups: %w", err)
	}

	groups := make([]*models.TaskGroup, 0, len(rows))
	for i := range rows {
		group, err := rows[i].ToTaskGroup()
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// CreateTaskGroup inserts the group, overwriting a row with the same id
func (r *DispatchRepo) CreateTaskGroup(ctx context.Context, group *models.TaskGroup, addedOrderIDs []string) error {
	dto, err := group.ToDTO()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO task_groups (
			id, driver_id, order_ids, order_snapshots,
			pickup_center_latitude, pickup_center_longitude, pickup_geohash,
			dropoff_center_latitude, dropoff_center_longitude, dropoff_geohash,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			driver_id = EXCLUDED.driver_id,
			order_ids = EXCLUDED.order_ids,
			order_snapshots = EXCLUDED.order_snapshots,
			pickup_center_latitude = EXCLUDED.pickup_center_latitude,
			pickup_center_longitude = EXCLUDED.pickup_center_longitude,
			pickup_geohash = EXCLUDED.pickup_geohash,
			dropoff_center_latitude = EXCLUDED.dropoff_center_latitude,
			dropoff_center_longitude = EXCLUDED.dropoff_center_longitude,
			dropoff_geohash = EXCLUDED.dropoff_geohash,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query,
		dto.ID,
		dto.DriverID,
		dto.OrderIDs,
		string(dto.OrderSnapshots),
		dto.PickupLatitude,
		dto.PickupLongitude,
		dto.PickupGeohash,
		dto.DropoffLatitude,
		dto.DropoffLongitude,
		dto.DropoffGeohash,
		dto.Status,
		dto.CreatedAt,
		dto.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to create task group %s: %w", group.ID, err)
	}

	if err := markGrouped(ctx, tx, addedOrderIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task group %s: %w", group.ID, err)
	}
	return nil
}

// UpdateTaskGroup overwrites the mutable fields of an existing group
func (r *DispatchRepo) UpdateTaskGroup(ctx context.Context, group *models.TaskGroup, addedOrderIDs []string) error {
	dto, err := group.ToDTO()
	if err != nil {
		return err
	}

	query := `
		UPDATE task_groups SET
			driver_id = $2,
			order_ids = $3,
			order_snapshots = $4,
			pickup_center_latitude = $5,
			pickup_center_longitude = $6,
			pickup_geohash = $7,
			dropoff_center_latitude = $8,
			dropoff_center_longitude = $9,
			dropoff_geohash = $10,
			status = $11,
			updated_at = $12
		WHERE id = $1`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query,
		dto.ID,
		dto.DriverID,
		dto.OrderIDs,
		string(dto.OrderSnapshots),
		dto.PickupLatitude,
		dto.PickupLongitude,
		dto.PickupGeohash,
		dto.DropoffLatitude,
		dto.DropoffLongitude,
		dto.DropoffGeohash,
		dto.Status,
		dto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update task group %s: %w", group.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task group %s not found", group.ID)
	}

	if err := markGrouped(ctx, tx, addedOrderIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task group %s: %w", group.ID, err)
	}
	return nil
}
