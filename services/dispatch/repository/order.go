package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/piresc/antarkan/internal/pkg/models"
)

// ListOrdersByStatus returns orders in the given status, oldest first
func (r *DispatchRepo) ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error) {
	query := `
		SELECT id, customer_id,
			pickup_address, pickup_latitude, pickup_longitude,
			delivery_address, delivery_latitude, delivery_longitude,
			products, priority, required_vehicles, total_fees_usd,
			status, created_at, updated_at
		FROM orders
		WHERE status = $1
		ORDER BY created_at, id`

	var rows []models.OrderDTO
	if err := r.db.SelectContext(ctx, &rows, query, status); err != nil {
		return nil, fmt.Errorf("failed to list orders with status %s: %w", status, err)
	}

	orders := make([]*models.Order, 0, len(rows))
	for i := range rows {
		order, err := rows[i].ToOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// markGrouped moves orders that are still eligible to the grouped status
func markGrouped(ctx context.Context, exec execer, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}

	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status = $3`

	if _, err := exec.ExecContext(ctx, query,
		models.OrderStatusGrouped,
		pq.Array(orderIDs),
		models.OrderStatusPaymentReceived,
	); err != nil {
		return fmt.Errorf("failed to mark orders as grouped: %w", err)
	}
	return nil
}
