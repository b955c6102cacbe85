package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/antarkan/internal/pkg/models"
)

// GetPlatformSettings reads the single platform settings row
func (r *DispatchRepo) GetPlatformSettings(ctx context.Context) (*models.PlatformSettings, error) {
	query := `
		SELECT driver_radius_meters, max_orders_per_group
		FROM platform_settings
		WHERE id = 1`

	var settings models.PlatformSettings
	if err := r.db.GetContext(ctx, &settings, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get platform settings: %w", err)
	}
	return &settings, nil
}
