package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/logger"
)

// AcquirePassLock takes the dispatch pass lock for owner if nobody holds it
func (r *DriverRepo) AcquirePassLock(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	ok, err := r.redis.SetNX(ctx, constants.KeyDispatchPassLock, owner, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire pass lock: %w", err)
	}
	return ok, nil
}

// ReleasePassLock drops the lock only while owner still holds it
func (r *DriverRepo) ReleasePassLock(ctx context.Context, owner string) error {
	released, err := r.redis.CompareAndDelete(ctx, constants.KeyDispatchPassLock, owner)
	if err != nil {
		return fmt.Errorf("failed to release pass lock: %w", err)
	}
	if !released {
		logger.WarnCtx(ctx, "Pass lock was no longer held by this pass", logger.String("owner", owner))
	}
	return nil
}
