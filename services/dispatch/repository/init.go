package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/antarkan/internal/pkg/database"
)

// DispatchRepo implements dispatch.DispatchRepo on Postgres
type DispatchRepo struct {
	db *sqlx.DB
}

// NewDispatchRepository creates a new Postgres dispatch repository
func NewDispatchRepository(db *sqlx.DB) *DispatchRepo {
	return &DispatchRepo{db: db}
}

// DriverRepo implements dispatch.DriverRepo on Redis
type DriverRepo struct {
	redis *database.RedisClient
}

// NewDriverRepository creates a new Redis driver repository
func NewDriverRepository(redis *database.RedisClient) *DriverRepo {
	return &DriverRepo{redis: redis}
}
