package postgres

import (
	"context"

	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"

	"gorm.io/gorm"
)

type healthChecker struct {
	db *gorm.DB
}

// NewHealthChecker is the constructor for healthChecker.
func NewHealthChecker(db *gorm.DB) repository.HealthChecker {
	return &healthChecker{db: db}
}

// Ping checks the primary connection pool.
func (hc *healthChecker) Ping(ctx context.Context) error {
	sqlDB, err := hc.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	return nil
}
