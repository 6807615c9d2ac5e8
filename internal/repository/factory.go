package repository

import (
	"errors"

	"github.com/navikt/freerooms/internal/config"
	"github.com/navikt/freerooms/internal/repository/memory"
	"github.com/navikt/freerooms/internal/repository/redis"
)

// NewRepository returns a Redis backed repository when enabled, otherwise an in-memory one.
// A non-positive snapshot TTL is replaced by config.DefaultSnapshotTTL in both cases.
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = config.DefaultSnapshotTTL
	}

	if !cfg.Enabled {
		return memory.NewRepository(cfg.SnapshotTTL), nil
	}

	repo, err := redis.NewRepository(cfg)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// IsNotFound reports whether err means no snapshot is stored
func IsNotFound(err error) bool {
	return errors.Is(err, memory.ErrNotFound) || errors.Is(err, redis.ErrNotFound)
}
