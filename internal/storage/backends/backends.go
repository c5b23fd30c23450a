// Package backends opens the storage.Backend selected by configuration.
package backends

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/observability"
	"github.com/cory-johannsen/armory/internal/storage"
	"github.com/cory-johannsen/armory/internal/storage/file"
	"github.com/cory-johannsen/armory/internal/storage/postgres"
	"github.com/cory-johannsen/armory/internal/storage/redis"
)

// Open returns the backend named by cfg.Storage.Backend.
//
// Precondition: cfg must have passed Validate; logger must be non-nil.
// Postcondition: Returns an open Backend the caller must Close, or a non-nil error.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.Backend, error) {
	log := observability.Component(logger, "storage").With(zap.String("backend", cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return file.New(cfg.Storage, log), nil
	case config.BackendPostgres:
		b, err := postgres.Open(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("opening postgres backend: %w", err)
		}
		return b, nil
	case config.BackendRedis:
		b, err := redis.Open(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("opening redis backend: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
