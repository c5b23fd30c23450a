package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
)

// Backend implements storage.Backend over one connection pool.
type Backend struct {
	*WeaponRepository
	*DocumentRepository
	pool   *Pool
	logger *zap.Logger
}

var _ storage.Backend = (*Backend)(nil)

// Open connects to the database described by cfg.
//
// Postcondition: Returns a connected Backend, or a non-nil error when the
// database is unreachable or the migrations have not been applied.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Backend, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.CheckSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return NewBackend(pool, logger), nil
}

// NewBackend wraps an existing pool.
func NewBackend(pool *Pool, logger *zap.Logger) *Backend {
	return &Backend{
		WeaponRepository:   NewWeaponRepository(pool.DB(), logger),
		DocumentRepository: NewDocumentRepository(pool.DB()),
		pool:               pool,
		logger:             logger,
	}
}

// Save upserts w and logs the write.
func (b *Backend) Save(ctx context.Context, w *armory.Weapon) error {
	if err := b.WeaponRepository.Save(ctx, w); err != nil {
		return err
	}
	b.logger.Info("saved weapon", zap.String("name", w.Name))
	return nil
}

// Delete removes name and logs the removal.
func (b *Backend) Delete(ctx context.Context, name string) error {
	if err := b.WeaponRepository.Delete(ctx, name); err != nil {
		return err
	}
	b.logger.Info("deleted weapon", zap.String("name", name))
	return nil
}

// Close releases the pool.
func (b *Backend) Close() error {
	b.pool.Close()
	return nil
}
