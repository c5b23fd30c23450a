// Package redis stores weapon, catalog and preset snapshots as JSON values
// in Redis. Weapon names are indexed in a set so List needs no key scan.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
)

const (
	weaponKeyPrefix = "weapon:"
	weaponIndexKey  = "weapons"
	catalogKey      = "catalog"
	presetsKey      = "presets"
)

// Client is the subset of go-redis the backend needs. *goredis.Client and
// cluster clients both satisfy it.
type Client interface {
	goredis.UniversalClient
}

// Backend implements storage.Backend on a Redis client.
type Backend struct {
	client Client
	prefix string
	logger *zap.Logger
}

var _ storage.Backend = (*Backend)(nil)

// Open builds a client from cfg and checks the server answers.
//
// Postcondition: Returns a connected Backend or a non-nil error.
func Open(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Backend, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: addr is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis %s: %w", cfg.Addr, err)
	}
	return New(client, cfg.KeyPrefix, logger), nil
}

// New wraps an existing client. Every key is prefixed with prefix.
//
// Precondition: client and logger must be non-nil.
func New(client Client, prefix string, logger *zap.Logger) *Backend {
	return &Backend{client: client, prefix: prefix, logger: logger}
}

func (b *Backend) weaponKey(name string) string { return b.prefix + weaponKeyPrefix + name }
func (b *Backend) indexKey() string             { return b.prefix + weaponIndexKey }

// List returns every indexed weapon sorted by name. Index entries whose
// value has vanished are skipped with a warning.
func (b *Backend) List(ctx context.Context) ([]*armory.Weapon, error) {
	names, err := b.client.SMembers(ctx, b.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("listing weapon index: %w", err)
	}
	sort.Strings(names)

	weapons := make([]*armory.Weapon, 0, len(names))
	for _, name := range names {
		raw, err := b.client.Get(ctx, b.weaponKey(name)).Bytes()
		if errors.Is(err, goredis.Nil) {
			b.logger.Warn("weapon indexed without a value", zap.String("name", name))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("getting weapon %q: %w", name, err)
		}
		var snap armory.WeaponSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			b.logger.Warn("skipping corrupt weapon", zap.String("name", name), zap.Error(err))
			continue
		}
		w, err := armory.WeaponFromSnapshot(snap)
		if err != nil {
			b.logger.Warn("skipping corrupt weapon", zap.String("name", name), zap.Error(err))
			continue
		}
		weapons = append(weapons, w)
	}
	return weapons, nil
}

// Save writes the weapon value and its index entry in one transaction.
func (b *Backend) Save(ctx context.Context, w *armory.Weapon) error {
	if w.Name == "" {
		return errors.New("saving weapon: name must not be empty")
	}
	data, err := json.Marshal(w.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding weapon %q: %w", w.Name, err)
	}
	pipe := b.client.TxPipeline()
	pipe.Set(ctx, b.weaponKey(w.Name), data, 0)
	pipe.SAdd(ctx, b.indexKey(), w.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("saving weapon %q: %w", w.Name, err)
	}
	b.logger.Info("saved weapon", zap.String("name", w.Name))
	return nil
}

// Delete removes the weapon value and its index entry.
//
// Postcondition: Returns storage.ErrWeaponNotFound when name is not indexed.
func (b *Backend) Delete(ctx context.Context, name string) error {
	pipe := b.client.TxPipeline()
	del := pipe.Del(ctx, b.weaponKey(name))
	rem := pipe.SRem(ctx, b.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting weapon %q: %w", name, err)
	}
	if del.Val() == 0 && rem.Val() == 0 {
		return fmt.Errorf("deleting %q: %w", name, storage.ErrWeaponNotFound)
	}
	b.logger.Info("deleted weapon", zap.String("name", name))
	return nil
}

// LoadCatalog returns the stored catalog, or an empty one when the key is absent.
func (b *Backend) LoadCatalog(ctx context.Context) (*armory.Catalog, error) {
	var snap armory.CatalogSnapshot
	found, err := b.load(ctx, catalogKey, &snap)
	if err != nil || !found {
		return armory.NewCatalog(), err
	}
	return armory.CatalogFromSnapshot(snap)
}

// SaveCatalog replaces the stored catalog.
func (b *Backend) SaveCatalog(ctx context.Context, c *armory.Catalog) error {
	return b.save(ctx, catalogKey, c.Snapshot())
}

// LoadPresets returns the stored presets, or an empty table when the key is absent.
func (b *Backend) LoadPresets(ctx context.Context) (*armory.Presets, error) {
	var snap armory.PresetsSnapshot
	found, err := b.load(ctx, presetsKey, &snap)
	if err != nil || !found {
		return armory.NewPresets(), err
	}
	return armory.PresetsFromSnapshot(snap)
}

// SavePresets replaces the stored presets.
func (b *Backend) SavePresets(ctx context.Context, p *armory.Presets) error {
	return b.save(ctx, presetsKey, p.Snapshot())
}

// Close closes the underlying client.
func (b *Backend) Close() error {
	return b.client.Close()
}

func (b *Backend) load(ctx context.Context, key string, into any) (bool, error) {
	raw, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("getting %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func (b *Backend) save(ctx context.Context, key string, snap any) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := b.client.Set(ctx, b.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	b.logger.Info("saved document", zap.String("key", b.prefix+key))
	return nil
}
