// Package storage defines the persistence contracts for weapons, the
// attachment catalog and presets. Backends live in subpackages.
package storage

import (
	"context"
	"errors"

	"github.com/cory-johannsen/armory/internal/game/armory"
)

//go:generate mockgen -destination=mock/storage.go -package=storagemock -source=storage.go

// ErrWeaponNotFound is returned when a named weapon has no stored record.
var ErrWeaponNotFound = errors.New("weapon not found")

// WeaponRepository persists whole weapon snapshots keyed by weapon name.
type WeaponRepository interface {
	// List returns every stored weapon in the backend's stable order.
	List(ctx context.Context) ([]*armory.Weapon, error)
	// Save creates or replaces the record for w.Name.
	Save(ctx context.Context, w *armory.Weapon) error
	// Delete removes the record for name, or returns ErrWeaponNotFound.
	Delete(ctx context.Context, name string) error
}

// CatalogRepository persists the attachment catalog as one document.
type CatalogRepository interface {
	// LoadCatalog returns the stored catalog, or an empty one when none is stored.
	LoadCatalog(ctx context.Context) (*armory.Catalog, error)
	SaveCatalog(ctx context.Context, c *armory.Catalog) error
}

// PresetRepository persists the preset table as one document.
type PresetRepository interface {
	// LoadPresets returns the stored presets, or an empty table when none is stored.
	LoadPresets(ctx context.Context) (*armory.Presets, error)
	SavePresets(ctx context.Context, p *armory.Presets) error
}

// Backend bundles the repositories served by one storage system.
type Backend interface {
	WeaponRepository
	CatalogRepository
	PresetRepository
	// Close releases connections held by the backend.
	Close() error
}
