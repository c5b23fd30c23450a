// Package workbench holds the loaded weapons, catalog and presets for one
// user session and persists every change through a storage.Backend.
package workbench

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
)

var (
	// ErrWeaponExists is returned when adding a weapon whose name is taken.
	ErrWeaponExists = errors.New("weapon already exists")
	// ErrUnknownWeapon is returned when no loaded weapon has the given name.
	ErrUnknownWeapon = errors.New("unknown weapon")
	// ErrNoSuchCandidate is returned when a candidate index is out of range.
	ErrNoSuchCandidate = errors.New("no such candidate")
)

// Workbench is a single-owner, in-memory view of the stored data. It is not
// safe for concurrent use.
type Workbench struct {
	store   storage.Backend
	logger  *zap.Logger
	weapons []*armory.Weapon
	catalog *armory.Catalog
	presets *armory.Presets
}

// KillReport pairs a weapon with its kill stats, or the reason they are
// undefined.
type KillReport struct {
	Weapon *armory.Weapon
	Stats  armory.KillStats
	Err    error
}

// New returns an empty Workbench over store. Call Load to populate it.
//
// Precondition: store and logger must be non-nil.
func New(store storage.Backend, logger *zap.Logger) *Workbench {
	return &Workbench{
		store:   store,
		logger:  logger,
		catalog: armory.NewCatalog(),
		presets: armory.NewPresets(),
	}
}

// Load replaces the in-memory state with what the backend holds.
//
// Postcondition: on error the previous state is kept.
func (wb *Workbench) Load(ctx context.Context) error {
	weapons, err := wb.store.List(ctx)
	if err != nil {
		return fmt.Errorf("loading weapons: %w", err)
	}
	catalog, err := wb.store.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	presets, err := wb.store.LoadPresets(ctx)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}
	wb.weapons, wb.catalog, wb.presets = weapons, catalog, presets
	wb.logger.Debug("workbench loaded",
		zap.Int("weapons", len(weapons)),
		zap.Int("catalog_entries", catalog.Len()),
		zap.Int("presets", presets.Len()),
	)
	return nil
}

// Weapons returns the loaded weapons in backend order.
func (wb *Workbench) Weapons() []*armory.Weapon {
	return append([]*armory.Weapon(nil), wb.weapons...)
}

// Weapon returns the loaded weapon called name.
func (wb *Workbench) Weapon(name string) (*armory.Weapon, error) {
	_, w, err := wb.find(name)
	return w, err
}

// Catalog returns the loaded catalog. Callers must not mutate it.
func (wb *Workbench) Catalog() *armory.Catalog { return wb.catalog }

// Presets returns the loaded preset table. Callers must not mutate it.
func (wb *Workbench) Presets() *armory.Presets { return wb.presets }

// AddWeapon validates w, persists it, and appends it to the loaded list.
//
// Postcondition: returns ErrWeaponExists when the name is taken.
func (wb *Workbench) AddWeapon(ctx context.Context, w *armory.Weapon) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if _, _, err := wb.find(w.Name); err == nil {
		return fmt.Errorf("adding %q: %w", w.Name, ErrWeaponExists)
	}
	if err := wb.store.Save(ctx, w); err != nil {
		return err
	}
	wb.weapons = append(wb.weapons, w)
	return nil
}

// DeleteWeapon removes the weapon from the backend and the loaded list.
func (wb *Workbench) DeleteWeapon(ctx context.Context, name string) error {
	i, _, err := wb.find(name)
	if err != nil {
		return err
	}
	if err := wb.store.Delete(ctx, name); err != nil {
		return err
	}
	wb.weapons = append(wb.weapons[:i], wb.weapons[i+1:]...)
	return nil
}

// Candidates returns the catalog entries for weapon in category c.
func (wb *Workbench) Candidates(weapon string, c armory.Category) ([]armory.Attachment, error) {
	if _, _, err := wb.find(weapon); err != nil {
		return nil, err
	}
	return wb.catalog.Lookup(weapon, c), nil
}

// MountCandidate mounts the index-th (0-based) candidate for category c.
func (wb *Workbench) MountCandidate(ctx context.Context, weapon string, c armory.Category, index int) (armory.Attachment, error) {
	candidates, err := wb.Candidates(weapon, c)
	if err != nil {
		return armory.Attachment{}, err
	}
	if index < 0 || index >= len(candidates) {
		return armory.Attachment{}, fmt.Errorf("%s candidate %d for %q: %w", c, index, weapon, ErrNoSuchCandidate)
	}
	a := candidates[index]
	return a, wb.Mount(ctx, weapon, a)
}

// Mount mounts a on the named weapon and persists the result.
//
// Postcondition: when the mount rules reject a or the save fails, the
// loaded weapon is unchanged.
func (wb *Workbench) Mount(ctx context.Context, weapon string, a armory.Attachment) error {
	return wb.modify(ctx, weapon, func(w *armory.Weapon) (bool, error) {
		return true, w.Mount(a)
	})
}

// Unmount removes every attachment called name from the weapon and returns
// how many were removed. Nothing is persisted when none matched.
func (wb *Workbench) Unmount(ctx context.Context, weapon, name string) (int, error) {
	var removed int
	err := wb.modify(ctx, weapon, func(w *armory.Weapon) (bool, error) {
		removed = w.Unmount(name)
		return removed > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// AddCatalogEntry adds a to the common tier when scope is empty, otherwise
// to the tier for weapon scope, and persists the catalog.
func (wb *Workbench) AddCatalogEntry(ctx context.Context, scope string, a armory.Attachment) error {
	return wb.modifyCatalog(ctx, func(c *armory.Catalog) (bool, error) {
		return true, c.Add(scope, a)
	})
}

// RemoveCatalogEntry removes every entry called name in category c and
// returns how many were removed.
func (wb *Workbench) RemoveCatalogEntry(ctx context.Context, c armory.Category, name string) (int, error) {
	var removed int
	err := wb.modifyCatalog(ctx, func(cat *armory.Catalog) (bool, error) {
		removed = cat.Remove(c, name)
		return removed > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// AddPreset appends a to the preset table and persists it.
func (wb *Workbench) AddPreset(ctx context.Context, a armory.Attachment) error {
	next, err := armory.PresetsFromSnapshot(wb.presets.Snapshot())
	if err != nil {
		return err
	}
	next.Add(a)
	if err := wb.store.SavePresets(ctx, next); err != nil {
		return err
	}
	wb.presets = next
	return nil
}

// KillReports computes kill stats for every loaded weapon against health.
// A weapon with undefined stats gets a report carrying the error.
func (wb *Workbench) KillReports(health float64) []KillReport {
	reports := make([]KillReport, 0, len(wb.weapons))
	for _, w := range wb.weapons {
		ks, err := w.KillStats(health)
		reports = append(reports, KillReport{Weapon: w, Stats: ks, Err: err})
	}
	return reports
}

// Filter returns the loaded weapons available to class with type t, sorted
// by name.
func (wb *Workbench) Filter(class armory.SoldierClass, t armory.WeaponType) []*armory.Weapon {
	return armory.Matching(wb.weapons, class, t)
}

// TypesForClass returns the weapon types loaded for class, in canonical order.
func (wb *Workbench) TypesForClass(class armory.SoldierClass) []armory.WeaponType {
	return armory.TypesForClass(wb.weapons, class)
}

func (wb *Workbench) find(name string) (int, *armory.Weapon, error) {
	for i, w := range wb.weapons {
		if w.Name == name {
			return i, w, nil
		}
	}
	return -1, nil, fmt.Errorf("%q: %w", name, ErrUnknownWeapon)
}

// modify applies fn to a copy of the weapon and swaps the copy in once it
// has been saved. fn reports whether anything changed.
func (wb *Workbench) modify(ctx context.Context, name string, fn func(*armory.Weapon) (bool, error)) error {
	i, w, err := wb.find(name)
	if err != nil {
		return err
	}
	next, err := armory.WeaponFromSnapshot(w.Snapshot())
	if err != nil {
		return err
	}
	changed, err := fn(next)
	if err != nil || !changed {
		return err
	}
	if err := wb.store.Save(ctx, next); err != nil {
		return err
	}
	wb.weapons[i] = next
	return nil
}

func (wb *Workbench) modifyCatalog(ctx context.Context, fn func(*armory.Catalog) (bool, error)) error {
	next, err := armory.CatalogFromSnapshot(wb.catalog.Snapshot())
	if err != nil {
		return err
	}
	changed, err := fn(next)
	if err != nil || !changed {
		return err
	}
	if err := wb.store.SaveCatalog(ctx, next); err != nil {
		return err
	}
	wb.catalog = next
	return nil
}
