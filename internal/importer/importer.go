// Package importer copies weapons, the attachment catalog and presets from
// one storage backend to another.
package importer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/storage"
)

// Importer orchestrates a copy from a source backend to a destination backend.
type Importer struct {
	src    storage.Backend
	dst    storage.Backend
	logger *zap.Logger
	opts   Options
}

// Options tunes an import run.
type Options struct {
	// SkipInvalid drops weapons that fail Validate instead of copying them.
	SkipInvalid bool
	// SkipPresets leaves the destination's presets untouched.
	SkipPresets bool
}

// Report counts what a run copied.
type Report struct {
	Weapons        int
	SkippedWeapons int
	CatalogEntries int
	Presets        int
	Elapsed        time.Duration
}

// New constructs an Importer reading from src and writing to dst.
//
// Precondition: src, dst and logger must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(src, dst storage.Backend, logger *zap.Logger, opts ...Options) *Importer {
	imp := &Importer{src: src, dst: dst, logger: logger}
	if len(opts) > 0 {
		imp.opts = opts[0]
	}
	return imp
}

// Run loads everything from the source and saves it to the destination:
// weapons one by one, then the catalog, then the presets. Destination
// records with the same weapon name are replaced.
//
// Postcondition: on error the destination may hold a partial copy.
func (imp *Importer) Run(ctx context.Context) (Report, error) {
	overall := time.Now()
	var rep Report

	t0 := time.Now()
	weapons, err := imp.src.List(ctx)
	if err != nil {
		return rep, fmt.Errorf("loading source weapons: %w", err)
	}
	imp.logger.Info("loaded weapons", zap.Int("count", len(weapons)), zap.Duration("elapsed", time.Since(t0)))

	for _, w := range weapons {
		if err := w.Validate(); err != nil {
			if imp.opts.SkipInvalid {
				imp.logger.Warn("skipping invalid weapon", zap.String("name", w.Name), zap.Error(err))
				rep.SkippedWeapons++
				continue
			}
			imp.logger.Warn("copying invalid weapon", zap.String("name", w.Name), zap.Error(err))
		}
		if err := imp.dst.Save(ctx, w); err != nil {
			return rep, fmt.Errorf("writing weapon %q: %w", w.Name, err)
		}
		rep.Weapons++
	}

	catalog, err := imp.src.LoadCatalog(ctx)
	if err != nil {
		return rep, fmt.Errorf("loading source catalog: %w", err)
	}
	if err := imp.dst.SaveCatalog(ctx, catalog); err != nil {
		return rep, fmt.Errorf("writing catalog: %w", err)
	}
	rep.CatalogEntries = catalog.Len()

	if !imp.opts.SkipPresets {
		presets, err := imp.src.LoadPresets(ctx)
		if err != nil {
			return rep, fmt.Errorf("loading source presets: %w", err)
		}
		if err := imp.dst.SavePresets(ctx, presets); err != nil {
			return rep, fmt.Errorf("writing presets: %w", err)
		}
		rep.Presets = presets.Len()
	}

	rep.Elapsed = time.Since(overall)
	imp.logger.Info("import complete",
		zap.Int("weapons", rep.Weapons),
		zap.Int("skipped", rep.SkippedWeapons),
		zap.Int("catalog_entries", rep.CatalogEntries),
		zap.Int("presets", rep.Presets),
		zap.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}
