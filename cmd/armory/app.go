package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/frontend/render"
	"github.com/cory-johannsen/armory/internal/observability"
	"github.com/cory-johannsen/armory/internal/storage"
	"github.com/cory-johannsen/armory/internal/storage/backends"
	"github.com/cory-johannsen/armory/internal/workbench"
)

// app holds what a command needs once it runs. Nothing is opened until a
// command asks for the workbench, so help and usage never touch storage.
type app struct {
	configPath string
	color      bool

	cfg    config.Config
	logger *zap.Logger
	store  storage.Backend
	bench  *workbench.Workbench
}

// workbench loads configuration, opens the backend and loads its contents.
// Later calls return the same workbench.
func (a *app) workbench(ctx context.Context) (*workbench.Workbench, error) {
	if a.bench != nil {
		return a.bench, nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger

	store, err := backends.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.store = store

	bench := workbench.New(store, observability.Component(logger, "workbench"))
	if err := bench.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading workbench: %w", err)
	}
	a.bench = bench
	logger.Debug("workbench loaded",
		zap.String("backend", cfg.Storage.Backend),
		zap.Int("weapons", len(bench.Weapons())),
		zap.Int("catalog_entries", bench.Catalog().Len()),
		zap.Int("presets", bench.Presets().Len()),
	)
	return bench, nil
}

func (a *app) renderer() *render.Renderer {
	return render.New(a.color)
}

func (a *app) shutdown() {
	if a.store != nil {
		if err := a.store.Close(); err != nil && a.logger != nil {
			a.logger.Warn("closing storage", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
