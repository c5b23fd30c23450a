// Package main copies weapons, the attachment catalog and presets written by
// the legacy desktop tool into the configured storage backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/importer"
	"github.com/cory-johannsen/armory/internal/observability"
	"github.com/cory-johannsen/armory/internal/storage/backends"
	"github.com/cory-johannsen/armory/internal/storage/file"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	sourceDir := flag.String("source-dir", "", "directory of legacy weapon JSON files")
	catalogPath := flag.String("catalog", "attachments_data.json", "legacy attachment catalog JSON file")
	presetsPath := flag.String("presets", "", "presets file to import (empty = keep destination presets)")
	skipInvalid := flag.Bool("skip-invalid", false, "drop weapons that fail validation instead of copying them")
	flag.Parse()

	if *sourceDir == "" {
		fmt.Fprintln(os.Stderr, "usage: import-content -source-dir <dir> [-catalog <file>] [-presets <file>] [-config <file>] [-skip-invalid]")
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	src := file.New(config.StorageConfig{
		Backend:     config.BackendFile,
		WeaponsDir:  *sourceDir,
		CatalogPath: *catalogPath,
		PresetsPath: *presetsPath,
	}, observability.Component(logger, "source"))

	dst, err := backends.Open(ctx, cfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("opening destination: %v", err)
	}
	defer dst.Close()

	start := time.Now()
	imp := importer.New(src, dst, observability.Component(logger, "importer"), importer.Options{
		SkipInvalid: *skipInvalid,
		SkipPresets: *presetsPath == "",
	})
	rep, err := imp.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("imported %d weapon(s) (%d skipped), %d catalog entr%s, %d preset(s) into %s in %s\n",
		rep.Weapons, rep.SkippedWeapons, rep.CatalogEntries, entrySuffix(rep.CatalogEntries),
		rep.Presets, cfg.Storage.Backend, time.Since(start).Round(time.Millisecond))
}

func entrySuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
