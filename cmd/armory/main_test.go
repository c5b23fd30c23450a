package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/workbench"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`storage:
  backend: file
  weapons_dir: %s
  catalog_path: %s
  presets_path: %s
logging:
  level: error
  format: json
calc:
  default_health: 100
`,
		filepath.Join(dir, "weapons"),
		filepath.Join(dir, "attachments_data.json"),
		filepath.Join(dir, "presets.yaml"),
	)
	path := filepath.Join(dir, "armory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), append([]string{"--config", cfgPath}, args...), &out, io.Discard)
	return out.String(), err
}

func mustExecute(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()
	out, err := execute(t, cfgPath, args...)
	require.NoError(t, err, "armory %v", args)
	return out
}

func addRifle(t *testing.T, cfgPath string) {
	t.Helper()
	out := mustExecute(t, cfgPath, "weapon", "add", "AK-X",
		"--type", "ASSAULT_RIFLE", "--class", "ASSAULT",
		"--chest", "40", "--stomach", "38", "--limb", "28", "--foot", "25",
		"--range", "50", "--rpm", "600",
		"--recoil", "60", "--handling", "55", "--stability", "70", "--hipfire", "40",
	)
	assert.Equal(t, "added AK-X\n", out)
}

func TestWeaponLifecycle(t *testing.T) {
	cfg := writeConfig(t)
	addRifle(t, cfg)

	assert.Contains(t, mustExecute(t, cfg, "weapon", "list"), "1. AK-X  ASSAULT_RIFLE  [ASSAULT]")
	assert.Contains(t, mustExecute(t, cfg, "weapon", "show", "AK-X"), "Fire rate:   600 rpm")

	_, err := execute(t, cfg, "weapon", "add", "AK-X", "--type", "SMG", "--class", "RECON", "--chest", "1", "--stomach", "1", "--limb", "1", "--foot", "1", "--rpm", "1")
	assert.ErrorIs(t, err, workbench.ErrWeaponExists)

	assert.Equal(t, "deleted AK-X\n", mustExecute(t, cfg, "weapon", "delete", "AK-X"))
	assert.Equal(t, "No weapons stored.\n", mustExecute(t, cfg, "weapon", "list"))

	_, err = execute(t, cfg, "weapon", "show", "AK-X")
	assert.ErrorIs(t, err, workbench.ErrUnknownWeapon)
}

func TestWeaponAdd_RejectsInvalidWeapon(t *testing.T) {
	cfg := writeConfig(t)
	_, err := execute(t, cfg, "weapon", "add", "Broken", "--type", "LASER", "--class", "ASSAULT")
	require.Error(t, err)
	assert.Equal(t, "No weapons stored.\n", mustExecute(t, cfg, "weapon", "list"))
}

func TestMountFromCatalogAndKillStats(t *testing.T) {
	cfg := writeConfig(t)
	addRifle(t, cfg)

	assert.Equal(t, "added Brake to common catalog\n",
		mustExecute(t, cfg, "catalog", "add", "--name", "Brake", "--category", "MUZZLE", "--recoil", "10"))
	assert.Equal(t, "added AK Drum to AK-X\n",
		mustExecute(t, cfg, "catalog", "add", "--weapon", "AK-X", "--name", "AK Drum", "--category", "MAGAZINE"))

	assert.Contains(t, mustExecute(t, cfg, "attach", "candidates", "AK-X", "MUZZLE"), "1. Brake [Muzzle] recoil +10")
	assert.Equal(t, "mounted Brake on AK-X\n", mustExecute(t, cfg, "attach", "mount", "AK-X", "MUZZLE", "1"))

	_, err := execute(t, cfg, "attach", "mount", "AK-X", "MUZZLE", "1")
	assert.ErrorIs(t, err, armory.ErrCategoryOccupied)
	_, err = execute(t, cfg, "attach", "mount", "AK-X", "MUZZLE", "2")
	assert.ErrorIs(t, err, workbench.ErrNoSuchCandidate)

	show := mustExecute(t, cfg, "weapon", "show", "AK-X")
	assert.Contains(t, show, "Recoil control:    70 (base 60)")
	assert.Contains(t, show, "- Brake [Muzzle] recoil +10")

	btk := mustExecute(t, cfg, "btk")
	assert.Contains(t, btk, "AK-X vs 100 health")
	assert.Contains(t, btk, "chest:   3")
	assert.Contains(t, btk, "Fastest kill: 200.0 ms")

	assert.Contains(t, mustExecute(t, cfg, "btk", "AK-X", "--health", "150"), "AK-X vs 150 health")
}

func TestAttachRules(t *testing.T) {
	cfg := writeConfig(t)
	addRifle(t, cfg)

	mustExecute(t, cfg, "attach", "add", "AK-X", "--name", "60rd Drum", "--category", "MAGAZINE")
	_, err := execute(t, cfg, "attach", "add", "AK-X", "--name", "Flared Well", "--category", "MAG_WELL")
	assert.ErrorIs(t, err, armory.ErrInvalidMagWellMount)

	slots := mustExecute(t, cfg, "attach", "slots", "AK-X")
	assert.NotContains(t, slots, "MAG_WELL")
	assert.NotContains(t, slots, "GRIP_MOUNT")

	assert.Equal(t, "removed 1 attachment(s) from AK-X\n", mustExecute(t, cfg, "attach", "remove", "AK-X", "60rd Drum"))
	assert.Equal(t, "no attachment named 60rd Drum on AK-X\n", mustExecute(t, cfg, "attach", "remove", "AK-X", "60rd Drum"))
	assert.Contains(t, mustExecute(t, cfg, "attach", "slots", "AK-X"), "MAG_WELL")
}

func TestCatalogRemoveAndPresets(t *testing.T) {
	cfg := writeConfig(t)
	mustExecute(t, cfg, "catalog", "add", "--name", "Holo", "--category", "TOP_RAIL")
	assert.Contains(t, mustExecute(t, cfg, "catalog", "list"), "Common\n  - Holo [Top Rail]")
	assert.Equal(t, "removed 1 catalog entry\n", mustExecute(t, cfg, "catalog", "remove", "TOP_RAIL", "Holo"))
	assert.Equal(t, "Catalog is empty.\n", mustExecute(t, cfg, "catalog", "list"))

	assert.Equal(t, "No presets.\n", mustExecute(t, cfg, "preset", "list"))
	assert.Equal(t, "added preset Tactical Grip\n",
		mustExecute(t, cfg, "preset", "add", "--name", "Tactical Grip", "--category", "REAR_GRIP", "--recoil", "8", "--grip-support"))
	assert.Contains(t, mustExecute(t, cfg, "preset", "list"), "1. Tactical Grip [Rear Grip] recoil +8 (supports grip mount)")
}

func TestFilterAndTypes(t *testing.T) {
	cfg := writeConfig(t)
	addRifle(t, cfg)
	assert.Equal(t, "ASSAULT_RIFLE\n", mustExecute(t, cfg, "weapon", "types", "--class", "ASSAULT"))
	assert.Contains(t, mustExecute(t, cfg, "weapon", "filter", "--class", "ASSAULT", "--type", "ASSAULT_RIFLE"), "AK-X")
	assert.Equal(t, "No weapons stored.\n", mustExecute(t, cfg, "weapon", "filter", "--class", "RECON", "--type", "ASSAULT_RIFLE"))
}

func TestColorFlag(t *testing.T) {
	cfg := writeConfig(t)
	addRifle(t, cfg)
	assert.Contains(t, mustExecute(t, cfg, "--color", "weapon", "show", "AK-X"), "\033[")
	assert.NotContains(t, mustExecute(t, cfg, "weapon", "show", "AK-X"), "\033[")
}

func TestBadConfig(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.yaml"), "weapon", "list")
	assert.ErrorContains(t, err, "loading config")
}
