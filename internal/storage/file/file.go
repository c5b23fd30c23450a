// Package file stores weapons, the catalog and presets as plain files: one
// JSON document per weapon, a JSON catalog and a YAML preset table.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
)

const weaponExt = ".json"

var _ storage.Backend = (*Backend)(nil)

// Backend implements storage.Backend on the local filesystem.
type Backend struct {
	weaponsDir  string
	catalogPath string
	presetsPath string
	logger      *zap.Logger
}

// New returns a Backend rooted at the paths in cfg. Nothing is touched on
// disk until the first call.
//
// Precondition: logger must be non-nil.
func New(cfg config.StorageConfig, logger *zap.Logger) *Backend {
	return &Backend{
		weaponsDir:  cfg.WeaponsDir,
		catalogPath: cfg.CatalogPath,
		presetsPath: cfg.PresetsPath,
		logger:      logger,
	}
}

// FileName derives the on-disk base name for a weapon: letters, digits,
// space, '-' and '_' are kept and everything else is dropped. It returns ""
// when nothing survives.
func FileName(weaponName string) string {
	var b strings.Builder
	for _, r := range weaponName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// List loads every *.json weapon file, sorted by file name. Unreadable or
// corrupt files are skipped with a warning. A missing directory is created
// and yields an empty list.
func (b *Backend) List(ctx context.Context) ([]*armory.Weapon, error) {
	entries, err := b.weaponFiles()
	if err != nil {
		return nil, err
	}
	weapons := make([]*armory.Weapon, 0, len(entries))
	for _, path := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w, err := readWeapon(path)
		if err != nil {
			b.logger.Warn("skipping weapon file", zap.String("path", path), zap.Error(err))
			continue
		}
		weapons = append(weapons, w)
	}
	return weapons, nil
}

// Save writes w to its weapon file, replacing any earlier record with the
// same name.
func (b *Backend) Save(ctx context.Context, w *armory.Weapon) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := b.pathFor(w.Name)
	if err != nil {
		return err
	}
	data, err := encodeJSON(w.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding weapon %q: %w", w.Name, err)
	}
	if err := writeFile(path, data); err != nil {
		return fmt.Errorf("writing weapon %q: %w", w.Name, err)
	}
	b.logger.Info("saved weapon", zap.String("name", w.Name), zap.String("path", path))
	return nil
}

// Delete removes the weapon file for name.
//
// Postcondition: returns storage.ErrWeaponNotFound when no file holds name.
func (b *Backend) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, ok, err := b.existingPath(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("deleting %q: %w", name, storage.ErrWeaponNotFound)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting weapon %q: %w", name, err)
	}
	b.logger.Info("deleted weapon", zap.String("name", name), zap.String("path", path))
	return nil
}

// LoadCatalog reads the catalog JSON file. A missing file yields an empty
// catalog.
func (b *Backend) LoadCatalog(ctx context.Context) (*armory.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.catalogPath)
	if errors.Is(err, fs.ErrNotExist) {
		return armory.NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", b.catalogPath, err)
	}
	var snap armory.CatalogSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", b.catalogPath, err)
	}
	return armory.CatalogFromSnapshot(snap)
}

// SaveCatalog writes c to the catalog JSON file.
func (b *Backend) SaveCatalog(ctx context.Context, c *armory.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeJSON(c.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := writeFile(b.catalogPath, data); err != nil {
		return fmt.Errorf("writing catalog %s: %w", b.catalogPath, err)
	}
	b.logger.Info("saved catalog", zap.String("path", b.catalogPath), zap.Int("entries", c.Len()))
	return nil
}

// LoadPresets reads the presets YAML file. A missing file yields an empty
// table.
func (b *Backend) LoadPresets(ctx context.Context) (*armory.Presets, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.presetsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return armory.NewPresets(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading presets %s: %w", b.presetsPath, err)
	}
	var snap armory.PresetsSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing presets %s: %w", b.presetsPath, err)
	}
	return armory.PresetsFromSnapshot(snap)
}

// SavePresets writes p to the presets YAML file.
func (b *Backend) SavePresets(ctx context.Context, p *armory.Presets) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(p.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	if err := writeFile(b.presetsPath, data); err != nil {
		return fmt.Errorf("writing presets %s: %w", b.presetsPath, err)
	}
	b.logger.Info("saved presets", zap.String("path", b.presetsPath), zap.Int("presets", p.Len()))
	return nil
}

// Close is a no-op; the file backend holds no handles between calls.
func (b *Backend) Close() error { return nil }

func (b *Backend) weaponFiles() ([]string, error) {
	if err := os.MkdirAll(b.weaponsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating weapons directory %s: %w", b.weaponsDir, err)
	}
	entries, err := os.ReadDir(b.weaponsDir)
	if err != nil {
		return nil, fmt.Errorf("reading weapons directory %s: %w", b.weaponsDir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != weaponExt {
			continue
		}
		paths = append(paths, filepath.Join(b.weaponsDir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// pathFor returns the file to write name to: the file already holding name,
// else the sanitised file name when it is free, else a fresh
// weapon_<uuid>. Two names that sanitise alike never share a file.
func (b *Backend) pathFor(name string) (string, error) {
	path, ok, err := b.existingPath(name)
	if err != nil {
		return "", err
	}
	if ok {
		return path, nil
	}
	if base := FileName(name); base != "" {
		primary := filepath.Join(b.weaponsDir, base+weaponExt)
		_, err := os.Stat(primary)
		if errors.Is(err, fs.ErrNotExist) {
			return primary, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", primary, err)
		}
		b.logger.Warn("weapon file name taken by another weapon",
			zap.String("name", name), zap.String("path", primary))
	}
	return filepath.Join(b.weaponsDir, "weapon_"+uuid.NewString()+weaponExt), nil
}

// existingPath finds the file whose stored name is exactly name. The
// sanitised file name is tried first, then every other weapon file.
func (b *Backend) existingPath(name string) (string, bool, error) {
	var primary string
	if base := FileName(name); base != "" {
		primary = filepath.Join(b.weaponsDir, base+weaponExt)
		w, err := readWeapon(primary)
		if err == nil && w.Name == name {
			return primary, true, nil
		}
	}
	paths, err := b.weaponFiles()
	if err != nil {
		return "", false, err
	}
	for _, path := range paths {
		if path == primary {
			continue
		}
		w, err := readWeapon(path)
		if err == nil && w.Name == name {
			return path, true, nil
		}
	}
	return "", false, nil
}

func readWeapon(path string) (*armory.Weapon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap armory.WeaponSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return armory.WeaponFromSnapshot(snap)
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFile replaces path with data via a temp file and rename, creating the
// parent directory when needed.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".armory-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
