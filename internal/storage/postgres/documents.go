package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
)

// Document kinds stored in the documents table.
const (
	KindCatalog = "catalog"
	KindPresets = "presets"
)

// DocumentRepository persists single-document records (the catalog and the
// preset table) keyed by kind.
type DocumentRepository struct {
	db *pgxpool.Pool
}

var (
	_ storage.CatalogRepository = (*DocumentRepository)(nil)
	_ storage.PresetRepository  = (*DocumentRepository)(nil)
)

// NewDocumentRepository creates a DocumentRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// LoadCatalog returns the stored catalog, or an empty one when no row exists.
func (r *DocumentRepository) LoadCatalog(ctx context.Context) (*armory.Catalog, error) {
	var snap armory.CatalogSnapshot
	found, err := r.load(ctx, KindCatalog, &snap)
	if err != nil || !found {
		return armory.NewCatalog(), err
	}
	return armory.CatalogFromSnapshot(snap)
}

// SaveCatalog replaces the stored catalog.
func (r *DocumentRepository) SaveCatalog(ctx context.Context, c *armory.Catalog) error {
	return r.save(ctx, KindCatalog, c.Snapshot())
}

// LoadPresets returns the stored presets, or an empty table when no row exists.
func (r *DocumentRepository) LoadPresets(ctx context.Context) (*armory.Presets, error) {
	var snap armory.PresetsSnapshot
	found, err := r.load(ctx, KindPresets, &snap)
	if err != nil || !found {
		return armory.NewPresets(), err
	}
	return armory.PresetsFromSnapshot(snap)
}

// SavePresets replaces the stored presets.
func (r *DocumentRepository) SavePresets(ctx context.Context, p *armory.Presets) error {
	return r.save(ctx, KindPresets, p.Snapshot())
}

func (r *DocumentRepository) load(ctx context.Context, kind string, into any) (bool, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT snapshot FROM documents WHERE kind = $1`, kind).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", kind, err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, fmt.Errorf("decoding %s: %w", kind, err)
	}
	return true, nil
}

func (r *DocumentRepository) save(ctx context.Context, kind string, snap any) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", kind, err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO documents (kind, snapshot)
		VALUES ($1, $2)
		ON CONFLICT (kind) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = NOW()`,
		kind, raw,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", kind, err)
	}
	return nil
}
