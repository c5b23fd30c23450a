package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
)

// WeaponRepository persists weapon snapshots in the weapons table.
type WeaponRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

var _ storage.WeaponRepository = (*WeaponRepository)(nil)

// NewWeaponRepository creates a WeaponRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool; logger must be non-nil.
func NewWeaponRepository(db *pgxpool.Pool, logger *zap.Logger) *WeaponRepository {
	return &WeaponRepository{db: db, logger: logger}
}

// List returns every stored weapon ordered by name. Rows whose snapshot
// cannot be decoded are skipped with a warning.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *WeaponRepository) List(ctx context.Context) ([]*armory.Weapon, error) {
	rows, err := r.db.Query(ctx, `SELECT name, snapshot FROM weapons ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing weapons: %w", err)
	}
	defer rows.Close()

	weapons := make([]*armory.Weapon, 0)
	for rows.Next() {
		var (
			name string
			raw  []byte
		)
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("scanning weapon row: %w", err)
		}
		w, err := decodeWeapon(raw)
		if err != nil {
			r.logger.Warn("skipping corrupt weapon row", zap.String("name", name), zap.Error(err))
			continue
		}
		weapons = append(weapons, w)
	}
	return weapons, rows.Err()
}

func decodeWeapon(raw []byte) (*armory.Weapon, error) {
	var snap armory.WeaponSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return armory.WeaponFromSnapshot(snap)
}

// Save upserts the weapon snapshot keyed by name.
//
// Precondition: w.Name must be non-empty.
// Postcondition: exactly one row holds w.Name.
func (r *WeaponRepository) Save(ctx context.Context, w *armory.Weapon) error {
	if w.Name == "" {
		return errors.New("saving weapon: name must not be empty")
	}
	raw, err := json.Marshal(w.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding weapon %q: %w", w.Name, err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO weapons (id, name, snapshot)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = NOW()`,
		uuid.New(), w.Name, raw,
	)
	if err != nil {
		return fmt.Errorf("saving weapon %q: %w", w.Name, err)
	}
	return nil
}

// Delete removes the row for name.
//
// Postcondition: Returns storage.ErrWeaponNotFound if no row was deleted.
func (r *WeaponRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM weapons WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting weapon %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting %q: %w", name, storage.ErrWeaponNotFound)
	}
	return nil
}
