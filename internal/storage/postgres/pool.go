// Package postgres stores weapon, catalog and preset snapshots as JSONB rows
// in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/armory/internal/config"
)

// applicationName tags every connection in pg_stat_activity.
const applicationName = "armory"

// requiredTables are created by the migrations in migrations/.
var requiredTables = []string{"weapons", "documents"}

// Pool is the pgx connection pool shared by the weapon and document
// repositories.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool connects to the database described by cfg and pings it.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns a connected Pool or a non-nil error.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return &Pool{pool: pool}, nil
}

// CheckSchema reports the armory tables that do not exist yet.
//
// Postcondition: Returns nil when every table exists; otherwise an error
// naming the missing ones.
func (p *Pool) CheckSchema(ctx context.Context) error {
	var missing []string
	for _, table := range requiredTables {
		var found bool
		err := p.pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&found)
		if err != nil {
			return fmt.Errorf("checking table %s: %w", table, err)
		}
		if !found {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tables %s: run the migrate command first", strings.Join(missing, ", "))
	}
	return nil
}

// Health pings the database, giving up after timeout.
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close releases all pool resources.
func (p *Pool) Close() {
	p.pool.Close()
}

// DB returns the underlying pgxpool.Pool for use by repositories.
func (p *Pool) DB() *pgxpool.Pool {
	return p.pool
}
