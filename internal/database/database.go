// Package database opens the ledger's SQL store and applies its schema.
//
// Two drivers are supported: PostgreSQL through lib/pq and SQLite through
// modernc.org/sqlite. Queries across the repositories use $N placeholders,
// which both drivers accept.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/splitledger/internal/config"
)

// Open connects to the database selected by cfg
func Open(cfg *config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return NewPostgresConnection(cfg.DatabaseURL)
	case config.DriverSQLite:
		return NewSQLiteConnection(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
