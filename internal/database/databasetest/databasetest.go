// Package databasetest provides migrated throwaway SQLite databases for
// repository and service tests.
package databasetest

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/database"
)

// Open returns a connection to a fresh, fully migrated SQLite database that
// is removed when the test finishes.
func Open(tb testing.TB) *sql.DB {
	tb.Helper()

	dir, err := os.MkdirTemp("", "splitledger-test-*")
	if err != nil {
		tb.Fatalf("failed to create temp dir: %v", err)
	}
	tb.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "ledger.db")
	if err := database.Migrate(config.DriverSQLite, path); err != nil {
		tb.Fatalf("failed to migrate test database: %v", err)
	}

	db, err := database.NewSQLiteConnection(path)
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	return db
}
