package db

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is used when no database path is configured.
const DefaultPath = "inventory.db"

//go:embed schema.sql
var schemaSQL string

// Open opens (or creates) a local SQLite database file and makes sure the
// computers table exists. Initialization is idempotent: running it against an
// existing database leaves the table and its rows untouched.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if err := EnsureSchema(d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// EnsureSchema creates the computers table if it does not exist yet.
func EnsureSchema(d *sql.DB) error {
	if d == nil {
		return fmt.Errorf("ensure schema: nil db")
	}
	if _, err := d.Exec(schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
