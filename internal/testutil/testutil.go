package testutil

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"loanerInventory/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database with the computers table.
// The database name is derived from the test name so parallel packages never
// share rows. It is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	// Shared cache keeps every pooled connection on the same in-memory database.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// FixedClock returns a clock that always reports the given date.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	ts := time.Date(year, month, day, 9, 30, 0, 0, time.Local)
	return func() time.Time { return ts }
}
