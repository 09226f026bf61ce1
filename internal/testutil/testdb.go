package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/dayline/internal/db"
)

// NewTestDB opens an in-memory database with the dayline schema migrated and
// the default schedule profile seeded. It is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW is the unit of work services under test commit through.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
