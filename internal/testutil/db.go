package testutil

import (
	"path/filepath"
	"testing"

	"github.com/alobarros8/Simulador-de-turnos/internal/booking"
	"github.com/alobarros8/Simulador-de-turnos/internal/db"
)

// NewTestDB creates a temporary SQLite database with the appointment
// schema applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "appointments.db")
	database, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// NewTestStore creates an appointment store backed by a temporary
// SQLite database.
func NewTestStore(t *testing.T) *booking.SQLiteStore {
	t.Helper()
	return booking.NewSQLiteStore(NewTestDB(t))
}
