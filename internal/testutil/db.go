package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/baddersbot/portal/internal/db"
	"github.com/baddersbot/portal/internal/models"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// SeedRoster loads the given players into an empty test database.
func SeedRoster(t *testing.T, database *db.DB, records []models.PlayerRecord) {
	t.Helper()

	if err := database.SeedPlayers(context.Background(), records); err != nil {
		t.Fatalf("seed roster: %v", err)
	}
}
