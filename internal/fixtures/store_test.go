package fixtures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/baddersbot/portal/internal/models"
)

func load(t *testing.T, doc string) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixtures.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}
	store, err := Load(path)
	if err != nil {
		t.Fatalf("load fixture file: %v", err)
	}
	return store
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestCollectionAbsentKeyLeavesDestination(t *testing.T) {
	store := load(t, `{}`)

	players := []models.PlayerRecord{{ID: "pre-existing"}}
	if err := store.Collection(KeyPlayerDirectory, &players); err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if len(players) != 1 || players[0].ID != "pre-existing" {
		t.Fatalf("absent key modified destination: %v", players)
	}
}

func TestCollectionTypeMismatch(t *testing.T) {
	store := load(t, `{"player_directory": {"id": "not-a-list"}}`)

	var players []models.PlayerRecord
	err := store.Collection(KeyPlayerDirectory, &players)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("error = %v, want ErrTypeMismatch", err)
	}
}

func TestDocumentTypeMismatch(t *testing.T) {
	store := load(t, `{"weekly_schedule": ["not", "a", "document"]}`)

	var schedule models.WeeklySchedule
	err := store.Document(KeyWeeklySchedule, &schedule)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("error = %v, want ErrTypeMismatch", err)
	}
}

func TestDocumentDecode(t *testing.T) {
	store := load(t, `{
		"weekly_schedule": {
			"venues": ["Sports Hall"],
			"blocks": [{"weekday": "Tuesday", "time_label": "18:00 - 20:00", "entries": {}}]
		}
	}`)

	var schedule models.WeeklySchedule
	if err := store.Document(KeyWeeklySchedule, &schedule); err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(schedule.Venues) != 1 || schedule.Venues[0] != "Sports Hall" {
		t.Fatalf("venues = %v", schedule.Venues)
	}
	if len(schedule.Blocks) != 1 || schedule.Blocks[0].Weekday != "Tuesday" {
		t.Fatalf("blocks = %v", schedule.Blocks)
	}
}

func TestVerifyEmbedded(t *testing.T) {
	store, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if err := store.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongShapes(t *testing.T) {
	store := load(t, `{"session_allocations": {"oops": true}}`)
	if err := store.Verify(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Verify error = %v, want ErrTypeMismatch", err)
	}
}

func TestPlayerDirectory(t *testing.T) {
	store := load(t, `{
		"player_directory": [
			{"id": "player-amelia-chan", "name": "Amelia Chan", "grade": "A", "payment_status": "Paid"}
		]
	}`)

	records, err := store.PlayerDirectory()
	if err != nil {
		t.Fatalf("PlayerDirectory: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Amelia Chan" {
		t.Fatalf("records = %v", records)
	}

	player := records[0].Player()
	if player.PaymentStatus != models.PaymentPaid {
		t.Fatalf("converted payment status = %q", player.PaymentStatus)
	}
}
