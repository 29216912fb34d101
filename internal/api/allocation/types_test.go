package allocation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/baddersbot/portal/internal/fixtures"
	"github.com/baddersbot/portal/internal/models"
)

func TestSessionDerivedFields(t *testing.T) {
	session := Session{
		Capacity: 8,
		Assigned: make([]PlayerAllocation, 5),
	}
	if got := session.Allocated(); got != 5 {
		t.Fatalf("Allocated = %d, want 5", got)
	}
	if got := session.Remaining(); got != 3 {
		t.Fatalf("Remaining = %d, want 3", got)
	}
	if got := session.FillPercentage(); got != 63 {
		t.Fatalf("FillPercentage = %d, want 63", got)
	}
}

func TestSessionRemainingNeverNegative(t *testing.T) {
	session := Session{
		Capacity: 2,
		Assigned: make([]PlayerAllocation, 4),
	}
	if got := session.Remaining(); got != 0 {
		t.Fatalf("Remaining = %d, want 0", got)
	}
	if got := session.FillPercentage(); got != 100 {
		t.Fatalf("FillPercentage = %d, want 100", got)
	}
}

func TestSessionZeroCapacity(t *testing.T) {
	session := Session{Assigned: make([]PlayerAllocation, 3)}
	if got := session.FillPercentage(); got != 0 {
		t.Fatalf("FillPercentage with zero capacity = %d, want 0", got)
	}
	if got := session.Remaining(); got != 0 {
		t.Fatalf("Remaining with zero capacity = %d, want 0", got)
	}
}

func TestBuildSummary(t *testing.T) {
	sessions := []Session{
		{Capacity: 4, Assigned: make([]PlayerAllocation, 4), Waitlist: make([]PlayerAllocation, 2)},
		{Capacity: 6, Assigned: make([]PlayerAllocation, 3)},
		{Capacity: 10, Assigned: make([]PlayerAllocation, 5), Waitlist: make([]PlayerAllocation, 1)},
	}

	summary := buildSummary(sessions)
	if summary.TotalSessions != 3 {
		t.Fatalf("TotalSessions = %d, want 3", summary.TotalSessions)
	}
	if summary.FullyBooked != 1 {
		t.Fatalf("FullyBooked = %d, want 1", summary.FullyBooked)
	}
	if summary.OpenSlots != 8 {
		t.Fatalf("OpenSlots = %d, want 8", summary.OpenSlots)
	}
	if summary.WaitlistedPlayers != 3 {
		t.Fatalf("WaitlistedPlayers = %d, want 3", summary.WaitlistedPlayers)
	}
}

func TestLoadSessionsDefaults(t *testing.T) {
	store := storeFromJSON(t, `{
		"session_allocations": [
			{
				"id": "s1",
				"label": "Tue 6pm - Court 1",
				"assigned": [{"name": "Amelia Chan"}]
			}
		]
	}`)

	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	sessions, err := loadSessions(store, now)
	if err != nil {
		t.Fatalf("loadSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}

	session := sessions[0]
	if !session.Date.Equal(now) {
		t.Fatalf("missing date should fall back to now, got %v", session.Date)
	}
	if session.Capacity != 0 {
		t.Fatalf("Capacity = %d, want 0", session.Capacity)
	}
	if got := session.Assigned[0].PaymentStatus; got != models.PaymentUnknown {
		t.Fatalf("missing payment status = %q, want Unknown", got)
	}
}

func storeFromJSON(t *testing.T, doc string) *fixtures.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixtures.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}
	store, err := fixtures.Load(path)
	if err != nil {
		t.Fatalf("load fixture file: %v", err)
	}
	return store
}
