package availability

import (
	"testing"
	"time"

	"github.com/baddersbot/portal/internal/models"
)

func TestParseDates(t *testing.T) {
	got := parseDates("2024-04-06, 2024-04-02,2024-04-02, not-a-date , ,2024-04-04")
	want := []string{"2024-04-02", "2024-04-04", "2024-04-06"}
	if len(got) != len(want) {
		t.Fatalf("parsed %d dates, want %d: %v", len(got), len(want), got)
	}
	for i, day := range got {
		if iso := day.Format(models.DateLayout); iso != want[i] {
			t.Fatalf("dates[%d] = %s, want %s", i, iso, want[i])
		}
	}
}

func TestParseDatesEmpty(t *testing.T) {
	if got := parseDates(""); len(got) != 0 {
		t.Fatalf("expected no dates, got %v", got)
	}
	if got := parseDates("junk, more junk"); len(got) != 0 {
		t.Fatalf("expected no dates, got %v", got)
	}
}

func TestParseDatesSorted(t *testing.T) {
	got := parseDates("2024-12-25,2024-01-01")
	if len(got) != 2 || !got[0].Before(got[1]) {
		t.Fatalf("dates not sorted ascending: %v", got)
	}
	if !got[0].Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("dates[0] = %v", got[0])
	}
}

func TestPlayerOptionLabel(t *testing.T) {
	option := PlayerOption{ID: "player-amelia-chan", Name: "Amelia Chan", Grade: "A"}
	if got := option.Label(); got != "Amelia Chan (Grade A)" {
		t.Fatalf("Label = %q", got)
	}
}
