// internal/api/allocation/types.go
package allocation

import (
	"math"
	"strings"
	"time"

	"github.com/baddersbot/portal/internal/fixtures"
	"github.com/baddersbot/portal/internal/models"
)

// PlayerAllocation is a read-only projection of one player on a session's
// confirmed list or waitlist.
type PlayerAllocation struct {
	Name            string
	Grade           string
	PreferenceMatch bool
	PaymentStatus   models.PaymentStatus
	Notes           string
}

// Session is a session allocation ready for display.
type Session struct {
	ID         string
	Date       time.Time
	Label      string
	Grade      string
	Capacity   int
	Assigned   []PlayerAllocation
	Waitlist   []PlayerAllocation
	Confidence string
	Notes      string
}

// Anchor is the page fragment id the dashboard schedule links to,
// e.g. "grade-a".
func (s Session) Anchor() string {
	return "grade-" + strings.ToLower(s.Grade)
}

// Allocated is the number of confirmed players.
func (s Session) Allocated() int {
	return len(s.Assigned)
}

// Remaining is the open slot count, never negative.
func (s Session) Remaining() int {
	if remaining := s.Capacity - s.Allocated(); remaining > 0 {
		return remaining
	}
	return 0
}

// FillPercentage is the rounded allocated/capacity ratio in [0,100].
// Zero capacity yields 0.
func (s Session) FillPercentage() int {
	if s.Capacity == 0 {
		return 0
	}
	fill := int(math.Round(float64(s.Allocated()) / float64(s.Capacity) * 100))
	if fill > 100 {
		fill = 100
	}
	return fill
}

// Summary aggregates the allocation workspace headline numbers.
type Summary struct {
	TotalSessions     int
	FullyBooked       int
	OpenSlots         int
	WaitlistedPlayers int
}

func buildSummary(sessions []Session) Summary {
	summary := Summary{TotalSessions: len(sessions)}
	for _, session := range sessions {
		if session.Remaining() == 0 {
			summary.FullyBooked++
		}
		summary.OpenSlots += session.Remaining()
		summary.WaitlistedPlayers += len(session.Waitlist)
	}
	return summary
}

// loadSessions decodes the session_allocations fixture collection. Missing
// per-field values fall back to empty, zero, or Unknown; a missing or
// unparsable date falls back to now.
func loadSessions(store *fixtures.Store, now time.Time) ([]Session, error) {
	var records []models.SessionAllocationRecord
	if err := store.Collection(fixtures.KeySessionAllocations, &records); err != nil {
		return nil, err
	}

	sessions := make([]Session, 0, len(records))
	for _, record := range records {
		sessions = append(sessions, Session{
			ID:         record.ID,
			Date:       parseDate(record.Date, now),
			Label:      record.Label,
			Grade:      record.Grade,
			Capacity:   record.Capacity,
			Assigned:   convertPlayers(record.Assigned),
			Waitlist:   convertPlayers(record.Waitlist),
			Confidence: record.Confidence,
			Notes:      record.Notes,
		})
	}
	return sessions, nil
}

func convertPlayers(records []models.PlayerAllocationRecord) []PlayerAllocation {
	players := make([]PlayerAllocation, 0, len(records))
	for _, record := range records {
		players = append(players, PlayerAllocation{
			Name:            record.Name,
			Grade:           record.Grade,
			PreferenceMatch: record.PreferenceMatch,
			PaymentStatus:   models.ParsePaymentStatus(record.PaymentStatus),
			Notes:           record.Notes,
		})
	}
	return players
}

func parseDate(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	day, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return fallback
	}
	return day
}
