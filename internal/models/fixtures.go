// internal/models/fixtures.go
package models

// Typed projections of the fixture document. Each collection is decoded
// explicitly instead of coercing loosely-typed maps; a shape mismatch surfaces
// as a decode error at startup rather than a silent default.

// PlayerRecord is a player_directory entry, also the seed source for the
// players table.
type PlayerRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Grade            string `json:"grade"`
	AvailabilityNote string `json:"availability_note"`
	PaymentStatus    string `json:"payment_status"`
}

// Player converts the raw record into a typed roster entry.
func (r PlayerRecord) Player() Player {
	return Player{
		ID:               r.ID,
		Name:             r.Name,
		Grade:            r.Grade,
		AvailabilityNote: r.AvailabilityNote,
		PaymentStatus:    ParsePaymentStatus(r.PaymentStatus),
	}
}

// PlayerSummary is a player_summaries entry feeding the dashboard metrics.
type PlayerSummary struct {
	Name              string `json:"name"`
	Grade             string `json:"grade"`
	SessionsAllocated int    `json:"sessions_allocated"`
	PaymentStatus     string `json:"payment_status"`
	Notes             string `json:"notes"`
}

// SessionSummary is a session_summaries entry. Date stays an ISO string here;
// view builders parse it once.
type SessionSummary struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	Grade     string `json:"grade"`
	Venue     string `json:"venue"`
	Capacity  int    `json:"capacity"`
	Allocated int    `json:"allocated"`
}

// PlayerAllocationRecord is one name on a session's confirmed or waitlist.
type PlayerAllocationRecord struct {
	Name            string `json:"name"`
	Grade           string `json:"grade"`
	PreferenceMatch bool   `json:"preference_match"`
	PaymentStatus   string `json:"payment_status"`
	Notes           string `json:"notes"`
}

// SessionAllocationRecord is a session_allocations entry.
type SessionAllocationRecord struct {
	ID         string                   `json:"id"`
	Date       string                   `json:"date"`
	Label      string                   `json:"label"`
	Grade      string                   `json:"grade"`
	Capacity   int                      `json:"capacity"`
	Assigned   []PlayerAllocationRecord `json:"assigned"`
	Waitlist   []PlayerAllocationRecord `json:"waitlist"`
	Confidence string                   `json:"confidence"`
	Notes      string                   `json:"notes"`
}

// WeeklyEntry is a single section slot inside a weekly schedule block.
type WeeklyEntry struct {
	Section string `json:"section"`
	Note    string `json:"note"`
}

// WeeklyBlock maps venue name to the sections running in that time slot.
type WeeklyBlock struct {
	Weekday   string                   `json:"weekday"`
	TimeLabel string                   `json:"time_label"`
	Entries   map[string][]WeeklyEntry `json:"entries"`
}

// WeeklySchedule is the weekly_schedule fixture document.
type WeeklySchedule struct {
	Venues []string      `json:"venues"`
	Blocks []WeeklyBlock `json:"blocks"`
}
