// internal/api/dashboard/types.go
package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/baddersbot/portal/internal/fixtures"
	"github.com/baddersbot/portal/internal/models"
)

// Metrics are the dashboard headline numbers.
type Metrics struct {
	TotalPlayers      int
	SessionsThisMonth int
	PendingPayments   int
	UnfilledSessions  int
}

// Alert is a single attention item shown above the session table.
type Alert struct {
	Category string
	Message  string
}

// SessionView is a session summary ready for display.
type SessionView struct {
	Date      time.Time
	Label     string
	Grade     string
	Venue     string
	Capacity  int
	Allocated int
}

// RemainingSlots is the open slot count, never negative.
func (s SessionView) RemainingSlots() int {
	if remaining := s.Capacity - s.Allocated; remaining > 0 {
		return remaining
	}
	return 0
}

// FillPercentage is the rounded allocated/capacity ratio in [0,100].
func (s SessionView) FillPercentage() int {
	if s.Capacity == 0 {
		return 0
	}
	fill := int(math.Round(float64(s.Allocated) / float64(s.Capacity) * 100))
	if fill > 100 {
		fill = 100
	}
	return fill
}

const upcomingWindowDays = 7

func loadPlayerSummaries(store *fixtures.Store) ([]models.PlayerSummary, error) {
	var players []models.PlayerSummary
	if err := store.Collection(fixtures.KeyPlayerSummaries, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func loadSessionSummaries(store *fixtures.Store, now time.Time) ([]SessionView, error) {
	var records []models.SessionSummary
	if err := store.Collection(fixtures.KeySessionSummaries, &records); err != nil {
		return nil, err
	}

	sessions := make([]SessionView, 0, len(records))
	for _, record := range records {
		sessions = append(sessions, SessionView{
			Date:      parseDate(record.Date, now),
			Label:     record.Label,
			Grade:     record.Grade,
			Venue:     record.Venue,
			Capacity:  record.Capacity,
			Allocated: record.Allocated,
		})
	}
	return sessions, nil
}

func buildMetrics(players []models.PlayerSummary, sessions []SessionView) Metrics {
	metrics := Metrics{
		TotalPlayers:      len(players),
		SessionsThisMonth: len(sessions),
	}
	for _, player := range players {
		if models.ParsePaymentStatus(player.PaymentStatus) != models.PaymentPaid {
			metrics.PendingPayments++
		}
	}
	for _, session := range sessions {
		if session.RemainingSlots() > 0 {
			metrics.UnfilledSessions++
		}
	}
	return metrics
}

func buildAlerts(players []models.PlayerSummary, sessions []SessionView) []Alert {
	var alerts []Alert

	var overdue []string
	for _, player := range players {
		if models.ParsePaymentStatus(player.PaymentStatus) == models.PaymentOverdue {
			overdue = append(overdue, player.Name)
		}
	}
	if len(overdue) > 0 {
		alerts = append(alerts, Alert{
			Category: "Payments",
			Message:  "Overdue payments: " + strings.Join(overdue, ", "),
		})
	}

	var unfilled []string
	for _, session := range sessions {
		if session.RemainingSlots() > 0 {
			unfilled = append(unfilled, fmt.Sprintf("%s (%d open)", session.Label, session.RemainingSlots()))
		}
	}
	if len(unfilled) > 0 {
		alerts = append(alerts, Alert{
			Category: "Capacity",
			Message:  "Open slots in " + strings.Join(unfilled, ", "),
		})
	}

	return alerts
}

// selectUpcomingSessions picks the sessions dated within [today, today+7d]
// inclusive, sorted ascending. When none qualify it falls back to the first
// six sessions overall.
func selectUpcomingSessions(sessions []SessionView, today time.Time) []SessionView {
	sorted := make([]SessionView, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	windowEnd := today.AddDate(0, 0, upcomingWindowDays)
	var upcoming []SessionView
	for _, session := range sorted {
		if !session.Date.Before(today) && !session.Date.After(windowEnd) {
			upcoming = append(upcoming, session)
		}
	}
	if len(upcoming) == 0 {
		limit := len(sorted)
		if limit > 6 {
			limit = 6
		}
		upcoming = sorted[:limit]
	}
	return upcoming
}

// formatWeekWindow renders the seven-day window label, e.g. "02 Apr – 08 Apr".
func formatWeekWindow(today time.Time) string {
	end := today.AddDate(0, 0, upcomingWindowDays-1)
	return fmt.Sprintf("%s – %s", today.Format("02 Jan"), end.Format("02 Jan"))
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
