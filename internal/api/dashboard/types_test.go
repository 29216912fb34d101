package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/baddersbot/portal/internal/models"
)

func day(value string) time.Time {
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestBuildMetrics(t *testing.T) {
	players := []models.PlayerSummary{
		{Name: "Amelia Chan", PaymentStatus: "Paid"},
		{Name: "Noah Patel", PaymentStatus: "Pending"},
		{Name: "Zane Murray", PaymentStatus: "Overdue"},
		{Name: "Priya Raman", PaymentStatus: "not-a-status"},
	}
	sessions := []SessionView{
		{Label: "Tue 6pm", Capacity: 8, Allocated: 8},
		{Label: "Thu 7pm", Capacity: 8, Allocated: 5},
	}

	metrics := buildMetrics(players, sessions)
	if metrics.TotalPlayers != 4 {
		t.Fatalf("TotalPlayers = %d, want 4", metrics.TotalPlayers)
	}
	if metrics.SessionsThisMonth != 2 {
		t.Fatalf("SessionsThisMonth = %d, want 2", metrics.SessionsThisMonth)
	}
	// Anything other than Paid counts as pending, including unparsable values.
	if metrics.PendingPayments != 3 {
		t.Fatalf("PendingPayments = %d, want 3", metrics.PendingPayments)
	}
	if metrics.UnfilledSessions != 1 {
		t.Fatalf("UnfilledSessions = %d, want 1", metrics.UnfilledSessions)
	}
}

func TestBuildAlerts(t *testing.T) {
	players := []models.PlayerSummary{
		{Name: "Amelia Chan", PaymentStatus: "Paid"},
		{Name: "Zane Murray", PaymentStatus: "Overdue"},
		{Name: "Eva Müller", PaymentStatus: "Overdue"},
	}
	sessions := []SessionView{
		{Label: "Tue 6pm - Court 1", Capacity: 8, Allocated: 6},
		{Label: "Sat 9am - Court 3", Capacity: 8, Allocated: 8},
	}

	alerts := buildAlerts(players, sessions)
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}
	if alerts[0].Category != "Payments" {
		t.Fatalf("alerts[0].Category = %q, want Payments", alerts[0].Category)
	}
	if want := "Overdue payments: Zane Murray, Eva Müller"; alerts[0].Message != want {
		t.Fatalf("payments alert = %q, want %q", alerts[0].Message, want)
	}
	if alerts[1].Category != "Capacity" {
		t.Fatalf("alerts[1].Category = %q, want Capacity", alerts[1].Category)
	}
	if want := "Open slots in Tue 6pm - Court 1 (2 open)"; alerts[1].Message != want {
		t.Fatalf("capacity alert = %q, want %q", alerts[1].Message, want)
	}
}

func TestBuildAlertsAllClear(t *testing.T) {
	players := []models.PlayerSummary{{Name: "Amelia Chan", PaymentStatus: "Paid"}}
	sessions := []SessionView{{Label: "Tue 6pm", Capacity: 4, Allocated: 4}}

	if alerts := buildAlerts(players, sessions); len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", alerts)
	}
}

func TestSelectUpcomingSessionsWindow(t *testing.T) {
	today := day("2024-04-02")
	sessions := []SessionView{
		{Label: "next week", Date: day("2024-04-09")},
		{Label: "last week", Date: day("2024-03-26")},
		{Label: "today", Date: day("2024-04-02")},
		{Label: "midweek", Date: day("2024-04-04")},
		{Label: "too far", Date: day("2024-04-10")},
	}

	upcoming := selectUpcomingSessions(sessions, today)
	var labels []string
	for _, session := range upcoming {
		labels = append(labels, session.Label)
	}
	want := []string{"today", "midweek", "next week"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("upcoming = %v, want %v", labels, want)
	}
}

func TestSelectUpcomingSessionsFallback(t *testing.T) {
	today := day("2025-01-01")
	var sessions []SessionView
	for _, date := range []string{
		"2024-04-11", "2024-04-02", "2024-04-09", "2024-04-04",
		"2024-04-16", "2024-04-06", "2024-04-13",
	} {
		sessions = append(sessions, SessionView{Label: date, Date: day(date)})
	}

	// No session falls in the window, so the first six by date come back.
	upcoming := selectUpcomingSessions(sessions, today)
	if len(upcoming) != 6 {
		t.Fatalf("got %d sessions, want 6", len(upcoming))
	}
	if upcoming[0].Label != "2024-04-02" {
		t.Fatalf("first fallback session = %q, want 2024-04-02", upcoming[0].Label)
	}
	if upcoming[5].Label != "2024-04-13" {
		t.Fatalf("last fallback session = %q, want 2024-04-13", upcoming[5].Label)
	}
}

func TestFormatWeekWindow(t *testing.T) {
	if got := formatWeekWindow(day("2024-04-02")); got != "02 Apr – 08 Apr" {
		t.Fatalf("formatWeekWindow = %q", got)
	}
	// Window crossing a month boundary.
	if got := formatWeekWindow(day("2024-01-29")); got != "29 Jan – 04 Feb" {
		t.Fatalf("formatWeekWindow = %q", got)
	}
}

func TestParseDateFallback(t *testing.T) {
	fallback := day("2024-04-02")
	if got := parseDate("", fallback); !got.Equal(fallback) {
		t.Fatalf("empty date = %v, want fallback", got)
	}
	if got := parseDate("04/02/2024", fallback); !got.Equal(fallback) {
		t.Fatalf("unparsable date = %v, want fallback", got)
	}
	if got := parseDate("2024-04-06", fallback); !got.Equal(day("2024-04-06")) {
		t.Fatalf("valid date = %v", got)
	}
}
