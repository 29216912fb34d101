// internal/api/dashboard/handlers.go
package dashboard

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/baddersbot/portal/internal/api/nav"
	"github.com/baddersbot/portal/internal/fixtures"
)

var (
	store    *fixtures.Store
	renderer *render.Render
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *fixtures.Store, r *render.Render) {
	store = s
	renderer = r
}

type dashboardPage struct {
	Title            string
	Nav              []nav.Link
	Metrics          Metrics
	Sessions         []SessionView
	Alerts           []Alert
	UpcomingSessions []SessionView
	WeekWindowLabel  string
	WeeklyVenues     []string
	WeeklyDays       []DaySchedule
}

// HandleDashboardPage renders the administrator dashboard for
// GET /admin/dashboard.
func HandleDashboardPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	page, err := buildDashboardPage(store, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build dashboard")
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	if err := renderer.HTML(w, http.StatusOK, "admin_dashboard", page); err != nil {
		logger.Error().Err(err).Msg("Failed to render dashboard page")
	}
}

func buildDashboardPage(store *fixtures.Store, now time.Time) (dashboardPage, error) {
	players, err := loadPlayerSummaries(store)
	if err != nil {
		return dashboardPage{}, err
	}
	sessions, err := loadSessionSummaries(store, now)
	if err != nil {
		return dashboardPage{}, err
	}
	venues, blocks, err := loadWeeklySchedule(store)
	if err != nil {
		return dashboardPage{}, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return dashboardPage{
		Title:            "Administrator Dashboard",
		Nav:              nav.Links("dashboard"),
		Metrics:          buildMetrics(players, sessions),
		Sessions:         sessions,
		Alerts:           buildAlerts(players, sessions),
		UpcomingSessions: selectUpcomingSessions(sessions, today),
		WeekWindowLabel:  formatWeekWindow(today),
		WeeklyVenues:     venues,
		WeeklyDays:       groupBlocksByWeekday(blocks),
	}, nil
}
