// internal/api/availability/handlers.go
package availability

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/baddersbot/portal/internal/api/nav"
	appdb "github.com/baddersbot/portal/internal/db"
	"github.com/baddersbot/portal/internal/models"
)

var (
	database *appdb.DB
	renderer *render.Render
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB, r *render.Render) {
	database = db
	renderer = r
}

// PlayerOption is a selectable player in the planner form.
type PlayerOption struct {
	ID    string
	Name  string
	Grade string
}

// Label is the option text, e.g. "Amelia Chan (Grade A)".
func (o PlayerOption) Label() string {
	return fmt.Sprintf("%s (Grade %s)", o.Name, o.Grade)
}

// Flash is a one-shot status banner shown after a submission.
type Flash struct {
	Message  string
	Severity string
}

type plannerPage struct {
	Title          string
	Nav            []nav.Link
	Players        []PlayerOption
	Submissions    []appdb.AvailabilitySnapshot
	Flash          *Flash
	RecentPlayerID string
	RecentDates    []time.Time
}

type slotsResponse struct {
	PlayerID string   `json:"player_id"`
	Dates    []string `json:"dates"`
}

// HandlePlannerPage renders the availability planner for
// GET /admin/availability.
func HandlePlannerPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	page, err := buildPlannerPage(r)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build availability planner")
		http.Error(w, "Failed to load availability", http.StatusInternalServerError)
		return
	}
	if err := renderer.HTML(w, http.StatusOK, "availability_planner", page); err != nil {
		logger.Error().Err(err).Msg("Failed to render availability planner")
	}
}

// HandleSubmit saves a player's availability for POST /admin/availability.
// An unknown player id re-renders the planner unchanged rather than erroring.
func HandleSubmit(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	playerID := strings.TrimSpace(r.PostFormValue("player_id"))

	player, err := database.GetPlayer(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Warn().Str("player_id", playerID).Msg("Availability submitted for unknown player")
			HandlePlannerPage(w, r)
			return
		}
		logger.Error().Err(err).Str("player_id", playerID).Msg("Failed to load player")
		http.Error(w, "Failed to load player", http.StatusInternalServerError)
		return
	}

	dates := parseDates(r.PostFormValue("available_dates"))
	if err := database.SetAvailability(r.Context(), player.ID, dates); err != nil {
		logger.Error().Err(err).Str("player_id", player.ID).Msg("Failed to save availability")
		http.Error(w, "Failed to save availability", http.StatusInternalServerError)
		return
	}

	saved, err := database.GetAvailability(r.Context(), player.ID)
	if err != nil {
		logger.Error().Err(err).Str("player_id", player.ID).Msg("Failed to reload availability")
		http.Error(w, "Failed to load availability", http.StatusInternalServerError)
		return
	}

	page, err := buildPlannerPage(r)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build availability planner")
		http.Error(w, "Failed to load availability", http.StatusInternalServerError)
		return
	}
	page.Flash = &Flash{
		Message:  fmt.Sprintf("Saved availability for %s (%d dates).", player.Name, len(saved)),
		Severity: "success",
	}
	page.RecentPlayerID = player.ID
	page.RecentDates = saved

	if err := renderer.HTML(w, http.StatusOK, "availability_planner", page); err != nil {
		logger.Error().Err(err).Msg("Failed to render availability planner")
	}
}

// HandleSlots serves GET /admin/availability/{player_id}/slots as JSON. An
// unknown player yields a 404 with an empty date list.
func HandleSlots(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	playerID := r.PathValue("player_id")

	if _, err := database.GetPlayer(r.Context(), playerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderer.JSON(w, http.StatusNotFound, slotsResponse{PlayerID: playerID, Dates: []string{}})
			return
		}
		logger.Error().Err(err).Str("player_id", playerID).Msg("Failed to load player")
		http.Error(w, "Failed to load player", http.StatusInternalServerError)
		return
	}

	dates, err := database.GetAvailability(r.Context(), playerID)
	if err != nil {
		logger.Error().Err(err).Str("player_id", playerID).Msg("Failed to load availability")
		http.Error(w, "Failed to load availability", http.StatusInternalServerError)
		return
	}

	payload := slotsResponse{PlayerID: playerID, Dates: make([]string, 0, len(dates))}
	for _, day := range dates {
		payload.Dates = append(payload.Dates, day.Format(models.DateLayout))
	}
	renderer.JSON(w, http.StatusOK, payload)
}

func buildPlannerPage(r *http.Request) (plannerPage, error) {
	players, err := database.ListPlayers(r.Context())
	if err != nil {
		return plannerPage{}, err
	}
	snapshots, err := database.ListAvailabilitySnapshots(r.Context())
	if err != nil {
		return plannerPage{}, err
	}

	options := make([]PlayerOption, 0, len(players))
	for _, player := range players {
		options = append(options, PlayerOption{ID: player.ID, Name: player.Name, Grade: player.Grade})
	}

	return plannerPage{
		Title:       "Availability Planner",
		Nav:         nav.Links("availability"),
		Players:     options,
		Submissions: snapshots,
	}, nil
}

// parseDates parses a comma-separated list of ISO dates, silently dropping
// tokens that fail to parse, and returns the deduplicated sorted remainder.
func parseDates(raw string) []time.Time {
	seen := make(map[string]struct{})
	var dates []time.Time
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		day, err := time.Parse(models.DateLayout, token)
		if err != nil {
			continue
		}
		iso := day.Format(models.DateLayout)
		if _, ok := seen[iso]; ok {
			continue
		}
		seen[iso] = struct{}{}
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
