// internal/api/users/handlers.go
package users

import (
	"net/http"
	"strings"

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

type directoryPage struct {
	Title        string
	Nav          []nav.Link
	Records      []models.Player
	TotalCount   int
	VisibleCount int
	SearchQuery  string
}

// HandleDirectoryPage renders the player directory for
// GET /admin/users?search=<query>.
func HandleDirectoryPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	query := r.URL.Query().Get("search")

	players, err := database.ListPlayers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list players")
		http.Error(w, "Failed to load players", http.StatusInternalServerError)
		return
	}

	filtered := filterPlayers(players, query)
	page := directoryPage{
		Title:        "Player Directory",
		Nav:          nav.Links("users"),
		Records:      filtered,
		TotalCount:   len(players),
		VisibleCount: len(filtered),
		SearchQuery:  query,
	}
	if err := renderer.HTML(w, http.StatusOK, "user_management", page); err != nil {
		logger.Error().Err(err).Msg("Failed to render directory page")
	}
}

// filterPlayers keeps the players whose name, grade, payment status, or
// availability note contains the query, case-insensitively. An empty query
// keeps everyone.
func filterPlayers(players []models.Player, query string) []models.Player {
	if query == "" {
		return players
	}
	needle := strings.ToLower(query)

	var filtered []models.Player
	for _, player := range players {
		if matchesQuery(player, needle) {
			filtered = append(filtered, player)
		}
	}
	return filtered
}

func matchesQuery(player models.Player, needle string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		player.Name,
		player.Grade,
		string(player.PaymentStatus),
		player.AvailabilityNote,
	}, " "))
	return strings.Contains(haystack, needle)
}
