// internal/api/allocation/handlers.go
package allocation

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

type allocationPage struct {
	Title    string
	Nav      []nav.Link
	Sessions []Session
	Summary  Summary
}

type messagesPage struct {
	Title        string
	Nav          []nav.Link
	Messages     []GroupMessage
	SessionCount int
}

// HandleAllocationPage renders the allocation workspace for
// GET /admin/allocation.
func HandleAllocationPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	sessions, err := loadSessions(store, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load session allocations")
		http.Error(w, "Failed to load allocations", http.StatusInternalServerError)
		return
	}

	page := allocationPage{
		Title:    "Session Allocation Control",
		Nav:      nav.Links("allocation"),
		Sessions: sessions,
		Summary:  buildSummary(sessions),
	}
	if err := renderer.HTML(w, http.StatusOK, "allocation_management", page); err != nil {
		logger.Error().Err(err).Msg("Failed to render allocation page")
	}
}

// HandleMessagesPage renders group-chat-ready announcements for
// GET /admin/allocation/messages.
func HandleMessagesPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	sessions, err := loadSessions(store, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load session allocations")
		http.Error(w, "Failed to load allocations", http.StatusInternalServerError)
		return
	}

	messages := buildMessages(sessions)
	page := messagesPage{
		Title:        "Message Builder",
		Nav:          nav.Links("messages"),
		Messages:     messages,
		SessionCount: len(messages),
	}
	if err := renderer.HTML(w, http.StatusOK, "allocation_messages", page); err != nil {
		logger.Error().Err(err).Msg("Failed to render messages page")
	}
}
