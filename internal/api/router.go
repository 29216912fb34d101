// internal/api/router.go
package api

import (
	"net/http"

	"github.com/unrolled/render"

	"github.com/baddersbot/portal/internal/api/allocation"
	"github.com/baddersbot/portal/internal/api/availability"
	"github.com/baddersbot/portal/internal/api/dashboard"
	"github.com/baddersbot/portal/internal/api/users"
	appdb "github.com/baddersbot/portal/internal/db"
	"github.com/baddersbot/portal/internal/fixtures"
)

// NewHandler wires every route group to its dependencies and returns the
// fully assembled portal handler, middleware included. Both the server and
// the static site exporter build their handler here.
func NewHandler(database *appdb.DB, store *fixtures.Store, renderer *render.Render) http.Handler {
	dashboard.InitHandlers(store, renderer)
	allocation.InitHandlers(store, renderer)
	availability.InitHandlers(database, renderer)
	users.InitHandlers(database, renderer)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		renderer.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /admin/dashboard", dashboard.HandleDashboardPage)
	mux.HandleFunc("GET /admin/availability", availability.HandlePlannerPage)
	mux.HandleFunc("POST /admin/availability", availability.HandleSubmit)
	mux.HandleFunc("GET /admin/availability/{player_id}/slots", availability.HandleSlots)
	mux.HandleFunc("GET /admin/allocation", allocation.HandleAllocationPage)
	mux.HandleFunc("GET /admin/allocation/messages", allocation.HandleMessagesPage)
	mux.HandleFunc("GET /admin/users", users.HandleDirectoryPage)

	return ChainMiddleware(
		mux,
		WithLogging,
		WithRecovery,
		WithRequestID,
		WithContentType,
	)
}
