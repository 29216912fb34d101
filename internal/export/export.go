// internal/export/export.go

// Package export drives the portal handler offline and snapshots each page to
// disk, producing a browsable static copy of the admin views.
package export

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Page maps a portal path to its snapshot file relative to the output
// directory.
type Page struct {
	Path       string
	OutputFile string
}

// Pages is the fixed snapshot set, in landing-page order.
var Pages = []Page{
	{Path: "/admin/dashboard", OutputFile: "admin/dashboard/index.html"},
	{Path: "/admin/availability", OutputFile: "admin/availability/index.html"},
	{Path: "/admin/allocation", OutputFile: "admin/allocation/index.html"},
	{Path: "/admin/users", OutputFile: "admin/users/index.html"},
	{Path: "/admin/allocation/messages", OutputFile: "admin/allocation/messages/index.html"},
}

// BuildSite issues an in-process request for every page and writes each
// response body under outputDir, plus a landing page linking the snapshots.
// Any non-200 response aborts the build.
func BuildSite(handler http.Handler, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, page := range Pages {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, page.Path, nil)
		handler.ServeHTTP(recorder, request)

		if recorder.Code != http.StatusOK {
			return fmt.Errorf("snapshot of %s failed with status %d", page.Path, recorder.Code)
		}

		destination := filepath.Join(outputDir, filepath.FromSlash(page.OutputFile))
		if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", page.OutputFile, err)
		}
		if err := os.WriteFile(destination, recorder.Body.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", page.OutputFile, err)
		}
		log.Info().Str("path", page.Path).Str("file", page.OutputFile).Msg("Snapshot written")
	}

	indexPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(indexPage()), 0644); err != nil {
		return fmt.Errorf("writing index page: %w", err)
	}
	return nil
}

// indexPage builds the landing page linking every snapshot.
func indexPage() string {
	links := ""
	labels := map[string]string{
		"/admin/dashboard":           "Dashboard",
		"/admin/availability":        "Availability Planner",
		"/admin/allocation":          "Allocation Console",
		"/admin/users":               "Player Directory",
		"/admin/allocation/messages": "Allocation Messages",
	}
	for _, page := range Pages {
		links += fmt.Sprintf("      <li><a href=%q>%s</a></li>\n", page.OutputFile, labels[page.Path])
	}

	return `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>Baddersbot Admin Portal</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 3rem; color: #1f2430; }
      h1 { margin-bottom: 1.5rem; }
      ul { list-style: none; padding: 0; }
      li { margin-bottom: 0.75rem; }
      a { color: #1e88e5; text-decoration: none; font-weight: 600; }
      a:hover { text-decoration: underline; }
    </style>
  </head>
  <body>
    <h1>Baddersbot Admin Portal</h1>
    <p>Select a view to explore the static snapshot of the admin screens.</p>
    <ul>
` + links + `    </ul>
  </body>
</html>
`
}
