// internal/templates/render.go

// Package templates owns the embedded HTML templates and the renderer shared
// by every page handler. View builders hand over plain structs; everything
// here is formatting only.
package templates

import (
	"embed"
	"html/template"
	"time"

	"github.com/unrolled/render"
)

//go:embed pages
var pages embed.FS

// New returns the shared renderer over the embedded template set.
func New() *render.Render {
	return render.New(render.Options{
		Directory: "pages",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: pages,
		},
		Funcs: []template.FuncMap{
			{
				"shortdate": shortDateFormatter,
				"isodate":   isoDateFormatter,
			},
		},
	})
}

// shortDateFormatter renders a date the way it appears in group chat
// announcements, e.g. "02 Apr".
func shortDateFormatter(t time.Time) string {
	return t.Format("02 Jan")
}

func isoDateFormatter(t time.Time) string {
	return t.Format("2006-01-02")
}
