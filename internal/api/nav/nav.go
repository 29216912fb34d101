// internal/api/nav/nav.go

// Package nav holds the fixed admin navigation bar rendered by the shared
// layout.
package nav

// Link is one entry in the admin navigation bar.
type Link struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

var links = []Link{
	{Key: "dashboard", Label: "Dashboard", Href: "/admin/dashboard"},
	{Key: "users", Label: "Users", Href: "/admin/users"},
	{Key: "availability", Label: "Availability", Href: "/admin/availability"},
	{Key: "allocation", Label: "Allocation", Href: "/admin/allocation"},
	{Key: "messages", Label: "Messages", Href: "/admin/allocation/messages"},
}

// Links returns the navigation bar with the given key flagged active.
func Links(activeKey string) []Link {
	out := make([]Link, len(links))
	copy(out, links)
	for i := range out {
		out[i].Active = out[i].Key == activeKey
	}
	return out
}
