// internal/api/allocation/messages.go
package allocation

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// GroupMessage is a ready-to-paste group chat announcement for one session.
type GroupMessage struct {
	ID        string
	Label     string
	Date      time.Time
	Grade     string
	Confirmed []string
	Waitlist  []string
	Notes     string
	Message   string
}

// HasWaitlist reports whether the session carries a waitlist.
func (m GroupMessage) HasWaitlist() bool {
	return len(m.Waitlist) > 0
}

// buildMessages composes one announcement per session, sorted by session
// date ascending.
func buildMessages(sessions []Session) []GroupMessage {
	messages := make([]GroupMessage, 0, len(sessions))
	for _, session := range sessions {
		confirmed := playerNames(session.Assigned)
		waitlist := playerNames(session.Waitlist)
		messages = append(messages, GroupMessage{
			ID:        session.ID,
			Label:     session.Label,
			Date:      session.Date,
			Grade:     session.Grade,
			Confirmed: confirmed,
			Waitlist:  waitlist,
			Notes:     session.Notes,
			Message:   composeMessage(session, confirmed, waitlist),
		})
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Date.Before(messages[j].Date)
	})
	return messages
}

// composeMessage builds the multi-line announcement for one session. The
// session label splits on its first "-" into a time part and an optional
// location, e.g. "Tue 6pm - Court 1".
func composeMessage(session Session, confirmed, waitlist []string) string {
	weekday := session.Date.Format("Monday")
	dateLabel := session.Date.Format("02 Jan")
	timePart, location := splitLabel(session.Label)

	var lines []string
	locationFragment := ""
	if location != "" {
		locationFragment = " at " + location
	}
	lines = append(lines, fmt.Sprintf("%s's players%s (%s)", weekday, locationFragment, dateLabel))
	if timePart != "" {
		lines = append(lines, "", timePart+":")
	}

	if len(confirmed) > 0 {
		lines = append(lines, joinNames(confirmed))
	} else {
		lines = append(lines, "No confirmed players listed yet.")
	}

	if len(waitlist) > 0 {
		lines = append(lines, "", "Waitlist: "+joinNames(waitlist))
	}

	if session.Notes != "" {
		lines = append(lines, "", "Notes: "+session.Notes)
	}

	lines = append(lines, "")
	lines = append(lines, "Any cancellations, let me know ASAP! 🏸😊")
	lines = append(lines, "The key will need collecting and returning – volunteer sooner rather than later!")

	return strings.Join(lines, "\n")
}

// splitLabel splits a session label on its first "-" into a time part and an
// optional location, trimming whitespace on both halves. Labels without a
// "-" keep the whole label as the time part and no location.
func splitLabel(label string) (string, string) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(label), ""
}

// joinNames joins names with commas and an "&" before the final name:
// [] -> "", [A] -> "A", [A B] -> "A, & B", [A B C] -> "A, B, & C".
func joinNames(names []string) string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	switch len(cleaned) {
	case 0:
		return ""
	case 1:
		return cleaned[0]
	default:
		return strings.Join(cleaned[:len(cleaned)-1], ", ") + fmt.Sprintf(", & %s", cleaned[len(cleaned)-1])
	}
}

func playerNames(players []PlayerAllocation) []string {
	names := make([]string, 0, len(players))
	for _, player := range players {
		names = append(names, player.Name)
	}
	return names
}
