// internal/api/dashboard/schedule.go
package dashboard

import (
	"sort"

	"github.com/baddersbot/portal/internal/fixtures"
	"github.com/baddersbot/portal/internal/models"
)

// weekdayOrder fixes the display order Monday through Sunday.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Color is a background/foreground pair for a schedule section chip.
type Color struct {
	BG string
	FG string
}

// DefaultColor is used for sections without a palette entry.
var DefaultColor = Color{BG: "#e5e7eb", FG: "#1f2937"}

// sectionColors is the static palette keyed by section name.
var sectionColors = map[string]Color{
	"A Section":      {BG: "#dcb6ff", FG: "#43186b"},
	"B1 Section":     {BG: "#ffe08a", FG: "#5b4300"},
	"B2 Section":     {BG: "#cde5ff", FG: "#123d73"},
	"B3 Section":     {BG: "#bde8c3", FG: "#0e5133"},
	"B Sections":     {BG: "#8ad0a4", FG: "#053822"},
	"Coaching":       {BG: "#a7d4ff", FG: "#0b3c63"},
	"Singles":        {BG: "#ffcc80", FG: "#6b3a00"},
	"Match Practice": {BG: "#ffd4e6", FG: "#742144"},
}

// sectionAnchors maps section names to the allocation page anchor they link
// to. Sections not listed get no anchor.
var sectionAnchors = map[string]string{
	"A Section":      "grade-a",
	"Coaching":       "grade-a",
	"B Sections":     "grade-b",
	"B1 Section":     "grade-b",
	"B2 Section":     "grade-b",
	"B3 Section":     "grade-b",
	"Singles":        "grade-b",
	"Match Practice": "grade-b",
}

// ScheduleEntry is one section chip inside a schedule block, with its color
// and optional allocation anchor already resolved.
type ScheduleEntry struct {
	Section          string
	Note             string
	AllocationAnchor string
	Color            Color
}

// ScheduleBlock is one weekday/time slot mapping venue to its sections.
type ScheduleBlock struct {
	Weekday   string
	TimeLabel string
	Entries   map[string][]ScheduleEntry
}

// DaySchedule groups the blocks of a single weekday.
type DaySchedule struct {
	Weekday string
	Blocks  []ScheduleBlock
}

// loadWeeklySchedule decodes the weekly_schedule fixture document and returns
// the venue list plus blocks sorted by (weekday index, time label).
func loadWeeklySchedule(store *fixtures.Store) ([]string, []ScheduleBlock, error) {
	var schedule models.WeeklySchedule
	if err := store.Document(fixtures.KeyWeeklySchedule, &schedule); err != nil {
		return nil, nil, err
	}

	blocks := make([]ScheduleBlock, 0, len(schedule.Blocks))
	for _, raw := range schedule.Blocks {
		entries := make(map[string][]ScheduleEntry, len(raw.Entries))
		for venue, items := range raw.Entries {
			list := make([]ScheduleEntry, 0, len(items))
			for _, item := range items {
				list = append(list, ScheduleEntry{
					Section:          item.Section,
					Note:             item.Note,
					AllocationAnchor: sectionAnchors[item.Section],
					Color:            sectionColor(item.Section),
				})
			}
			entries[venue] = list
		}
		blocks = append(blocks, ScheduleBlock{
			Weekday:   raw.Weekday,
			TimeLabel: raw.TimeLabel,
			Entries:   entries,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		wi, wj := weekdayIndex(blocks[i].Weekday), weekdayIndex(blocks[j].Weekday)
		if wi != wj {
			return wi < wj
		}
		return blocks[i].TimeLabel < blocks[j].TimeLabel
	})

	return schedule.Venues, blocks, nil
}

// groupBlocksByWeekday folds sorted blocks into per-day groups, omitting days
// with no blocks.
func groupBlocksByWeekday(blocks []ScheduleBlock) []DaySchedule {
	byDay := make(map[string][]ScheduleBlock)
	for _, block := range blocks {
		byDay[block.Weekday] = append(byDay[block.Weekday], block)
	}

	var days []DaySchedule
	for _, weekday := range weekdayOrder {
		dayBlocks := byDay[weekday]
		if len(dayBlocks) == 0 {
			continue
		}
		days = append(days, DaySchedule{Weekday: weekday, Blocks: dayBlocks})
	}
	return days
}

func sectionColor(section string) Color {
	if color, ok := sectionColors[section]; ok {
		return color
	}
	return DefaultColor
}

// weekdayIndex orders unknown weekdays after Sunday rather than failing.
func weekdayIndex(weekday string) int {
	for i, name := range weekdayOrder {
		if name == weekday {
			return i
		}
	}
	return len(weekdayOrder)
}
