package tui

import (
	"fmt"
	"strings"
	"time"

	"cinebook-cli/model"
)

// dateOffsets is the strip of selectable days: today plus the next two.
var dateOffsets = []int{0, 1, 2}

type theaterGroup struct {
	theater model.Theater
	shows   []model.Show
}

// groupShowsByTheater buckets shows by theater id. Groups appear in
// first-seen theater order and each group keeps the server's ordering of
// its shows.
func groupShowsByTheater(shows []model.Show) []theaterGroup {
	index := map[int64]int{}
	var groups []theaterGroup
	for _, show := range shows {
		i, ok := index[show.Theater.Id]
		if !ok {
			i = len(groups)
			index[show.Theater.Id] = i
			groups = append(groups, theaterGroup{theater: show.Theater})
		}
		groups[i].shows = append(groups[i].shows, show)
	}
	return groups
}

// flattenGroups lists the shows in display order so a single cursor index
// can walk the grouped view.
func flattenGroups(groups []theaterGroup) []model.Show {
	var out []model.Show
	for _, group := range groups {
		out = append(out, group.shows...)
	}
	return out
}

// dateForOffset recomputes the concrete day for an offset in the strip.
// The shows fetch always carries the resulting ISO date because
// availability is date-scoped server data.
func dateForOffset(now time.Time, offset int) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, offset)
}

func dateStrip(now time.Time, selected int) string {
	var parts []string
	for _, offset := range dateOffsets {
		day := dateForOffset(now, offset)
		label := day.Format("Mon 02 Jan")
		if offset == 0 {
			label = "Today"
		}
		if offset == selected {
			label = "[" + label + "]"
		}
		parts = append(parts, fmt.Sprintf("%d:%s", offset+1, label))
	}
	return strings.Join(parts, "  ")
}
