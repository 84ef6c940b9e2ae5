package cmd

import (
	"strings"

	"github.com/leddie24/neetcode-tracker/internal/algorithm"
	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/models"
)

var statusMarker = map[algorithm.Status]string{
	algorithm.Completed: "✓",
	algorithm.Overdue:   "!",
	algorithm.DueToday:  "*",
	algorithm.Upcoming:  "·",
}

const markerLegend = "✓ done   ! overdue   * due today   · upcoming"

// reviewMarkers renders "R1✓ R2! R3· ..." for a solved record, "-" otherwise.
func reviewMarkers(rec models.ProgressRecord, today calendar.Date) string {
	schedule := algorithm.Schedule(rec, today)
	if len(schedule) == 0 {
		return "-"
	}
	parts := make([]string, len(schedule))
	for i, c := range schedule {
		parts[i] = c.Label() + statusMarker[c.Status]
	}
	return strings.Join(parts, " ")
}

func solvedLabel(rec models.ProgressRecord) string {
	if rec.Solved {
		return "Solved " + rec.SolvedDate.String()
	}
	return "Not Solved"
}
