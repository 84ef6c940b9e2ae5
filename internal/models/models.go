package models

import (
	"fmt"
	"strings"

	"github.com/leddie24/neetcode-tracker/internal/calendar"
)

// ReviewCount is the number of review checkpoints each solved problem gets.
const ReviewCount = 5

// InitialKey is the Dates key holding the solve date.
const InitialKey = "initial"

// Difficulty is the catalog's difficulty label.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the labels in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts any casing of Easy, Medium or Hard.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want Easy, Medium or Hard)", s)
}

// Problem is one catalog entry. Only Notes is ever written after load.
type Problem struct {
	ID         int        `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Category   string     `json:"category" yaml:"category"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Day        int        `json:"day,omitempty" yaml:"day,omitempty"`
	URL        string     `json:"url" yaml:"url"`
	Notes      string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ProgressRecord is the per-problem review state. The JSON shape matches the
// browser tracker's localStorage value so old exports stay importable.
type ProgressRecord struct {
	Solved     bool                     `json:"solved"`
	SolvedDate calendar.Date            `json:"solvedDate"`
	Reviews    []bool                   `json:"reviews"`
	Dates      map[string]calendar.Date `json:"dates"`
}

// ReviewKey is the Dates key for review index i (0-based), e.g. "review1".
func ReviewKey(i int) string {
	return fmt.Sprintf("review%d", i+1)
}

// ReviewDone reports the completion flag for review i; missing flags are false.
func (r ProgressRecord) ReviewDone(i int) bool {
	return i >= 0 && i < len(r.Reviews) && r.Reviews[i]
}

// ReviewDate is the day review i was marked complete, or the zero Date.
func (r ProgressRecord) ReviewDate(i int) calendar.Date {
	return r.Dates[ReviewKey(i)]
}

// CompletedReviews counts the set flags.
func (r ProgressRecord) CompletedReviews() int {
	n := 0
	for _, done := range r.Reviews {
		if done {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (r ProgressRecord) Clone() ProgressRecord {
	out := r
	if r.Reviews != nil {
		out.Reviews = append([]bool(nil), r.Reviews...)
	}
	if r.Dates != nil {
		out.Dates = make(map[string]calendar.Date, len(r.Dates))
		for k, v := range r.Dates {
			out.Dates[k] = v
		}
	}
	return out
}

// ProgressState maps problem ID to its record. JSON keys are decimal strings.
type ProgressState map[int]ProgressRecord

// Clone returns a deep copy; a nil state clones to an empty one.
func (s ProgressState) Clone() ProgressState {
	out := make(ProgressState, len(s))
	for id, rec := range s {
		out[id] = rec.Clone()
	}
	return out
}

// SolvedCount counts solved records.
func (s ProgressState) SolvedCount() int {
	n := 0
	for _, rec := range s {
		if rec.Solved {
			n++
		}
	}
	return n
}

// ProblemNote is the per-problem part of an export file.
type ProblemNote struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Snapshot is the export file.
type Snapshot struct {
	Progress   ProgressState `json:"progress"`
	Problems   []ProblemNote `json:"problems"`
	ExportDate calendar.Date `json:"exportDate"`
}

// EventKind names a state transition recorded in the activity log.
type EventKind string

const (
	EventSolved       EventKind = "solved"
	EventUnsolved     EventKind = "unsolved"
	EventReviewDone   EventKind = "review_done"
	EventReviewUndone EventKind = "review_undone"
	EventCleared      EventKind = "cleared"
	EventImported     EventKind = "imported"
)

// Event is one entry of the activity log. ReviewIndex is 0-based and only
// meaningful for review events; ProblemID is 0 for whole-state events.
type Event struct {
	ProblemID   int           `json:"problem_id"`
	Kind        EventKind     `json:"kind"`
	ReviewIndex int           `json:"review_index"`
	On          calendar.Date `json:"on_date"`
}

type ActivityStats struct {
	TotalEvents      int
	SolvesTotal      int
	ReviewsTotal     int
	ReviewsLast7Days int
	BusiestDay       calendar.Date
	BusiestDayCount  int
	CountByKind      map[EventKind]int
}
