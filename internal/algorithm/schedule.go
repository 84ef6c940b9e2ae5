package algorithm

import (
	"strconv"

	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/models"
)

// Intervals are the review checkpoints, in days after the solve date.
var Intervals = [models.ReviewCount]int{1, 3, 7, 14, 30}

// NextReviewDates returns the five checkpoint dates for a solve date, in
// ascending order. A zero solve date has no schedule.
func NextReviewDates(solved calendar.Date) []calendar.Date {
	if solved.IsZero() {
		return nil
	}
	dates := make([]calendar.Date, len(Intervals))
	for i, days := range Intervals {
		dates[i] = solved.AddDays(days)
	}
	return dates
}

// Classify places one checkpoint relative to today. Completion wins over any date.
func Classify(due calendar.Date, completed bool, today calendar.Date) Status {
	switch {
	case completed:
		return Completed
	case due.Before(today):
		return Overdue
	case due == today:
		return DueToday
	default:
		return Upcoming
	}
}

// Checkpoint is one row of a record's review schedule.
type Checkpoint struct {
	Index       int // 0-based
	Due         calendar.Date
	CompletedOn calendar.Date
	Status      Status
}

// Label is the short name shown to users, R1..R5.
func (c Checkpoint) Label() string {
	return "R" + strconv.Itoa(c.Index+1)
}

// Schedule classifies every checkpoint of a record. Unsolved records have none.
func Schedule(rec models.ProgressRecord, today calendar.Date) []Checkpoint {
	if !rec.Solved {
		return nil
	}
	dates := NextReviewDates(rec.SolvedDate)
	out := make([]Checkpoint, len(dates))
	for i, due := range dates {
		out[i] = Checkpoint{
			Index:       i,
			Due:         due,
			CompletedOn: rec.ReviewDate(i),
			Status:      Classify(due, rec.ReviewDone(i), today),
		}
	}
	return out
}

// IsDueForReview reports whether a solved record has a checkpoint on or before
// today that is not yet done.
func IsDueForReview(rec models.ProgressRecord, today calendar.Date) bool {
	if !rec.Solved {
		return false
	}
	for i, due := range NextReviewDates(rec.SolvedDate) {
		if !rec.ReviewDone(i) && !due.After(today) {
			return true
		}
	}
	return false
}

// DueProblems filters problems down to those due for review, keeping order.
func DueProblems(problems []models.Problem, state models.ProgressState, today calendar.Date) []models.Problem {
	var due []models.Problem
	for _, p := range problems {
		rec, ok := state[p.ID]
		if ok && IsDueForReview(rec, today) {
			due = append(due, p)
		}
	}
	return due
}

// DueCount is len(DueProblems(...)).
func DueCount(problems []models.Problem, state models.ProgressState, today calendar.Date) int {
	return len(DueProblems(problems, state, today))
}

// NextDue returns the earliest incomplete checkpoint, if any.
func NextDue(rec models.ProgressRecord, today calendar.Date) (Checkpoint, bool) {
	for _, c := range Schedule(rec, today) {
		if c.Status != Completed {
			return c, true
		}
	}
	return Checkpoint{}, false
}
