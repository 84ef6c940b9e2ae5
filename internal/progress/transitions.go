package progress

import (
	"errors"
	"fmt"

	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/models"
)

var ErrNotSolved = errors.New("progress: problem is not solved")

// The functions in this file are the state machine. None of them mutates the
// state it is given; each returns a new ProgressState.

// MarkSolved stamps a problem solved today. Existing review flags are kept.
// A problem that is already solved is returned unchanged so its schedule
// does not restart.
func MarkSolved(state models.ProgressState, id int, today calendar.Date) models.ProgressState {
	if cur, ok := state[id]; ok && cur.Solved {
		return state.Clone()
	}
	next := state.Clone()
	rec := next[id]
	rec.Solved = true
	rec.SolvedDate = today
	rec.Reviews = normalizeReviews(rec.Reviews)
	if rec.Dates == nil {
		rec.Dates = map[string]calendar.Date{}
	}
	rec.Dates[models.InitialKey] = today
	next[id] = rec
	return next
}

// MarkUnsolved clears the solved flag and wipes every review flag and date.
// Solving the problem again starts its schedule from scratch.
func MarkUnsolved(state models.ProgressState, id int) models.ProgressState {
	next := state.Clone()
	next[id] = models.ProgressRecord{
		Reviews: make([]bool, models.ReviewCount),
		Dates:   map[string]calendar.Date{},
	}
	return next
}

// ToggleSolved flips between MarkSolved and MarkUnsolved.
func ToggleSolved(state models.ProgressState, id int, today calendar.Date) models.ProgressState {
	if state[id].Solved {
		return MarkUnsolved(state, id)
	}
	return MarkSolved(state, id, today)
}

// ToggleReview flips review checkpoint index (0..4) of a solved problem,
// stamping or removing its completion date. An index outside 0..4 is a
// caller bug and panics.
func ToggleReview(state models.ProgressState, id, index int, today calendar.Date) (models.ProgressState, error) {
	if index < 0 || index >= models.ReviewCount {
		panic(fmt.Sprintf("progress: review index %d out of range [0,%d)", index, models.ReviewCount))
	}
	cur, ok := state[id]
	if !ok || !cur.Solved {
		return state, fmt.Errorf("%w: %d", ErrNotSolved, id)
	}

	next := state.Clone()
	rec := next[id]
	rec.Reviews = normalizeReviews(rec.Reviews)
	if rec.Dates == nil {
		rec.Dates = map[string]calendar.Date{}
	}
	rec.Reviews[index] = !rec.Reviews[index]
	if rec.Reviews[index] {
		rec.Dates[models.ReviewKey(index)] = today
	} else {
		delete(rec.Dates, models.ReviewKey(index))
	}
	next[id] = rec
	return next, nil
}

// ClearAll returns an empty state.
func ClearAll() models.ProgressState {
	return models.ProgressState{}
}

// normalizeReviews pads (or trims) a flag slice to ReviewCount entries.
// Imported records may carry fewer flags.
func normalizeReviews(reviews []bool) []bool {
	out := make([]bool, models.ReviewCount)
	copy(out, reviews)
	return out
}
