package progress

import (
	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/logger"
	"github.com/leddie24/neetcode-tracker/internal/models"
)

// Persister is the storage slot behind a Store. Load never fails: an absent or
// unreadable slot yields an empty state.
type Persister interface {
	Load() models.ProgressState
	Save(state models.ProgressState) error
}

// EventRecorder receives one event per effective transition.
type EventRecorder interface {
	RecordEvent(e models.Event) error
}

// Store owns the ProgressState and is the only way to change it. Every
// mutation replaces the whole map and is then saved once; a failed save is
// logged and the in-memory state stays authoritative.
type Store struct {
	state     models.ProgressState
	persister Persister
	events    EventRecorder
	clock     calendar.Clock
	log       *logger.Logger
}

type Option func(*Store)

// WithEvents attaches an activity log.
func WithEvents(r EventRecorder) Option {
	return func(s *Store) { s.events = r }
}

// WithLogger replaces the default no-op logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore loads the current state from p.
func NewStore(p Persister, clock calendar.Clock, opts ...Option) *Store {
	s := &Store{
		persister: p,
		clock:     clock,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = p.Load()
	if s.state == nil {
		s.state = models.ProgressState{}
	}
	return s
}

// State returns a copy of the whole mapping.
func (s *Store) State() models.ProgressState {
	return s.state.Clone()
}

// Record returns a copy of one record and whether it exists.
func (s *Store) Record(id int) (models.ProgressRecord, bool) {
	rec, ok := s.state[id]
	return rec.Clone(), ok
}

func (s *Store) MarkSolved(id int) models.ProgressRecord {
	today := s.clock.Today()
	wasSolved := s.state[id].Solved
	s.commit(MarkSolved(s.state, id, today))
	if !wasSolved {
		s.record(models.Event{ProblemID: id, Kind: models.EventSolved, On: today})
	}
	return s.state[id].Clone()
}

func (s *Store) MarkUnsolved(id int) models.ProgressRecord {
	wasSolved := s.state[id].Solved
	s.commit(MarkUnsolved(s.state, id))
	if wasSolved {
		s.record(models.Event{ProblemID: id, Kind: models.EventUnsolved, On: s.clock.Today()})
	}
	return s.state[id].Clone()
}

func (s *Store) ToggleSolved(id int) models.ProgressRecord {
	if s.state[id].Solved {
		return s.MarkUnsolved(id)
	}
	return s.MarkSolved(id)
}

// ToggleReview flips review index (0..4). It returns ErrNotSolved for a
// problem that is not solved and panics on an out-of-range index.
func (s *Store) ToggleReview(id, index int) (models.ProgressRecord, error) {
	today := s.clock.Today()
	next, err := ToggleReview(s.state, id, index, today)
	if err != nil {
		return models.ProgressRecord{}, err
	}
	s.commit(next)

	rec := s.state[id]
	kind := models.EventReviewUndone
	if rec.ReviewDone(index) {
		kind = models.EventReviewDone
	}
	s.record(models.Event{ProblemID: id, Kind: kind, ReviewIndex: index, On: today})
	return rec.Clone(), nil
}

// ClearAll drops every record.
func (s *Store) ClearAll() {
	s.commit(ClearAll())
	s.record(models.Event{Kind: models.EventCleared, On: s.clock.Today()})
}

// Replace swaps in an imported state wholesale; nothing is merged.
func (s *Store) Replace(state models.ProgressState) {
	s.commit(state.Clone())
	s.record(models.Event{Kind: models.EventImported, On: s.clock.Today()})
}

func (s *Store) commit(next models.ProgressState) {
	s.state = next
	if err := s.persister.Save(next.Clone()); err != nil {
		s.log.Error("failed to save progress", "error", err, "records", len(next))
	}
}

func (s *Store) record(e models.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.RecordEvent(e); err != nil {
		s.log.Warn("failed to record event", "error", err, "kind", e.Kind, "problem_id", e.ProblemID)
	}
}
