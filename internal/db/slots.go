package db

import (
	"encoding/json"
	"fmt"

	"github.com/leddie24/neetcode-tracker/internal/logger"
	"github.com/leddie24/neetcode-tracker/internal/models"
)

const (
	ProgressKey = "neetcode-progress"
	NotesKey    = "problem-notes"
)

// ProgressSlot keeps the ProgressState as one JSON value under ProgressKey.
type ProgressSlot struct {
	store *Store
	log   *logger.Logger
}

func NewProgressSlot(store *Store, log *logger.Logger) *ProgressSlot {
	return &ProgressSlot{store: store, log: log}
}

// Load returns an empty state if the slot is missing, unreadable or not a
// progress map.
func (p *ProgressSlot) Load() models.ProgressState {
	raw, ok, err := p.store.Get(ProgressKey)
	if err != nil {
		p.log.Warn("failed to read progress slot", "error", err)
		return models.ProgressState{}
	}
	if !ok {
		return models.ProgressState{}
	}

	var state models.ProgressState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		p.log.Warn("discarding malformed progress slot", "error", err, "bytes", len(raw))
		return models.ProgressState{}
	}
	if state == nil {
		return models.ProgressState{}
	}
	return state
}

func (p *ProgressSlot) Save(state models.ProgressState) error {
	if state == nil {
		state = models.ProgressState{}
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := p.store.Put(ProgressKey, string(data)); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}

// NotesSlot keeps the per-problem notes overlay under NotesKey.
type NotesSlot struct {
	store *Store
	log   *logger.Logger
}

func NewNotesSlot(store *Store, log *logger.Logger) *NotesSlot {
	return &NotesSlot{store: store, log: log}
}

func (n *NotesSlot) Load() map[int]string {
	notes := map[int]string{}
	raw, ok, err := n.store.Get(NotesKey)
	if err != nil {
		n.log.Warn("failed to read notes slot", "error", err)
		return notes
	}
	if !ok {
		return notes
	}
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		n.log.Warn("discarding malformed notes slot", "error", err)
		return map[int]string{}
	}
	return notes
}

func (n *NotesSlot) Save(notes map[int]string) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	return n.store.Put(NotesKey, string(data))
}
