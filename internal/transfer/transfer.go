package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/models"
)

var ErrMalformedImport = errors.New("transfer: malformed import file")

// Format tells which shape an import file had.
type Format int

const (
	// Legacy is a bare ProgressState.
	Legacy Format = iota + 1
	// Snapshot is the {progress, problems, exportDate} export file.
	Snapshot
)

func (f Format) String() string {
	switch f {
	case Legacy:
		return "legacy"
	case Snapshot:
		return "snapshot"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Payload is a parsed import file, ready to apply.
type Payload struct {
	Format   Format
	Progress models.ProgressState
	// Notes holds the non-empty notes from a snapshot, by problem id.
	Notes      map[int]string
	ExportDate calendar.Date
}

// FileName is the default export file name for a given day.
func FileName(today calendar.Date) string {
	return fmt.Sprintf("neetcode-progress-%s.json", today)
}

// Export builds the snapshot: the full progress map plus id, name and notes
// for every catalog problem.
func Export(state models.ProgressState, problems []models.Problem, today calendar.Date) models.Snapshot {
	notes := make([]models.ProblemNote, len(problems))
	for i, p := range problems {
		notes[i] = models.ProblemNote{ID: p.ID, Name: p.Name, Notes: p.Notes}
	}
	return models.Snapshot{
		Progress:   state.Clone(),
		Problems:   notes,
		ExportDate: today,
	}
}

// Encode writes the snapshot as indented JSON.
func Encode(w io.Writer, snap models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// Parse reads an import file. An object carrying both "progress" and
// "problems" is a snapshot; anything else must be a bare progress map.
// On error nothing in the returned Payload is usable.
func Parse(data []byte) (Payload, error) {
	data = bytes.TrimSpace(data)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if fields == nil {
		return Payload{}, fmt.Errorf("%w: top-level null", ErrMalformedImport)
	}

	if present(fields["progress"]) && present(fields["problems"]) {
		return parseSnapshot(fields)
	}

	var state models.ProgressState
	if err := json.Unmarshal(data, &state); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if state == nil {
		state = models.ProgressState{}
	}
	return Payload{Format: Legacy, Progress: state, Notes: map[int]string{}}, nil
}

func parseSnapshot(fields map[string]json.RawMessage) (Payload, error) {
	var state models.ProgressState
	if err := json.Unmarshal(fields["progress"], &state); err != nil {
		return Payload{}, fmt.Errorf("%w: progress: %v", ErrMalformedImport, err)
	}
	if state == nil {
		state = models.ProgressState{}
	}

	var problems []models.ProblemNote
	if err := json.Unmarshal(fields["problems"], &problems); err != nil {
		return Payload{}, fmt.Errorf("%w: problems: %v", ErrMalformedImport, err)
	}

	var exported calendar.Date
	if raw, ok := fields["exportDate"]; ok {
		// The date is informational; a bad one does not reject the file.
		_ = json.Unmarshal(raw, &exported)
	}

	notes := map[int]string{}
	for _, p := range problems {
		if p.Notes != "" {
			notes[p.ID] = p.Notes
		}
	}
	return Payload{Format: Snapshot, Progress: state, Notes: notes, ExportDate: exported}, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// StateReplacer swaps in a whole ProgressState.
type StateReplacer interface {
	Replace(state models.ProgressState)
}

// NotesApplier overwrites notes by problem id and reports how many changed.
type NotesApplier interface {
	ApplyNotes(notes map[int]string) int
}

// Apply replaces the progress state with the payload's (no merge) and then
// copies snapshot notes onto the catalog. It returns the number of notes applied.
func Apply(p Payload, store StateReplacer, notes NotesApplier) int {
	store.Replace(p.Progress)
	if len(p.Notes) == 0 {
		return 0
	}
	return notes.ApplyNotes(p.Notes)
}
