package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sqlx.DB
}

// NewStore opens (creating if needed) the SQLite file at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; sqlite serializes anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sqlx.DB) error {
	// kv holds named JSON slots: the progress map and the notes overlay.
	queryKV := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := db.Exec(queryKV); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	queryEvents := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		problem_id INTEGER NOT NULL DEFAULT 0,
		kind TEXT NOT NULL,
		review_index INTEGER NOT NULL DEFAULT 0,
		on_date TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	if _, err := db.Exec(queryEvents); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_events_on_date ON events (on_date)`); err != nil {
		return fmt.Errorf("failed to index events: %w", err)
	}

	return nil
}

// Get returns the value stored under key. ok is false when the slot is empty.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	err = s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put overwrites the slot; the last writer wins.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	return err
}

func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *Store) RecordEvent(e models.Event) error {
	_, err := s.db.Exec(`
		INSERT INTO events (problem_id, kind, review_index, on_date, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ProblemID, string(e.Kind), e.ReviewIndex, e.On.String(), time.Now().UTC(),
	)
	return err
}

type eventRow struct {
	ProblemID   int    `db:"problem_id"`
	Kind        string `db:"kind"`
	ReviewIndex int    `db:"review_index"`
	OnDate      string `db:"on_date"`
}

// ListEvents returns the newest events first, at most limit of them.
func (s *Store) ListEvents(limit int) ([]models.Event, error) {
	var rows []eventRow
	err := s.db.Select(&rows, `
		SELECT problem_id, kind, review_index, on_date
		FROM events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(rows))
	for _, r := range rows {
		on, err := calendar.ParseDate(r.OnDate)
		if err != nil {
			continue
		}
		events = append(events, models.Event{
			ProblemID:   r.ProblemID,
			Kind:        models.EventKind(r.Kind),
			ReviewIndex: r.ReviewIndex,
			On:          on,
		})
	}
	return events, nil
}

func (s *Store) ActivityStats(today calendar.Date) (*models.ActivityStats, error) {
	stats := &models.ActivityStats{
		CountByKind: make(map[models.EventKind]int),
	}

	if err := s.db.Get(&stats.TotalEvents, "SELECT COUNT(*) FROM events"); err != nil {
		return nil, err
	}

	var byKind []struct {
		Kind  string `db:"kind"`
		Count int    `db:"n"`
	}
	if err := s.db.Select(&byKind, "SELECT kind, COUNT(*) AS n FROM events GROUP BY kind"); err != nil {
		return nil, err
	}
	for _, k := range byKind {
		stats.CountByKind[models.EventKind(k.Kind)] = k.Count
	}
	stats.SolvesTotal = stats.CountByKind[models.EventSolved]
	stats.ReviewsTotal = stats.CountByKind[models.EventReviewDone]

	// Dates are stored as YYYY-MM-DD, so text comparison is date comparison.
	since := today.AddDays(-7).String()
	if err := s.db.Get(&stats.ReviewsLast7Days,
		"SELECT COUNT(*) FROM events WHERE kind = ? AND on_date > ? AND on_date <= ?",
		string(models.EventReviewDone), since, today.String()); err != nil {
		return nil, err
	}

	var busiest []struct {
		OnDate string `db:"on_date"`
		Count  int    `db:"n"`
	}
	err := s.db.Select(&busiest, `
		SELECT on_date, COUNT(*) AS n
		FROM events
		WHERE kind IN (?, ?)
		GROUP BY on_date
		ORDER BY n DESC, on_date DESC
		LIMIT 1`, string(models.EventSolved), string(models.EventReviewDone))
	if err != nil {
		return nil, err
	}
	if len(busiest) == 1 {
		if d, err := calendar.ParseDate(busiest[0].OnDate); err == nil {
			stats.BusiestDay = d
			stats.BusiestDayCount = busiest[0].Count
		}
	}

	return stats, nil
}
