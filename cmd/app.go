package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/catalog"
	"github.com/leddie24/neetcode-tracker/internal/config"
	"github.com/leddie24/neetcode-tracker/internal/db"
	"github.com/leddie24/neetcode-tracker/internal/logger"
	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/leddie24/neetcode-tracker/internal/progress"
)

// app is everything a command needs, opened once per invocation.
type app struct {
	log      *logger.Logger
	db       *db.Store
	catalog  *catalog.Catalog
	notes    *db.NotesSlot
	progress *progress.Store
	today    calendar.Date
}

func openApp() (*app, error) {
	cfg, err := config.ConfigInit()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	clock, err := currentClock()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}
	store, err := db.NewStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	log.Debug("opened database", "path", cfg.DBPath)

	notes := db.NewNotesSlot(store, log)
	cat.ApplyNotes(notes.Load())

	ps := progress.NewStore(
		db.NewProgressSlot(store, log),
		clock,
		progress.WithEvents(store),
		progress.WithLogger(log),
	)

	return &app{
		log:      log,
		db:       store,
		catalog:  cat,
		notes:    notes,
		progress: ps,
		today:    clock.Today(),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close database", "error", err)
	}
	a.log.Sync()
}

// saveNotes persists the catalog's notes overlay. Like progress writes, a
// failure is logged and does not stop the command.
func (a *app) saveNotes() {
	if err := a.notes.Save(a.catalog.Notes()); err != nil {
		a.log.Error("failed to save notes", "error", err)
	}
}

// problemArg resolves a problem id argument against the catalog.
func (a *app) problemArg(arg string) (models.Problem, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return models.Problem{}, fmt.Errorf("invalid problem id %q", arg)
	}
	return a.catalog.Find(id)
}

func currentClock() (calendar.Clock, error) {
	if todayFlag == "" {
		return calendar.SystemClock{}, nil
	}
	d, err := calendar.ParseDate(todayFlag)
	if err != nil {
		return nil, fmt.Errorf("--today: %w", err)
	}
	return calendar.Fixed(d), nil
}

func confirm(prompt string) bool {
	fmt.Printf("⚠️  %s (y/N): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
