package db

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/logger"
	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/leddie24/neetcode-tracker/internal/progress"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func date(s string) calendar.Date { return calendar.MustParse(s) }

func TestKV(t *testing.T) {
	s := newTestStore(t)

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = %v, %v", ok, err)
	}

	if err := s.Put("k", "one"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", "two"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || v != "two" {
		t.Errorf("Get(k) = %q, %v, %v", v, ok, err)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("key survived Delete")
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", "v"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if v, ok, _ := s.Get("k"); !ok || v != "v" {
		t.Errorf("after reopen Get = %q, %v", v, ok)
	}
}

func TestProgressSlotEmpty(t *testing.T) {
	slot := NewProgressSlot(newTestStore(t), logger.Nop())
	if st := slot.Load(); st == nil || len(st) != 0 {
		t.Errorf("Load on empty slot = %v", st)
	}
}

func TestProgressSlotMalformed(t *testing.T) {
	for _, raw := range []string{
		"{not json",
		`[1,2,3]`,
		`{"abc": {"solved": true}}`,
		`{"1": {"solved": "yes"}}`,
		`{"1": {"solved": true, "solvedDate": "Jan 1"}}`,
		`null`,
	} {
		s := newTestStore(t)
		if err := s.Put(ProgressKey, raw); err != nil {
			t.Fatal(err)
		}
		st := NewProgressSlot(s, logger.Nop()).Load()
		if st == nil || len(st) != 0 {
			t.Errorf("Load(%s) = %v, want empty", raw, st)
		}
	}
}

func TestProgressSlotReadsBrowserShape(t *testing.T) {
	s := newTestStore(t)
	raw := `{"12":{"solved":true,"solvedDate":"2024-01-01","reviews":[true,false,false,false,false],` +
		`"dates":{"initial":"2024-01-01","review1":"2024-01-02"}},` +
		`"13":{"solved":false,"solvedDate":null,"reviews":[false,false,false,false,false],"dates":{}}}`
	if err := s.Put(ProgressKey, raw); err != nil {
		t.Fatal(err)
	}

	st := NewProgressSlot(s, logger.Nop()).Load()
	rec := st[12]
	if !rec.Solved || rec.SolvedDate != date("2024-01-01") || !rec.ReviewDone(0) || rec.ReviewDate(0) != date("2024-01-02") {
		t.Errorf("record 12 = %+v", rec)
	}
	if st[13].Solved || !st[13].SolvedDate.IsZero() {
		t.Errorf("record 13 = %+v", st[13])
	}
}

func TestClearSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	slot := NewProgressSlot(s, logger.Nop())
	ps := progress.NewStore(slot, calendar.Fixed(date("2024-01-04")))

	ps.MarkSolved(1)
	ps.MarkSolved(2)
	if _, err := ps.ToggleReview(1, 2); err != nil {
		t.Fatal(err)
	}

	reloaded := NewProgressSlot(s, logger.Nop()).Load()
	if !reflect.DeepEqual(reloaded, ps.State()) {
		t.Errorf("round trip:\n got %+v\nwant %+v", reloaded, ps.State())
	}

	ps.ClearAll()
	if len(ps.State()) != 0 {
		t.Fatal("ClearAll left records")
	}
	reloaded = NewProgressSlot(s, logger.Nop()).Load()
	if reloaded == nil || len(reloaded) != 0 {
		t.Errorf("after clear reloaded = %v", reloaded)
	}
}

func TestNotesSlot(t *testing.T) {
	s := newTestStore(t)
	slot := NewNotesSlot(s, logger.Nop())

	if n := slot.Load(); len(n) != 0 {
		t.Errorf("empty Load = %v", n)
	}
	want := map[int]string{7: "two pointers from both ends", 12: "monotonic stack"}
	if err := slot.Save(want); err != nil {
		t.Fatal(err)
	}
	if got := slot.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v", got)
	}

	if err := s.Put(NotesKey, "oops"); err != nil {
		t.Fatal(err)
	}
	if got := slot.Load(); len(got) != 0 {
		t.Errorf("malformed notes Load = %v", got)
	}
}

func TestActivityStats(t *testing.T) {
	s := newTestStore(t)
	events := []models.Event{
		{ProblemID: 1, Kind: models.EventSolved, On: date("2024-01-01")},
		{ProblemID: 2, Kind: models.EventSolved, On: date("2024-01-01")},
		{ProblemID: 1, Kind: models.EventReviewDone, ReviewIndex: 0, On: date("2024-01-02")},
		{ProblemID: 1, Kind: models.EventReviewDone, ReviewIndex: 1, On: date("2024-01-08")},
		{ProblemID: 2, Kind: models.EventReviewDone, ReviewIndex: 0, On: date("2024-01-09")},
		{ProblemID: 2, Kind: models.EventReviewUndone, ReviewIndex: 0, On: date("2024-01-09")},
		{Kind: models.EventImported, On: date("2024-01-09")},
	}
	for _, e := range events {
		if err := s.RecordEvent(e); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.ActivityStats(date("2024-01-09"))
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalEvents != 7 {
		t.Errorf("TotalEvents = %d", stats.TotalEvents)
	}
	if stats.SolvesTotal != 2 || stats.ReviewsTotal != 3 {
		t.Errorf("solves %d reviews %d", stats.SolvesTotal, stats.ReviewsTotal)
	}
	// Window is (01-02, 01-09]: the 01-02 review falls outside.
	if stats.ReviewsLast7Days != 2 {
		t.Errorf("ReviewsLast7Days = %d", stats.ReviewsLast7Days)
	}
	if stats.CountByKind[models.EventReviewUndone] != 1 || stats.CountByKind[models.EventImported] != 1 {
		t.Errorf("CountByKind = %v", stats.CountByKind)
	}
	if stats.BusiestDay != date("2024-01-01") || stats.BusiestDayCount != 2 {
		t.Errorf("busiest = %s (%d)", stats.BusiestDay, stats.BusiestDayCount)
	}

	recent, err := s.ListEvents(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Kind != models.EventImported || recent[1].Kind != models.EventReviewUndone {
		t.Errorf("ListEvents = %+v", recent)
	}
}

func TestStoreRecordsEventsThroughProgressStore(t *testing.T) {
	s := newTestStore(t)
	ps := progress.NewStore(NewProgressSlot(s, logger.Nop()), calendar.Fixed(date("2024-01-01")), progress.WithEvents(s))
	ps.MarkSolved(3)

	events, err := s.ListEvents(10)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.Event{{ProblemID: 3, Kind: models.EventSolved, On: date("2024-01-01")}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v", events)
	}
}
