package calendar

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("got %d-%d-%d", d.Year(), d.Month(), d.Day())
	}
	if d.String() != "2024-02-29" {
		t.Errorf("String = %q", d.String())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2023-02-29", "2024/01/01", "2024-1-1", "yesterday"} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) err = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2024-01-01", 1, "2024-01-02"},
		{"2024-01-01", 30, "2024-01-31"},
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-12-25", 14, "2025-01-08"},
		// US DST starts 2024-03-10; calendar arithmetic must not notice.
		{"2024-03-09", 1, "2024-03-10"},
		{"2024-03-09", 3, "2024-03-12"},
		{"2024-03-01", -1, "2024-02-29"},
	}
	for _, tt := range tests {
		got := MustParse(tt.from).AddDays(tt.n).String()
		if got != tt.want {
			t.Errorf("%s + %d = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := MustParse("2024-01-05")
	b := MustParse("2024-01-06")
	c := MustParse("2023-12-31")

	if !a.Before(b) || b.Before(a) {
		t.Error("Before wrong for same month")
	}
	if !c.Before(a) {
		t.Error("Before wrong across years")
	}
	if !b.After(a) || a.After(a) {
		t.Error("After wrong")
	}
	if a.Compare(a) != 0 || a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("Compare wrong")
	}
	if a != MustParse("2024-01-05") {
		t.Error("equal dates should compare equal with ==")
	}
}

func TestDaysUntil(t *testing.T) {
	if n := MustParse("2024-01-01").DaysUntil(MustParse("2024-01-31")); n != 30 {
		t.Errorf("DaysUntil = %d, want 30", n)
	}
	if n := MustParse("2024-03-12").DaysUntil(MustParse("2024-03-09")); n != -3 {
		t.Errorf("DaysUntil = %d, want -3", n)
	}
}

func TestFromTimeUsesLocalFields(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	// 23:30 on Jan 5 local is already Jan 6 in UTC.
	ts := time.Date(2024, 1, 5, 23, 30, 0, 0, loc)
	if got := FromTime(ts).String(); got != "2024-01-05" {
		t.Errorf("FromTime = %s, want 2024-01-05", got)
	}
}

func TestJSON(t *testing.T) {
	type wrap struct {
		D Date `json:"d"`
	}

	data, err := json.Marshal(wrap{D: MustParse("2024-01-04")})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"d":"2024-01-04"}` {
		t.Errorf("marshal = %s", data)
	}

	data, err = json.Marshal(wrap{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"d":null}` {
		t.Errorf("zero marshal = %s", data)
	}

	var w wrap
	if err := json.Unmarshal([]byte(`{"d":null}`), &w); err != nil || !w.D.IsZero() {
		t.Errorf("null unmarshal = %v, %v", w.D, err)
	}
	if err := json.Unmarshal([]byte(`{"d":"2024-01-31"}`), &w); err != nil || w.D != MustParse("2024-01-31") {
		t.Errorf("unmarshal = %v, %v", w.D, err)
	}
	if err := json.Unmarshal([]byte(`{"d":20240131}`), &w); err == nil {
		t.Error("number should not unmarshal as a date")
	}
	if err := json.Unmarshal([]byte(`{"d":"not-a-date"}`), &w); err == nil {
		t.Error("garbage should not unmarshal as a date")
	}
}

func TestFixedClock(t *testing.T) {
	d := MustParse("2024-01-05")
	var c Clock = Fixed(d)
	if c.Today() != d {
		t.Errorf("Today = %s", c.Today())
	}
}
