package algorithm

import (
	"encoding"
	"fmt"
)

// Status classifies one review checkpoint against today.
type Status int

const (
	Upcoming Status = iota + 1
	DueToday
	Overdue
	Completed
)

var (
	statusNames  = [...]string{Upcoming: "Upcoming", DueToday: "DueToday", Overdue: "Overdue", Completed: "Completed"}
	statusByName = map[string]Status{
		"Upcoming":  Upcoming,
		"DueToday":  DueToday,
		"Overdue":   Overdue,
		"Completed": Completed,
	}
)

var (
	_ fmt.Stringer             = Status(0)
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

func (s Status) isValid() bool {
	return s >= Upcoming && s <= Completed
}

// String returns the status name, or "Status(n)" for invalid values.
func (s Status) String() string {
	if s.isValid() {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Due reports whether the checkpoint needs doing now.
func (s Status) Due() bool {
	return s == Overdue || s == DueToday
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.isValid() {
		return nil, fmt.Errorf("algorithm: invalid status: %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v, ok := statusByName[string(text)]
	if !ok {
		return fmt.Errorf("algorithm: invalid status: %q", text)
	}
	*s = v
	return nil
}
