package calendar

import "time"

// Clock supplies "today". Everything that stamps or classifies dates asks a Clock
// instead of reading the wall clock itself.
type Clock interface {
	Today() Date
}

// SystemClock reads the process-local wall clock. The date comes from the local
// year/month/day, not from a UTC timestamp, so late-evening solves land on the
// user's own calendar day.
type SystemClock struct{}

func (SystemClock) Today() Date { return FromTime(time.Now()) }

// Fixed is a Clock pinned to one day.
type Fixed Date

func (f Fixed) Today() Date { return Date(f) }
