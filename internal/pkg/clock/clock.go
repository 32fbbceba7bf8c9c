package clock

import "time"

// Clock abstracts "now" so attendance and leave services can be tested
// against fixed or simulated timestamps, including midnight boundaries.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

// New returns a Clock backed by the system time in the server's local zone.
func New() Clock {
	return &systemClock{loc: time.Local}
}

// NewInLocation returns a system Clock pinned to a specific zone.
func NewInLocation(loc *time.Location) Clock {
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *systemClock) Location() *time.Location {
	return c.loc
}

// WorkDate derives the canonical calendar-day key ("2006-01-02") for a
// timestamp in the given zone. Two timestamps on the same local day map to
// the same key; the key rolls over at local midnight. This key partitions
// the one-punch-in-per-day rule.
func WorkDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// StartOfDay truncates a timestamp to local midnight.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns the last representable instant of the local calendar day.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}

// Fixed is a Clock that always reports the same instant. Test helper.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

func (f Fixed) Location() *time.Location {
	return f.T.Location()
}
