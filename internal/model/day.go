package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayFormat is the string form of a Day, ISO-8601 date only.
const DayFormat = "2006-01-02"

// Day represents a calendar day with no time component, anchored to the UTC
// calendar. It replaces locale-formatted date strings as the key for the
// per-day sell counters, so the same moment keys identically everywhere.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns a normalized Day for the given year, month and day.
func NewDay(year int, month time.Month, day int) Day {
	d := Day{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current UTC calendar day.
func Today() Day { return NewDay(time.Now().UTC().Date()) }

// DayOf returns the UTC calendar day the given instant falls on.
func DayOf(t time.Time) Day { return NewDay(t.UTC().Date()) }

// time returns midnight UTC of the day, its canonical representation.
func (d Day) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Add returns the day shifted by i calendar days.
func (d Day) Add(i int) Day { return NewDay(d.y, d.m, d.d+i) }

// Before reports whether d falls before x.
func (d Day) Before(x Day) bool { return d.time().Before(x.time()) }

// String formats the day as "2006-01-02".
func (d Day) String() string { return d.time().Format(DayFormat) }

// ParseDay parses a Day from its string form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q want format %q: %w", s, DayFormat, err)
	}
	return NewDay(t.Date()), nil
}

// MarshalJSON encodes the day as its string form.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a day from its string form.
func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Day)(nil)
var _ json.Unmarshaler = (*Day)(nil)
