package activity

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedDate is returned when a source record carries a date that does
// not parse as an ISO calendar day.
var ErrMalformedDate = errors.New("malformed date")

// Day is a calendar day counted in whole days since 1970-01-01 UTC. Walking
// the calendar is plain integer arithmetic, so iteration never shares or
// mutates a time value between steps.
type Day int

const secondsPerDay = 86400

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) Day {
	secs := t.Unix()
	d := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		d--
	}
	return Day(d)
}

// MakeDay builds the Day for a calendar date.
func MakeDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses a "2006-01-02" date string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return DayOf(t), nil
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d Day) String() string {
	return d.Time().Format("2006-01-02")
}

func (d Day) Year() int {
	return d.Time().Year()
}

func (d Day) Month() time.Month {
	return d.Time().Month()
}

func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MarshalText renders the ISO date, so maps keyed by Day serialize as
// {"2024-01-01": 3, ...}.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
