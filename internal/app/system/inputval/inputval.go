// Package inputval validates and normalizes request input shared across
// features: date parsing and trimmed-string checks.
package inputval

import (
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// ParseDate parses a date from request input, accepting RFC 3339
// ("2024-01-01T12:00:00Z") or a bare date ("2024-01-01"). dateOnly
// reports which form was supplied so callers can widen a bare date to
// a full-day range.
func ParseDate(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	if t, err = time.Parse(dateOnlyLayout, s); err == nil {
		return t.UTC(), true, nil
	}
	return time.Time{}, false, err
}

// EndOfDay returns the last representable instant of t's calendar day
// in UTC. Used to make a date-only "to" bound inclusive of that day.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// TrimmedNonEmpty reports whether s contains anything besides
// whitespace, returning the trimmed value.
func TrimmedNonEmpty(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
