// Package dates provides calendar-date parsing and day arithmetic for the
// scheduling engine. All dates are civil dates in the "2006-01-02" format;
// time-of-day and timezones never enter the calculation.
package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical calendar-date format used throughout the system
const Layout = "2006-01-02"

// Parse parses a strict YYYY-MM-DD calendar date.
// It returns an error for any other shape instead of guessing, so a malformed
// record surfaces as a data-quality warning rather than a shifted date.
func Parse(s string) (time.Time, error) {
	if len(s) != len(Layout) {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: expected YYYY-MM-DD", s)
	}

	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}

	return t, nil
}

// Format renders a date back to the canonical YYYY-MM-DD form
func Format(t time.Time) string {
	return t.Format(Layout)
}

// DaysBetween returns the whole calendar-day difference from a to b.
// The result is negative when b is before a. Time-of-day is ignored.
func DaysBetween(a, b time.Time) int {
	a = truncate(a)
	b = truncate(b)
	return int(b.Sub(a).Hours() / 24)
}

// AddDays returns the date n calendar days after t (n may be negative)
func AddDays(t time.Time, n int) time.Time {
	return truncate(t).AddDate(0, 0, n)
}

// IsWeekend reports whether t falls on a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekendCounterpart returns the other day of the same weekend: the following
// Sunday for a Saturday, the preceding Saturday for a Sunday.
// ok is false when t is a weekday.
func WeekendCounterpart(t time.Time) (counterpart time.Time, ok bool) {
	switch t.Weekday() {
	case time.Saturday:
		return AddDays(t, 1), true
	case time.Sunday:
		return AddDays(t, -1), true
	default:
		return time.Time{}, false
	}
}

// truncate drops the time-of-day component, normalising to midnight UTC so
// day subtraction is exact across DST boundaries
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
