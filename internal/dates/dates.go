// Package dates formats trip dates for display and computes day spans.
package dates

import (
	"fmt"
	"math"
	"time"
)

// Layout is the ISO calendar-date layout used for every persisted date.
const Layout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates.ParseDate: %q: %w", s, err)
	}
	return t, nil
}

// Truncate returns the calendar date of t (in UTC) at midnight UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatShort renders a short display label such as "Jun 26" or "Jun 6".
// The day is not zero-padded.
func FormatShort(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatRange renders "Jun 26 - Jul 15, 2025". The year shown is the end year.
func FormatRange(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}

// InclusiveDaySpan counts the calendar days covered by start..end with both
// endpoints included. The difference is taken as an absolute value, so an
// inverted range still yields a positive count; callers that must reject
// inverted ranges validate before calling.
func InclusiveDaySpan(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := math.Ceil(diff.Hours() / 24)
	return int(days) + 1
}
