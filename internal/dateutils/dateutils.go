// Package dateutils provides the calendar-date helpers used by the ledger and
// the aggregator. Calendar dates are carried as ISO "YYYY-MM-DD" strings.
package dateutils

import (
	"fmt"
	"time"
)

// Date layout constants.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutWithMonth = "Jan 2"
)

// ParseISODate parses a "YYYY-MM-DD" calendar date in the given location.
// A nil location means time.Local.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayoutISO, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}
	return t, nil
}

// ToISODate formats the calendar date of t in its own location.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LastNDays returns the ISO dates of the n calendar days ending with today,
// oldest first. n <= 0 yields an empty slice.
func LastNDays(n int, today time.Time) []string {
	if n <= 0 {
		return []string{}
	}
	start := StartOfDay(today)
	days := make([]string, n)
	for i := 0; i < n; i++ {
		// AddDate keeps the result on calendar boundaries across DST changes.
		days[i] = ToISODate(start.AddDate(0, 0, i-(n-1)))
	}
	return days
}

// ShortLabel renders an ISO date as a compact "Jan 2" label. Unparseable input
// is returned unchanged.
func ShortLabel(iso string) string {
	t, err := ParseISODate(iso, time.UTC)
	if err != nil {
		return iso
	}
	return t.Format(DateLayoutWithMonth)
}
