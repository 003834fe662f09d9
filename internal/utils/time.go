package utils

import "time"

// StartOfDay zeroes the time-of-day component. Date comparisons in booking
// validation are date-only.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Today returns the current date at midnight UTC.
func Today() time.Time {
	return StartOfDay(time.Now().UTC())
}

func FormatTimeISO(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseTimeISO(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseDate accepts either a full RFC3339 timestamp or a bare calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
