// Package timeutil handles the two timestamp wire formats used by the
// ledger file: bare dates and date+time down to the minute.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the bare date wire format, interpreted as midnight.
	DateLayout = "2006-01-02"
	// StampLayout is the date+time wire format.
	StampLayout = "2006-01-02T15:04"
)

// ParseStamp parses a Start/End field. A 10-character value is treated
// as a bare date (midnight); anything else must match the date+time
// layout. These are the only accepted wire formats.
func ParseStamp(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("timestamp cannot be empty (use %s or %s)", DateLayout, StampLayout)
	}

	if len(trimmed) == len(DateLayout) {
		t, err := time.ParseInLocation(DateLayout, trimmed, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q (use format YYYY-MM-DD, e.g., 2025-06-01)", trimmed)
		}
		return t, nil
	}

	t, err := time.ParseInLocation(StampLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (use YYYY-MM-DD or YYYY-MM-DDTHH:MM, e.g., 2025-06-01T09:30)", trimmed)
	}
	return t, nil
}

// FormatStamp renders a time in the date+time wire format.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ParseDate parses a bare YYYY-MM-DD date. Used for configuration
// range bounds, where the time-of-day form is not accepted.
func ParseDate(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD, e.g., 2025-06-01)")
	}

	t, err := time.ParseInLocation(DateLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use format YYYY-MM-DD, e.g., 2025-06-01)", trimmed)
	}
	return t, nil
}

// DaysBetween returns the inclusive calendar-day count between two
// timestamps, floored at 1. Same-day and inverted ranges both yield 1.
func DaysBetween(start, end time.Time) int {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	days := int(endDay.Sub(startDay).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
