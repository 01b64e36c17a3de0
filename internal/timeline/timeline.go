// Package timeline seeds a date range with free placeholder rows.
package timeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/timeutil"
)

// ErrInvalidRange indicates that a range bound was not a parsable
// YYYY-MM-DD date. Seeding stops before producing any rows.
var ErrInvalidRange = errors.New("invalid date range")

// Seed produces one free placeholder row per calendar day in
// [fromDate, toDate] inclusive, each spanning 00:00 to 23:59 with a
// prefilled description. A toDate before fromDate yields an empty
// sequence without error.
func Seed(fromDate, toDate string) ([]entry.Entry, error) {
	from, err := timeutil.ParseDate(fromDate)
	if err != nil {
		return nil, fmt.Errorf("%w: from date: %v", ErrInvalidRange, err)
	}
	to, err := timeutil.ParseDate(toDate)
	if err != nil {
		return nil, fmt.Errorf("%w: to date: %v", ErrInvalidRange, err)
	}

	rows := []entry.Entry{}
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		rows = append(rows, placeholder(cur))
	}
	return rows, nil
}

// placeholder builds the free row for a single calendar day.
func placeholder(day time.Time) entry.Entry {
	start := timeutil.FormatStamp(day)
	end := timeutil.FormatStamp(day.Add(23*time.Hour + 59*time.Minute))

	return entry.Entry{
		Start:        start,
		End:          end,
		EventType:    entry.EventFree,
		WorkMode:     entry.ModeFree,
		RemoteType:   entry.RemoteNA,
		PerDiemRate:  decimal.Zero,
		KmRate:       decimal.Zero,
		DistanceKm:   decimal.Zero,
		PerDiemTotal: decimal.Zero,
		TravelCost:   decimal.Zero,
		Description:  fmt.Sprintf("Free from %s to %s", start, end),
	}
}
