// Package derive implements the per-row allowance rule engine.
//
// Given a row's categorical tags, date span and distance, it computes
// the per-diem and travel-cost fields and fills in a default
// description when the user left it blank. Derivation is idempotent:
// re-running it on an already-derived row yields the same output.
package derive

import (
	"fmt"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/timeutil"
)

// Rates holds the three configured rate parameters.
type Rates struct {
	Inland  decimal.Decimal // per-diem for domestic remote work, per day
	Foreign decimal.Decimal // per-diem for foreign remote work, per day
	Km      decimal.Decimal // travel reimbursement per kilometer
}

// SkipWarning records a row that could not be derived because its
// Start or End field did not parse. The row itself is passed through
// unmodified; the batch continues.
type SkipWarning struct {
	Index  int    // position of the row in the input slice
	Start  string // raw Start field of the skipped row
	End    string // raw End field of the skipped row
	Reason string
}

// Report is the result of a batch derivation pass.
type Report struct {
	Rows    []entry.Entry
	Skipped []SkipWarning
}

// Row derives a single ledger row. It never fails: a row whose dates
// do not parse is returned unchanged together with the parse error, so
// callers can record the skip and continue.
func Row(e entry.Entry, rates Rates) (entry.Entry, error) {
	out := e
	out.EventType = entry.NormalizeEventType(string(e.EventType))
	out.WorkMode = entry.NormalizeWorkMode(string(e.WorkMode))
	out.RemoteType = entry.NormalizeRemoteType(string(e.RemoteType))

	start, err := timeutil.ParseStamp(out.Start)
	if err != nil {
		return e, fmt.Errorf("start: %w", err)
	}
	end, err := timeutil.ParseStamp(out.End)
	if err != nil {
		return e, fmt.Errorf("end: %w", err)
	}

	days := timeutil.DaysBetween(start, end)

	switch out.EventType {
	case entry.EventWork:
		deriveWork(&out, rates, days)
	case entry.EventTravel:
		deriveTravel(&out, rates)
	case entry.EventFree:
		deriveFree(&out)
	default:
		// Unrecognized types are rewritten to free placeholders.
		out.EventType = entry.EventFree
		deriveFree(&out)
	}

	return out, nil
}

// All derives every row in the collection and reports which rows were
// skipped. The input slice is not modified.
func All(rows []entry.Entry, rates Rates) Report {
	report := Report{
		Rows:    make([]entry.Entry, 0, len(rows)),
		Skipped: []SkipWarning{},
	}

	for i, e := range rows {
		derived, err := Row(e, rates)
		if err != nil {
			report.Skipped = append(report.Skipped, SkipWarning{
				Index:  i,
				Start:  e.Start,
				End:    e.End,
				Reason: err.Error(),
			})
			report.Rows = append(report.Rows, e)
			continue
		}
		report.Rows = append(report.Rows, derived)
	}

	return report
}

func deriveWork(out *entry.Entry, rates Rates, days int) {
	if out.WorkMode == entry.ModeRemote {
		switch out.RemoteType {
		case entry.RemoteDomestic:
			out.PerDiemRate = rates.Inland
		case entry.RemoteForeign:
			out.PerDiemRate = rates.Foreign
		default:
			out.PerDiemRate = decimal.Zero
		}
		out.PerDiemTotal = out.PerDiemRate.Mul(decimal.NewFromInt(int64(days))).RoundBank(2)
		out.KmRate = decimal.Zero
		out.DistanceKm = decimal.Zero
		out.TravelCost = decimal.Zero

		if !out.HasDescription() {
			out.Description = fmt.Sprintf("Remote work (%s) from %s to %s", out.RemoteType, out.Start, out.End)
		}
		return
	}

	// Onsite or anything else: no allowance at all.
	out.PerDiemRate = decimal.Zero
	out.PerDiemTotal = decimal.Zero
	out.KmRate = decimal.Zero
	out.DistanceKm = decimal.Zero
	out.TravelCost = decimal.Zero

	if !out.HasDescription() {
		out.Description = fmt.Sprintf("%s work from %s to %s", titleCase(string(out.WorkMode)), out.Start, out.End)
	}
	out.RemoteType = entry.RemoteNA
}

func deriveTravel(out *entry.Entry, rates Rates) {
	if out.DistanceKm.IsNegative() {
		out.DistanceKm = decimal.Zero
	}
	out.KmRate = rates.Km
	out.TravelCost = out.DistanceKm.Mul(rates.Km).RoundBank(2)
	out.PerDiemRate = decimal.Zero
	out.PerDiemTotal = decimal.Zero

	if !out.HasDescription() {
		out.Description = fmt.Sprintf("Travel on %s covering %s km", out.Start, out.DistanceKm.String())
	}
	if out.WorkMode != entry.ModeOnsite && out.WorkMode != entry.ModeRemote {
		out.WorkMode = entry.ModeRemote
	}
	if out.RemoteType == "" {
		out.RemoteType = entry.RemoteNA
	}
}

func deriveFree(out *entry.Entry) {
	out.WorkMode = entry.ModeFree
	out.RemoteType = entry.RemoteNA
	out.PerDiemRate = decimal.Zero
	out.PerDiemTotal = decimal.Zero
	out.KmRate = decimal.Zero
	out.DistanceKm = decimal.Zero
	out.TravelCost = decimal.Zero

	if !out.HasDescription() {
		out.Description = fmt.Sprintf("Free from %s to %s", out.Start, out.End)
	}
}

// titleCase uppercases the first rune of a tag for display ("onsite"
// becomes "Onsite").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
