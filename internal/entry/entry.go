// Package entry defines the ledger row model and its categorical tags.
package entry

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EventType categorizes what a ledger row represents.
type EventType string

const (
	EventWork   EventType = "work"
	EventTravel EventType = "travel"
	EventFree   EventType = "free"
)

// WorkMode describes where the work happened. Only meaningful for
// work and travel rows.
type WorkMode string

const (
	ModeOnsite WorkMode = "onsite"
	ModeRemote WorkMode = "remote"
	ModeFree   WorkMode = "free"
)

// RemoteType distinguishes domestic from foreign remote work. Only
// meaningful when WorkMode is remote.
type RemoteType string

const (
	RemoteDomestic RemoteType = "domestic"
	RemoteForeign  RemoteType = "foreign"
	RemoteNA       RemoteType = "n/a"
)

// Entry represents a single row of the travel/work-allowance ledger.
//
// Start and End keep the wire format text (YYYY-MM-DD or
// YYYY-MM-DDTHH:MM) so that generated descriptions embed exactly what
// the user typed. PerDiemTotal and TravelCost are derived values and
// are recomputed on every pass, never trusted from input.
type Entry struct {
	Start        string          `json:"start"`
	End          string          `json:"end"`
	EventType    EventType       `json:"event_type"`
	WorkMode     WorkMode        `json:"work_mode"`
	RemoteType   RemoteType      `json:"remote_type"`
	PerDiemRate  decimal.Decimal `json:"per_diem_rate"`
	KmRate       decimal.Decimal `json:"km_rate"`
	DistanceKm   decimal.Decimal `json:"distance_km"`
	PerDiemTotal decimal.Decimal `json:"per_diem_total"`
	TravelCost   decimal.Decimal `json:"travel_cost"`
	Description  string          `json:"description"`
}

// NormalizeEventType lowercases and trims a raw event type value.
// Unrecognized values are kept as-is (lowered); the derivation engine
// coerces them to free.
func NormalizeEventType(raw string) EventType {
	return EventType(normalizeTag(raw))
}

// NormalizeWorkMode lowercases and trims a raw work mode value.
func NormalizeWorkMode(raw string) WorkMode {
	return WorkMode(normalizeTag(raw))
}

// NormalizeRemoteType lowercases and trims a raw remote type value.
func NormalizeRemoteType(raw string) RemoteType {
	return RemoteType(normalizeTag(raw))
}

func normalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// HasDescription reports whether the row carries user-provided text.
// Auto-fill only happens when this is false.
func (e Entry) HasDescription() bool {
	return strings.TrimSpace(e.Description) != ""
}
