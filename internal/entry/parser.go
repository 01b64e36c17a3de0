package entry

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw numeric field from storage into a decimal.
// Anything that does not parse as a number coerces to zero. This is a
// deliberate leniency so that hand-edited files never fail a batch.
func ParseAmount(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return d
}
