package storage

import (
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/timeutil"
)

// Health summarizes the state of a ledger file: how many rows loaded,
// how many would derive cleanly, and which ones the rule engine would
// skip because of unparsable dates.
type Health struct {
	TotalRows int
	Derivable int
	Undated   int            // rows whose Start or End does not parse
	UndatedAt []int          // 1-indexed row positions of undated rows
	Warnings  []ParseWarning // shape deviations found while loading
}

// ValidateTable analyzes a ledger file and returns its health status.
// A missing file yields an empty (healthy) report.
func ValidateTable(path string) (Health, error) {
	health := Health{UndatedAt: []int{}, Warnings: []ParseWarning{}}

	if !Exists(path) {
		return health, nil
	}

	result, err := ReadTable(path)
	if err != nil {
		return health, err
	}

	health.TotalRows = len(result.Rows)
	health.Warnings = result.Warnings

	for i, e := range result.Rows {
		if _, err := timeutil.ParseStamp(e.Start); err != nil {
			health.Undated++
			health.UndatedAt = append(health.UndatedAt, i+1)
			continue
		}
		if _, err := timeutil.ParseStamp(e.End); err != nil {
			health.Undated++
			health.UndatedAt = append(health.UndatedAt, i+1)
			continue
		}
		health.Derivable++
	}

	return health, nil
}
