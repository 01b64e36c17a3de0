// Package ledger owns the lifecycle of the allowance table: loading
// or seeding a collection, deriving every row, and persisting the
// result as one atomic overwrite.
package ledger

import (
	"fmt"
	"sort"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/derive"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/storage"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/timeline"
)

// LoadResult is the outcome of LoadOrSeed.
type LoadResult struct {
	Rows     []entry.Entry
	Warnings []storage.ParseWarning
	Seeded   bool // true when the rows came from the seeder, not the file
}

// LoadOrSeed returns the persisted collection if the ledger file
// exists, coerced to the canonical schema; otherwise it seeds a fresh
// placeholder timeline for [fromDate, toDate].
func LoadOrSeed(path, fromDate, toDate string) (LoadResult, error) {
	if storage.Exists(path) {
		result, err := storage.ReadTable(path)
		if err != nil {
			return LoadResult{}, fmt.Errorf("failed to load ledger: %w", err)
		}
		return LoadResult{Rows: result.Rows, Warnings: result.Warnings}, nil
	}

	rows, err := timeline.Seed(fromDate, toDate)
	if err != nil {
		return LoadResult{}, err
	}
	return LoadResult{Rows: rows, Warnings: []storage.ParseWarning{}, Seeded: true}, nil
}

// Finalize derives every row and sorts the collection by Start, with
// work and free rows placed before travel rows sharing the same Start.
// The sort is stable, so relative order within a tie group beyond that
// two-level key is preserved. The input slice is not modified.
func Finalize(rows []entry.Entry, rates derive.Rates) derive.Report {
	report := derive.All(rows, rates)

	sort.SliceStable(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return sortRank(a) < sortRank(b)
	})

	return report
}

// Persist overwrites the destination with the full collection. There
// is no partial or append write; a failure is surfaced to the caller.
func Persist(path string, rows []entry.Entry) error {
	if err := storage.WriteTable(path, rows); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}

// sortRank orders travel rows after work and free rows on equal Start.
func sortRank(e entry.Entry) int {
	if e.EventType == entry.EventTravel {
		return 1
	}
	return 0
}
