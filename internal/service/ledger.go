package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/config"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/derive"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/ledger"
)

// LedgerService provides load/derive/persist operations on the
// configured ledger file.
type LedgerService struct {
	cfg config.Config
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(cfg config.Config) *LedgerService {
	return &LedgerService{cfg: cfg}
}

// File returns the path of the ledger file this service operates on.
func (s *LedgerService) File() string {
	return s.cfg.LedgerFile
}

// Load returns the persisted collection, or a freshly seeded timeline
// for the configured range when no file exists yet.
func (s *LedgerService) Load() (ledger.LoadResult, error) {
	return ledger.LoadOrSeed(s.cfg.LedgerFile, s.cfg.FromDate, s.cfg.ToDate)
}

// Recalc runs the derivation engine over the given rows and re-sorts
// them, without touching storage.
func (s *LedgerService) Recalc(rows []entry.Entry) derive.Report {
	return ledger.Finalize(rows, s.cfg.Rates())
}

// RecalcAndSave derives and sorts the rows, then overwrites the
// ledger file with the result.
func (s *LedgerService) RecalcAndSave(rows []entry.Entry) (derive.Report, error) {
	report := ledger.Finalize(rows, s.cfg.Rates())
	if err := ledger.Persist(s.cfg.LedgerFile, report.Rows); err != nil {
		return report, fmt.Errorf("failed to save ledger: %w", err)
	}
	return report, nil
}

// Totals sums the two derived columns over a collection.
func (s *LedgerService) Totals(rows []entry.Entry) (perDiem, travel decimal.Decimal) {
	perDiem = decimal.Zero
	travel = decimal.Zero
	for _, e := range rows {
		perDiem = perDiem.Add(e.PerDiemTotal)
		travel = travel.Add(e.TravelCost)
	}
	return perDiem, travel
}
