package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/ledger"
)

// recalcCmd represents the recalc command
var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recalculate all derived columns and save the ledger",
	Long: `Load the ledger file (or seed a fresh placeholder timeline when it
does not exist yet), recompute every derived column from the configured
rates, sort the collection and overwrite the file in full.

Derivation is idempotent: running recalc twice on a ledger whose rows
all have valid dates changes nothing the second time. Rows whose Start
or End does not parse are passed through unmodified and reported.

Examples:
  allowance recalc                               Recalculate the configured ledger
  allowance recalc --file trip.csv               Recalculate a specific file
  allowance recalc --from 2025-06-01 --to 2025-06-30
                                                 Seed June 2025 when the file is missing
  allowance recalc --inland 14 --foreign 28 --km 0.30
                                                 Override the configured rates`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRecalc(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recalcCmd)
}

// runRecalc is the load-or-seed, derive, sort, persist pipeline.
func runRecalc(cmd *cobra.Command) {
	cfg, ok := resolveConfig(cmd)
	if !ok {
		return
	}

	result, err := ledger.LoadOrSeed(cfg.LedgerFile, cfg.FromDate, cfg.ToDate)
	if err != nil {
		reportLoadError(cfg.LedgerFile, err)
		return
	}
	printShapeWarnings(result.Warnings)

	if result.Seeded {
		_, _ = fmt.Fprintf(deps.Stdout, "Seeded %d placeholder rows for %s to %s\n",
			len(result.Rows), cfg.FromDate, cfg.ToDate)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Loaded %d rows from %s\n", len(result.Rows), cfg.LedgerFile)
	}

	report := ledger.Finalize(result.Rows, cfg.Rates())
	printSkipWarnings(report.Skipped)

	if err := ledger.Persist(cfg.LedgerFile, report.Rows); err != nil {
		reportSaveError(cfg.LedgerFile, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Recalculated %d rows and saved to %s\n", len(report.Rows), cfg.LedgerFile)
}
