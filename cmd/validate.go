package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/storage"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check ledger file health",
	Long: `Validate the ledger file and report on its health status.

Reports how many rows loaded, how many would derive cleanly, which
rows the rule engine would skip because of unparsable dates, and any
rows that deviated from the canonical column layout.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runValidate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) {
	cfg, ok := resolveConfig(cmd)
	if !ok {
		return
	}

	health, err := storage.ValidateTable(cfg.LedgerFile)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to validate ledger: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Ledger file: %s\n", cfg.LedgerFile)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total rows:     %d\n", health.TotalRows)
	_, _ = fmt.Fprintf(deps.Stdout, "Derivable rows: %d\n", health.Derivable)
	_, _ = fmt.Fprintf(deps.Stdout, "Undated rows:   %d\n", health.Undated)

	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Malformed rows (coerced on load):")
		for _, w := range health.Warnings {
			_, _ = fmt.Fprintf(deps.Stdout, "  Line %d: %s\n", w.Line, w.Reason)
		}
	}

	if health.Undated > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Rows skipped by derivation (bad dates):")
		for _, idx := range health.UndatedAt {
			_, _ = fmt.Fprintf(deps.Stdout, "  Row %d\n", idx)
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Undated == 0 && len(health.Warnings) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Ledger file is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Ledger file has %d problem row(s)\n", health.Undated+len(health.Warnings))
	}
}
