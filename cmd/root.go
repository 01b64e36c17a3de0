package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/config"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/ledger"
)

var rootCmd = &cobra.Command{
	Use:   "allowance",
	Short: "A travel and remote-work allowance ledger",
	Long: `allowance maintains a daily travel/work-allowance ledger as a flat CSV file.

For each calendar entry it derives the applicable per-diem and travel
reimbursement amounts from the configured rates and fills in a default
description where none was given.

Usage:
  allowance                List the current ledger with totals
  allowance recalc         Recalculate all derived columns and save
  allowance wizard         Build a ledger from guided prompts
  allowance tui            Edit the ledger interactively
  allowance export json    Dump the ledger as JSON
  allowance validate       Check ledger file health
  allowance config         Show effective configuration

Timestamps use YYYY-MM-DD (midnight) or YYYY-MM-DDTHH:MM.
Rates and default date range live in config.toml; every command
accepts --file, --from, --to, --inland, --foreign and --km overrides.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listLedger(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "Ledger CSV file (default from config)")
	rootCmd.PersistentFlags().String("from", "", "Range start for seeding, YYYY-MM-DD (default from config)")
	rootCmd.PersistentFlags().String("to", "", "Range end for seeding, YYYY-MM-DD (default from config)")
	rootCmd.PersistentFlags().Float64("inland", -1, "Per-diem rate for domestic remote work (default from config)")
	rootCmd.PersistentFlags().Float64("foreign", -1, "Per-diem rate for foreign remote work (default from config)")
	rootCmd.PersistentFlags().Float64("km", -1, "Travel rate per kilometer (default from config)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"allowance version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// resolveConfig loads the configuration and applies any flag
// overrides. Returns false when loading failed (already reported).
func resolveConfig(cmd *cobra.Command) (config.Config, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		reportConfigError(err)
		return config.Config{}, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		reportConfigError(err)
		return config.Config{}, false
	}

	flags := cmd.Root().PersistentFlags()
	if v, _ := flags.GetString("file"); v != "" {
		cfg.LedgerFile = v
	}
	if v, _ := flags.GetString("from"); v != "" {
		cfg.FromDate = v
	}
	if v, _ := flags.GetString("to"); v != "" {
		cfg.ToDate = v
	}
	if v, _ := flags.GetFloat64("inland"); v >= 0 {
		cfg.InlandRate = v
	}
	if v, _ := flags.GetFloat64("foreign"); v >= 0 {
		cfg.ForeignRate = v
	}
	if v, _ := flags.GetFloat64("km"); v >= 0 {
		cfg.KmRate = v
	}

	return cfg, true
}

// listLedger prints the current collection with per-row amounts and
// the two column totals. A missing file shows the seeded timeline
// without persisting it.
func listLedger(cmd *cobra.Command) {
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
		_, _ = fmt.Fprintf(deps.Stdout, "No ledger at %s yet; showing seeded timeline %s to %s (run 'allowance recalc' to create it)\n",
			cfg.LedgerFile, cfg.FromDate, cfg.ToDate)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Ledger: %s\n", cfg.LedgerFile)
	}

	if len(result.Rows) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No rows")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 100))

	maxIndexWidth := len(fmt.Sprintf("%d", len(result.Rows)))
	perDiemSum := decimal.Zero
	travelSum := decimal.Zero

	for i, e := range result.Rows {
		perDiemSum = perDiemSum.Add(e.PerDiemTotal)
		travelSum = travelSum.Add(e.TravelCost)

		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %-16s  %-6s %-6s %-8s  per-diem %8s  travel %8s  %s\n",
			maxIndexWidth,
			i+1,
			e.Start,
			e.EventType,
			e.WorkMode,
			e.RemoteType,
			e.PerDiemTotal.StringFixed(2),
			e.TravelCost.StringFixed(2),
			e.Description)
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 100))
	_, _ = fmt.Fprintf(deps.Stdout, "Totals: per-diem %s, travel %s\n",
		perDiemSum.StringFixed(2), travelSum.StringFixed(2))
}
