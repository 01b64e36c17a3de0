package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration for allowance.

Shows the configuration file location, whether it exists, and all
current settings. Values are merged from the config file with
defaults, then overridden by any flags on the command line.

Defaults:
  inland_rate:  14.0   (per-diem for domestic remote work)
  foreign_rate: 28.0   (per-diem for foreign remote work)
  km_rate:      0.30   (travel reimbursement per kilometer)
  from_date / to_date: the current calendar month
  ledger_file:  events_with_per_diem_and_travel.csv

Configuration file location:
  ~/.config/allowance/config.toml    Linux/macOS
  %APPDATA%\allowance\config.toml    Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig(cmd *cobra.Command) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		reportConfigError(err)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, ok := resolveConfig(cmd)
	if !ok {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for allowance")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:   %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:        File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:        No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Inland rate:   %.2f\n", cfg.InlandRate)
	_, _ = fmt.Fprintf(deps.Stdout, "Foreign rate:  %.2f\n", cfg.ForeignRate)
	_, _ = fmt.Fprintf(deps.Stdout, "Km rate:       %.2f\n", cfg.KmRate)
	_, _ = fmt.Fprintf(deps.Stdout, "From date:     %s\n", cfg.FromDate)
	_, _ = fmt.Fprintf(deps.Stdout, "To date:       %s\n", cfg.ToDate)
	_, _ = fmt.Fprintf(deps.Stdout, "Ledger file:   %s\n", cfg.LedgerFile)
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Create a config.toml file at the above location to customize settings.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}
