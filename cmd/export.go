package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/storage"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to other formats",
	Long: `Export the ledger for programmatic use, backup, or migration.

Available formats:
  json    Export the ledger as JSON

Examples:
  allowance export json                 Export the configured ledger
  allowance export json > ledger.json   Export to a file
  allowance export json --file trip.csv Export a specific ledger file`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the ledger as JSON",
	Long: `Export all ledger rows to JSON.

Output includes metadata (export timestamp, row count, source file)
and an array of row objects with the derived columns as they are
stored. Rows are exported as-is; run 'allowance recalc' first if the
file may contain stale derived values.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runExportJSON(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
}

func runExportJSON(cmd *cobra.Command) {
	cfg, ok := resolveConfig(cmd)
	if !ok {
		return
	}

	if !storage.Exists(cfg.LedgerFile) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No ledger file at %s\n", cfg.LedgerFile)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Create one with 'allowance recalc' or 'allowance wizard'")
		deps.Exit(1)
		return
	}

	result, err := storage.ReadTable(cfg.LedgerFile)
	if err != nil {
		reportLoadError(cfg.LedgerFile, err)
		return
	}
	printShapeWarnings(result.Warnings)

	output := struct {
		Metadata struct {
			ExportTimestamp time.Time `json:"export_timestamp"`
			TotalRows       int       `json:"total_rows"`
			SourceFile      string    `json:"source_file"`
		} `json:"metadata"`
		Rows []entry.Entry `json:"rows"`
	}{}

	output.Metadata.ExportTimestamp = time.Now()
	output.Metadata.TotalRows = len(result.Rows)
	output.Metadata.SourceFile = cfg.LedgerFile
	output.Rows = result.Rows

	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode JSON output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}
