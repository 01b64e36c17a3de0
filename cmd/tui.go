package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/service"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the ledger interactively",
	Long: `Launch the interactive terminal UI for the ledger.

The TUI shows the collection as a table. Rows can be edited, added
and deleted in place; pressing 'r' recalculates every derived column,
sorts the collection and saves it.

Keyboard shortcuts:
  - j/k or arrows: Navigate rows
  - e: Edit the selected row
  - n: Add a new row
  - d: Delete the selected row
  - r: Recalculate & save
  - R: Reload from disk
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes services with the resolved configuration and
// runs the edit surface.
func runTUI(cmd *cobra.Command) {
	cfg, ok := resolveConfig(cmd)
	if !ok {
		return
	}

	configPath, err := deps.ConfigPath()
	if err != nil {
		reportConfigError(err)
		return
	}

	services := service.NewServicesWithConfig(configPath, cfg)
	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}
