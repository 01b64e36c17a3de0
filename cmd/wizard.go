package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/derive"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/storage"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/timeutil"
)

// wizardCmd represents the wizard command
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a ledger from guided prompts",
	Long: `Walk through the configured date range day by day, asking for the
event type, work mode, domestic/foreign classification, distance and
description, and write the resulting rows to their own CSV file.

The wizard constructs rows directly and derives their amounts as it
goes. Its output uses a reduced column set without the Per_Diem_Total
column; loading it with 'allowance recalc --file <out>' coerces it to
the full schema and fills the missing column.

Prompts accept an empty answer to take the shown default.

Examples:
  allowance wizard                              Prompt for the configured range
  allowance wizard --from 2025-06-01 --to 2025-06-05
                                                Prompt for five days of June
  allowance wizard --out trip.csv               Write to a specific file`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runWizard(cmd)
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.Flags().String("out", "events_manual.csv", "Output CSV file for the wizard rows")
}

// runWizard prompts turn by turn and writes the reduced-schema table.
func runWizard(cmd *cobra.Command) {
	cfg, ok := resolveConfig(cmd)
	if !ok {
		return
	}

	from, err := timeutil.ParseDate(cfg.FromDate)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --from date: %v\n", err)
		deps.Exit(1)
		return
	}
	to, err := timeutil.ParseDate(cfg.ToDate)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --to date: %v\n", err)
		deps.Exit(1)
		return
	}

	outPath, _ := cmd.Flags().GetString("out")
	rates := cfg.Rates()
	scanner := bufio.NewScanner(deps.Stdin)

	var rows []entry.Entry
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		day := cur.Format(timeutil.DateLayout)
		_, _ = fmt.Fprintf(deps.Stdout, "\nDay %s\n", day)

		e := entry.Entry{
			Start: timeutil.FormatStamp(cur),
			End:   timeutil.FormatStamp(cur.Add(23*time.Hour + 59*time.Minute)),
		}

		e.EventType = entry.NormalizeEventType(prompt(scanner, "Event type [work/travel/free]", "free"))
		switch e.EventType {
		case entry.EventWork:
			e.WorkMode = entry.NormalizeWorkMode(prompt(scanner, "Work mode [onsite/remote]", "onsite"))
			if e.WorkMode == entry.ModeRemote {
				e.RemoteType = entry.NormalizeRemoteType(prompt(scanner, "Remote type [domestic/foreign]", "domestic"))
			} else {
				e.RemoteType = entry.RemoteNA
			}
		case entry.EventTravel:
			e.WorkMode = entry.ModeRemote
			e.RemoteType = entry.RemoteNA
			e.DistanceKm = entry.ParseAmount(prompt(scanner, "Distance in km", "0"))
		default:
			e.WorkMode = entry.ModeFree
			e.RemoteType = entry.RemoteNA
		}
		e.Description = prompt(scanner, "Description (empty for default)", "")

		derived, err := derive.Row(e, rates)
		if err != nil {
			// Stamps are generated, not typed, so this should not happen.
			derived = e
		}
		rows = append(rows, derived)
	}

	if err := storage.WriteWizardTable(outPath, rows); err != nil {
		reportSaveError(outPath, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "\nWrote %d rows to %s\n", len(rows), outPath)
	_, _ = fmt.Fprintln(deps.Stdout, "Note: wizard output omits the Per_Diem_Total column; run 'allowance recalc --file' on it before merging with the main ledger.")
}

// prompt asks one question and returns the trimmed answer, or the
// default when the answer is empty or input is exhausted.
func prompt(scanner *bufio.Scanner, label, def string) string {
	if def != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s (%s): ", label, def)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s: ", label)
	}

	if !scanner.Scan() {
		return def
	}
	answer := strings.TrimSpace(scanner.Text())
	if answer == "" {
		return def
	}
	return answer
}
