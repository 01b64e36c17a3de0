package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/storage"
)

// setOut points the wizard output flag at a temp file. Callers must
// defer the returned reset.
func setOut(t *testing.T, path string) func() {
	t.Helper()
	if err := wizardCmd.Flags().Set("out", path); err != nil {
		t.Fatalf("failed to set out flag: %v", err)
	}
	return func() { _ = wizardCmd.Flags().Set("out", "events_manual.csv") }
}

func TestWizard_ScriptedSession(t *testing.T) {
	// Three days: remote work (domestic), travel with distance, free.
	stdin := strings.Join([]string{
		"work", "remote", "domestic", "", // 2025-06-01, default description
		"travel", "15.5", "", // 2025-06-02
		"", "", // 2025-06-03, default event type (free), default description
	}, "\n") + "\n"

	env := setupTest(t, stdin)
	defer ResetDeps()

	outPath := filepath.Join(t.TempDir(), "manual.csv")
	defer setOut(t, outPath)()

	runWizard(wizardCmd)

	if env.exitCode != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", env.exitCode, env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Wrote 3 rows to "+outPath) {
		t.Errorf("missing summary:\n%s", env.stdout.String())
	}

	result, err := storage.ReadTable(outPath)
	if err != nil {
		t.Fatalf("failed to read wizard output: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, expected 3", len(result.Rows))
	}

	work := result.Rows[0]
	if work.EventType != entry.EventWork || work.WorkMode != entry.ModeRemote || work.RemoteType != entry.RemoteDomestic {
		t.Errorf("day 1 tags = %q/%q/%q", work.EventType, work.WorkMode, work.RemoteType)
	}
	if !work.PerDiemRate.Equal(amount("14")) {
		t.Errorf("day 1 PerDiemRate = %s, expected 14", work.PerDiemRate)
	}
	// The reduced schema drops Per_Diem_Total; it reloads as zero.
	if !work.PerDiemTotal.IsZero() {
		t.Errorf("day 1 PerDiemTotal = %s, expected zero fill", work.PerDiemTotal)
	}
	if work.Description != "Remote work (domestic) from 2025-06-01T00:00 to 2025-06-01T23:59" {
		t.Errorf("day 1 Description = %q", work.Description)
	}

	travel := result.Rows[1]
	if travel.EventType != entry.EventTravel {
		t.Errorf("day 2 EventType = %q", travel.EventType)
	}
	if !travel.DistanceKm.Equal(amount("15.5")) {
		t.Errorf("day 2 DistanceKm = %s, expected 15.5", travel.DistanceKm)
	}
	if !travel.TravelCost.Equal(amount("4.65")) {
		t.Errorf("day 2 TravelCost = %s, expected 4.65", travel.TravelCost)
	}

	free := result.Rows[2]
	if free.EventType != entry.EventFree || free.WorkMode != entry.ModeFree {
		t.Errorf("day 3 tags = %q/%q", free.EventType, free.WorkMode)
	}
}

func TestWizard_ExhaustedInputTakesDefaults(t *testing.T) {
	// No input at all: every prompt falls back to its default, so all
	// three days become free rows.
	env := setupTest(t, "")
	defer ResetDeps()

	outPath := filepath.Join(t.TempDir(), "manual.csv")
	defer setOut(t, outPath)()

	runWizard(wizardCmd)

	if env.exitCode != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", env.exitCode, env.stderr.String())
	}

	result, err := storage.ReadTable(outPath)
	if err != nil {
		t.Fatalf("failed to read wizard output: %v", err)
	}
	for i, row := range result.Rows {
		if row.EventType != entry.EventFree {
			t.Errorf("row %d EventType = %q, expected free default", i, row.EventType)
		}
	}
}

func TestWizard_ReducedSchemaHeader(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	outPath := filepath.Join(t.TempDir(), "manual.csv")
	defer setOut(t, outPath)()

	runWizard(wizardCmd)
	_ = env

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read wizard output: %v", err)
	}
	header := strings.SplitN(string(raw), "\n", 2)[0]
	if strings.Contains(header, "Per_Diem_Total") {
		t.Errorf("header = %q, expected reduced schema", header)
	}
}

func TestWizard_InvalidRangeFails(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	flags := rootCmd.PersistentFlags()
	if err := flags.Set("to", "junk"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	defer func() { _ = flags.Set("to", "") }()

	runWizard(wizardCmd)

	if env.exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error: Invalid --to date") {
		t.Errorf("missing error on stderr:\n%s", env.stderr.String())
	}
}
