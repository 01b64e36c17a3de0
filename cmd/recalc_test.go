package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/storage"
)

func TestRecalc_SeedsAndSavesMissingFile(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	runRecalc(recalcCmd)

	out := env.stdout.String()
	if !strings.Contains(out, "Seeded 3 placeholder rows for 2025-06-01 to 2025-06-03") {
		t.Errorf("missing seed message:\n%s", out)
	}
	if !strings.Contains(out, "Recalculated 3 rows and saved to "+env.ledger) {
		t.Errorf("missing save message:\n%s", out)
	}
	if env.exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", env.exitCode)
	}

	result, err := storage.ReadTable(env.ledger)
	if err != nil {
		t.Fatalf("failed to read written ledger: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, expected 3", len(result.Rows))
	}
	for i, row := range result.Rows {
		if row.EventType != entry.EventFree {
			t.Errorf("row %d EventType = %q, expected free", i, row.EventType)
		}
	}
}

func TestRecalc_DerivesExistingRows(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	seedLedger(t, env, []entry.Entry{
		{Start: "2025-06-02", End: "2025-06-02", EventType: entry.EventTravel, DistanceKm: amount("15.5")},
		{Start: "2025-06-01", End: "2025-06-01", EventType: entry.EventWork, WorkMode: entry.ModeRemote, RemoteType: entry.RemoteDomestic},
	})

	runRecalc(recalcCmd)

	result, err := storage.ReadTable(env.ledger)
	if err != nil {
		t.Fatalf("failed to read written ledger: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, expected 2", len(result.Rows))
	}

	// Sorted by Start, amounts derived, descriptions filled.
	first := result.Rows[0]
	if first.Start != "2025-06-01" {
		t.Errorf("Rows[0].Start = %q, expected sorted order", first.Start)
	}
	if !first.PerDiemTotal.Equal(amount("14")) {
		t.Errorf("PerDiemTotal = %s, expected 14", first.PerDiemTotal)
	}
	if first.Description != "Remote work (domestic) from 2025-06-01 to 2025-06-01" {
		t.Errorf("Description = %q", first.Description)
	}

	second := result.Rows[1]
	if !second.TravelCost.Equal(amount("4.65")) {
		t.Errorf("TravelCost = %s, expected 4.65", second.TravelCost)
	}
	if second.Description != "Travel on 2025-06-02 covering 15.5 km" {
		t.Errorf("Description = %q", second.Description)
	}
}

func TestRecalc_Idempotent(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	seedLedger(t, env, []entry.Entry{
		{Start: "2025-06-01", End: "2025-06-02", EventType: entry.EventWork, WorkMode: entry.ModeRemote, RemoteType: entry.RemoteForeign},
		{Start: "2025-06-03", End: "2025-06-03", EventType: entry.EventTravel, DistanceKm: amount("100")},
	})

	runRecalc(recalcCmd)
	firstPass, err := os.ReadFile(env.ledger)
	if err != nil {
		t.Fatalf("failed to read ledger: %v", err)
	}

	runRecalc(recalcCmd)
	secondPass, err := os.ReadFile(env.ledger)
	if err != nil {
		t.Fatalf("failed to read ledger: %v", err)
	}

	if string(firstPass) != string(secondPass) {
		t.Errorf("second recalc changed the file:\nfirst:\n%s\nsecond:\n%s", firstPass, secondPass)
	}
}

func TestRecalc_ReportsSkippedRows(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	seedLedger(t, env, []entry.Entry{
		{Start: "2025-06-01", End: "2025-06-01", EventType: entry.EventFree},
		{Start: "not-a-date", End: "2025-06-02", EventType: entry.EventWork, Description: "broken row"},
	})

	runRecalc(recalcCmd)

	if !strings.Contains(env.stderr.String(), "Skipped derivation for 1 row(s)") {
		t.Errorf("missing skip warning on stderr:\n%s", env.stderr.String())
	}

	// The skipped row is persisted untouched.
	result, err := storage.ReadTable(env.ledger)
	if err != nil {
		t.Fatalf("failed to read ledger: %v", err)
	}
	found := false
	for _, row := range result.Rows {
		if row.Start == "not-a-date" {
			found = true
			if row.Description != "broken row" {
				t.Errorf("skipped row Description = %q, expected untouched", row.Description)
			}
		}
	}
	if !found {
		t.Error("skipped row missing from persisted collection")
	}
}

func TestRecalc_InvalidRangeFails(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	flags := rootCmd.PersistentFlags()
	if err := flags.Set("from", "junk"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	defer func() { _ = flags.Set("from", "") }()

	runRecalc(recalcCmd)

	if env.exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error: Failed to load the ledger") {
		t.Errorf("missing error on stderr:\n%s", env.stderr.String())
	}
	if storage.Exists(env.ledger) {
		t.Error("failed recalc must not create the ledger file")
	}
}
