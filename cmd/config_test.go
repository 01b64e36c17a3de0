package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_WithConfigFile(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	showConfig(configCmd)

	out := env.stdout.String()
	if !strings.Contains(out, "Configuration for allowance") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "Status:        File exists (using custom configuration)") {
		t.Errorf("missing file status:\n%s", out)
	}
	if !strings.Contains(out, "Inland rate:   14.00") {
		t.Errorf("missing inland rate:\n%s", out)
	}
	if !strings.Contains(out, "Foreign rate:  28.00") {
		t.Errorf("missing foreign rate:\n%s", out)
	}
	if !strings.Contains(out, "Km rate:       0.30") {
		t.Errorf("missing km rate:\n%s", out)
	}
	if !strings.Contains(out, "From date:     2025-06-01") {
		t.Errorf("missing from date:\n%s", out)
	}
	if !strings.Contains(out, "Ledger file:   "+env.ledger) {
		t.Errorf("missing ledger file:\n%s", out)
	}
	if strings.Contains(out, "Tip:") {
		t.Errorf("tip shown despite existing config file:\n%s", out)
	}
}

func TestConfig_WithoutConfigFile(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	missingPath := filepath.Join(t.TempDir(), "config.toml")
	deps.ConfigPath = func() (string, error) { return missingPath, nil }

	showConfig(configCmd)

	out := env.stdout.String()
	if !strings.Contains(out, "Status:        No config file (using defaults)") {
		t.Errorf("missing defaults status:\n%s", out)
	}
	if !strings.Contains(out, "Tip: Create a config.toml file") {
		t.Errorf("missing tip:\n%s", out)
	}
	if !strings.Contains(out, "Ledger file:   events_with_per_diem_and_travel.csv") {
		t.Errorf("missing default ledger file:\n%s", out)
	}
}

func TestConfig_BrokenFileReported(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	badPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(badPath, []byte("inland_rate = \"fourteen\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	deps.ConfigPath = func() (string, error) { return badPath, nil }

	showConfig(configCmd)

	if env.exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error: Failed to load configuration") {
		t.Errorf("missing error on stderr:\n%s", env.stderr.String())
	}
}
