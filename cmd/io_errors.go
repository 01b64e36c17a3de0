package cmd

import (
	"fmt"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/derive"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/storage"
)

func reportLoadError(path string, err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load the ledger")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the file exists and is readable: %s\n", path)
	deps.Exit(1)
}

func reportSaveError(path string, err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save the ledger")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory exists and is writable: %s\n", path)
	deps.Exit(1)
}

func reportConfigError(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your config file is valid TOML and the rates are non-negative")
	deps.Exit(1)
}

// printShapeWarnings reports rows that deviated from the canonical
// schema while loading. They are coerced, not dropped.
func printShapeWarnings(warnings []storage.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d malformed row(s) in ledger file:\n", len(warnings))
	for _, w := range warnings {
		_, _ = fmt.Fprintf(deps.Stderr, "  Line %d: %s\n", w.Line, w.Reason)
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}

// printSkipWarnings reports rows the rule engine passed through
// unmodified because their dates did not parse.
func printSkipWarnings(skipped []derive.SkipWarning) {
	if len(skipped) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Skipped derivation for %d row(s) with unparsable dates:\n", len(skipped))
	for _, s := range skipped {
		_, _ = fmt.Fprintf(deps.Stderr, "  Row %d (%s .. %s): %s\n", s.Index+1, s.Start, s.End, s.Reason)
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}
