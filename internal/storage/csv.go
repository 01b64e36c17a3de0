// Package storage reads and writes the ledger as a flat CSV table.
//
// All values are strings on disk; numeric coercion happens on load.
// Files written by older or external tools may miss columns or carry
// extras: loading coerces every row to the canonical schema, adding
// missing columns as empty values and dropping unknown ones.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
)

// Columns is the canonical schema, in persisted order.
var Columns = []string{
	"Start",
	"End",
	"Event_Type",
	"Work_Mode",
	"Remote_Type",
	"Per_Diem_Rate",
	"Km_Rate",
	"Distance_km",
	"Per_Diem_Total",
	"Travel_Cost",
	"Description",
}

// WizardColumns is the reduced schema written by the guided entry
// front end. It omits Per_Diem_Total; loading such a file through
// ReadTable fills the missing column with zero.
var WizardColumns = []string{
	"Start",
	"End",
	"Event_Type",
	"Work_Mode",
	"Remote_Type",
	"Per_Diem_Rate",
	"Km_Rate",
	"Distance_km",
	"Travel_Cost",
	"Description",
}

// ParseWarning describes a row that deviated from the expected shape
// but was still loaded after coercion.
type ParseWarning struct {
	Line   int    // 1-indexed line number in the file (header is line 1)
	Fields int    // number of fields found on the row
	Reason string // description of the deviation
}

// TableResult contains the rows loaded from a ledger file plus any
// warnings about malformed rows.
type TableResult struct {
	Rows     []entry.Entry
	Warnings []ParseWarning
}

// Exists reports whether a ledger file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadTable loads a ledger CSV and coerces every row to the canonical
// schema. Rows shorter than the header are padded with empty values
// and recorded as warnings; unknown columns are dropped. Numeric
// fields that do not parse coerce to zero.
func ReadTable(path string) (TableResult, error) {
	result := TableResult{
		Rows:     []entry.Entry{},
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		return result, err
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return result, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for line, record := range records[1:] {
		if len(record) < len(header) {
			result.Warnings = append(result.Warnings, ParseWarning{
				Line:   line + 2,
				Fields: len(record),
				Reason: fmt.Sprintf("row has %d fields, header has %d; missing values treated as empty", len(record), len(header)),
			})
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		result.Rows = append(result.Rows, entry.Entry{
			Start:        strings.TrimSpace(field("Start")),
			End:          strings.TrimSpace(field("End")),
			EventType:    entry.NormalizeEventType(field("Event_Type")),
			WorkMode:     entry.NormalizeWorkMode(field("Work_Mode")),
			RemoteType:   entry.NormalizeRemoteType(field("Remote_Type")),
			PerDiemRate:  entry.ParseAmount(field("Per_Diem_Rate")),
			KmRate:       entry.ParseAmount(field("Km_Rate")),
			DistanceKm:   entry.ParseAmount(field("Distance_km")),
			PerDiemTotal: entry.ParseAmount(field("Per_Diem_Total")),
			TravelCost:   entry.ParseAmount(field("Travel_Cost")),
			Description:  field("Description"),
		})
	}

	return result, nil
}

// WriteTable overwrites the destination with the full collection.
// The write goes to a temporary file first and is renamed into place,
// so readers never observe a half-written table.
func WriteTable(path string, rows []entry.Entry) error {
	tmpPath := path + ".tmp"

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(Columns); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	for _, e := range rows {
		record := []string{
			e.Start,
			e.End,
			string(e.EventType),
			string(e.WorkMode),
			string(e.RemoteType),
			e.PerDiemRate.String(),
			e.KmRate.String(),
			e.DistanceKm.String(),
			e.PerDiemTotal.String(),
			e.TravelCost.String(),
			e.Description,
		}
		if err := writer.Write(record); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

// WriteWizardTable writes rows using the reduced wizard schema.
func WriteWizardTable(path string, rows []entry.Entry) error {
	tmpPath := path + ".tmp"

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(WizardColumns); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	for _, e := range rows {
		record := []string{
			e.Start,
			e.End,
			string(e.EventType),
			string(e.WorkMode),
			string(e.RemoteType),
			e.PerDiemRate.String(),
			e.KmRate.String(),
			e.DistanceKm.String(),
			e.TravelCost.String(),
			e.Description,
		}
		if err := writer.Write(record); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
