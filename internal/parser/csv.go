// Package parser provides CSV import and export of work entries
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"workbook/internal/models"
)

// Columns is the positional column order used when a file has no header
// and the header written on export
var Columns = []string{
	"location", "date", "time_start", "time_end", "vehicle",
	"km_start", "km_end", "work_type", "work_order",
}

// ParseCSV reads and parses a CSV file of work entries
// Expected columns, by header name or in this order:
// location, date, time_start, time_end, vehicle, km_start, km_end, work_type, work_order
// - date: DD.MM.YYYY. (YYYY-MM-DD is accepted and converted)
// - time_start, time_end: HH:MM
func ParseCSV(filePath string) ([]models.WorkEntry, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ParseCSVReader(file)
}

// ParseCSVReader parses work entries from r
func ParseCSVReader(r io.Reader) ([]models.WorkEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var entries []models.WorkEntry
	var mapping []int
	lineNumber := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNumber+1, err)
		}

		lineNumber++

		if lineNumber == 1 {
			if m, ok := headerMapping(record); ok {
				mapping = m
				continue
			}
			mapping = positionalMapping()
		}

		entry, err := parseWorkEntry(record, mapping)
		if err != nil {
			return nil, fmt.Errorf("error parsing line %d: %w", lineNumber, err)
		}

		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid work entries found in CSV file")
	}

	return entries, nil
}

// headerMapping maps each of Columns to its index in a header row.
// It reports false when record does not look like a header.
func headerMapping(record []string) ([]int, bool) {
	index := make(map[string]int, len(record))
	for i, field := range record {
		index[normalizeHeader(field)] = i
	}

	mapping := make([]int, len(Columns))
	for i, column := range Columns {
		pos, ok := index[column]
		if !ok {
			return nil, false
		}
		mapping[i] = pos
	}
	return mapping, true
}

func positionalMapping() []int {
	mapping := make([]int, len(Columns))
	for i := range mapping {
		mapping[i] = i
	}
	return mapping
}

// normalizeHeader turns "Time Start", "time-start" and "TIME_START" into time_start
func normalizeHeader(field string) string {
	field = strings.ToLower(strings.TrimSpace(field))
	field = strings.TrimPrefix(field, "\ufeff")
	return strings.NewReplacer(" ", "_", "-", "_").Replace(field)
}

// parseWorkEntry converts a CSV record into a WorkEntry
// The required fields must be non-blank, date must be a valid calendar
// date and times must be HH:MM
func parseWorkEntry(record []string, mapping []int) (models.WorkEntry, error) {
	for _, pos := range mapping {
		if pos >= len(record) {
			return models.WorkEntry{}, fmt.Errorf("expected %d fields, got %d", len(Columns), len(record))
		}
	}

	field := func(column int) string {
		return strings.TrimSpace(record[mapping[column]])
	}

	date, err := parseDate(field(1))
	if err != nil {
		return models.WorkEntry{}, err
	}

	entry := models.WorkEntry{
		ID:        models.NoRecord,
		Location:  field(0),
		Date:      date,
		TimeStart: field(2),
		TimeEnd:   field(3),
		Vehicle:   field(4),
		KmStart:   field(5),
		KmEnd:     field(6),
		WorkType:  field(7),
		WorkOrder: field(8),
	}

	if missing := entry.MissingFields(models.English); len(missing) > 0 {
		return models.WorkEntry{}, fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}

	for _, t := range []string{entry.TimeStart, entry.TimeEnd} {
		if !isValidTime(t) {
			return models.WorkEntry{}, fmt.Errorf("invalid time '%s': expected HH:MM", t)
		}
	}

	return entry, nil
}

// parseDate accepts DD.MM.YYYY. and YYYY-MM-DD and returns the canonical form
func parseDate(value string) (string, error) {
	if display, err := models.FromStorageDate(value); err == nil {
		return display, nil
	}
	if _, err := models.ParseDisplayDate(value); err != nil {
		return "", err
	}
	return value, nil
}

// isValidTime checks HH:MM with a 24 hour clock
func isValidTime(value string) bool {
	_, err := time.Parse(models.TimeLayout, value)
	return err == nil
}

// WriteCSV writes entries with a header row in Columns order
func WriteCSV(w io.Writer, entries []models.WorkEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.Location, e.Date, e.TimeStart, e.TimeEnd, e.Vehicle,
			e.KmStart, e.KmEnd, e.WorkType, e.WorkOrder,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write entry %d: %w", e.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
