package importer

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
)

// Row is one parsed line of a program export file.
type Row struct {
	StartTime     string
	ProgramNumber int64
	EntryType     string
	Category      string
	Class         string
	Participants  string
	StudioName    string
	RoutineTitle  string
}

// Column headers expected in the export. Matching is case-insensitive and
// ignores surrounding whitespace; extra columns are ignored.
var requiredColumns = []string{
	"StartTime", "EntryID", "EntryType", "Category",
	"Class", "Participants", "StudioName", "Routine Title",
}

// ParseCSV reads a program export stream into rows. Rows whose EntryID is
// not numeric are rejected; blank lines are skipped by the csv reader.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Validation("import file is empty")
	}
	if err != nil {
		return nil, errors.Validationf("failed to read header row: %v", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, want := range requiredColumns {
		if _, ok := colIndex[strings.ToLower(want)]; !ok {
			return nil, errors.Validationf("import file is missing column %q", want)
		}
	}
	field := func(record []string, name string) string {
		idx := colIndex[strings.ToLower(name)]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Validationf("failed to parse line %d: %v", line, err)
		}

		entryID := field(record, "EntryID")
		programNumber, err := strconv.ParseInt(entryID, 10, 64)
		if err != nil {
			return nil, errors.Validationf("line %d: EntryID %q is not a number", line, entryID)
		}

		rows = append(rows, Row{
			StartTime:     field(record, "StartTime"),
			ProgramNumber: programNumber,
			EntryType:     field(record, "EntryType"),
			Category:      field(record, "Category"),
			Class:         field(record, "Class"),
			Participants:  field(record, "Participants"),
			StudioName:    field(record, "StudioName"),
			RoutineTitle:  field(record, "Routine Title"),
		})
	}
	return rows, nil
}
