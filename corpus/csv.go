package corpus

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/awahed/dtcref"
)

// ParseCSV reads the legacy CSV corpus layout: a header row followed by
// code,description,severity,system,possible_causes,recommended_actions
// rows, where the two list columns hold pipe-separated entries.
// Validation matches Parse; the returned error is a *dtcref.LoadError.
func ParseCSV(r io.Reader) ([]*dtcref.CodeRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 6
	reader.TrimLeadingSpace = true

	var (
		records []*dtcref.CodeRecord
		seen    = make(map[string]int)
		line    int
	)

	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, loadErrorf(line, "invalid CSV row: %s", err)
		}

		// Header row.
		if line == 1 {
			if !strings.EqualFold(strings.TrimSpace(row[0]), "code") {
				return nil, loadErrorf(1, "missing header row")
			}
			continue
		}

		block := &block{codeLine: line}
		block.record.Code = strings.TrimSpace(row[0])
		block.record.Description = strings.TrimSpace(row[1])
		block.record.System = strings.TrimSpace(row[3])
		block.record.Causes = splitList(row[4])
		block.record.Actions = splitList(row[5])

		severityText := strings.TrimSpace(row[2])
		if severityText != "" {
			severity, err := dtcref.ParseSeverity(severityText)
			if err != nil {
				return nil, loadErrorf(line, "unrecognized severity %q", severityText)
			}
			block.record.Severity = severity
		}

		record, err := finishBlock(block, seen)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// splitList splits a pipe-separated list column, trimming each entry
// and dropping empties.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
