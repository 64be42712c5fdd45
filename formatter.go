package dtcref

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Formatter renders query results for presentation. The engine returns
// ordered, structured result sets; formatters decide how those results
// look. Each formatter must preserve result order so downstream report
// generation is reproducible.
type Formatter interface {
	// FormatRecord renders a single record.
	FormatRecord(record *CodeRecord) (string, error)

	// FormatRecords renders an ordered sequence of records.
	FormatRecords(records []*CodeRecord) (string, error)

	// FormatSearchResults renders ranked search results including each
	// record's relevance score.
	FormatSearchResults(results []SearchResult) (string, error)
}

// TextFormatter renders records as plain text suitable for files and
// pipes.
type TextFormatter struct{}

var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// FormatRecord renders a single record as plain text.
func (f *TextFormatter) FormatRecord(record *CodeRecord) (string, error) {
	if record == nil {
		return "", Errorf(EINVALID, "record required")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error Code: %s\n", record.Code)
	fmt.Fprintf(&sb, "Description: %s\n", record.Description)
	fmt.Fprintf(&sb, "Severity: %s\n", record.Severity)
	fmt.Fprintf(&sb, "System: %s\n", record.System)

	sb.WriteString("\nPossible Causes:\n")
	for _, cause := range record.Causes {
		fmt.Fprintf(&sb, "  - %s\n", cause)
	}

	sb.WriteString("\nRecommended Actions:\n")
	for _, action := range record.Actions {
		fmt.Fprintf(&sb, "  - %s\n", action)
	}

	return sb.String(), nil
}

// FormatRecords renders records separated by blank lines.
func (f *TextFormatter) FormatRecords(records []*CodeRecord) (string, error) {
	parts := make([]string, 0, len(records))
	for _, record := range records {
		part, err := f.FormatRecord(record)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n"), nil
}

// FormatSearchResults renders ranked results with their scores.
func (f *TextFormatter) FormatSearchResults(results []SearchResult) (string, error) {
	parts := make([]string, 0, len(results))
	for _, result := range results {
		part, err := f.FormatRecord(result.Record)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("Relevance: %.1f\n%s", result.Score, part))
	}
	return strings.Join(parts, "\n"), nil
}

// HTMLFormatter renders records as a self-contained HTML report.
type HTMLFormatter struct{}

var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter creates a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// FormatRecord renders a single record as an HTML document.
func (f *HTMLFormatter) FormatRecord(record *CodeRecord) (string, error) {
	if record == nil {
		return "", Errorf(EINVALID, "record required")
	}
	return f.document(func(sb *strings.Builder) {
		writeRecordHTML(sb, record, 0)
	}), nil
}

// FormatRecords renders records as a single HTML document.
func (f *HTMLFormatter) FormatRecords(records []*CodeRecord) (string, error) {
	for _, record := range records {
		if record == nil {
			return "", Errorf(EINVALID, "record required")
		}
	}
	return f.document(func(sb *strings.Builder) {
		for _, record := range records {
			writeRecordHTML(sb, record, 0)
		}
	}), nil
}

// FormatSearchResults renders ranked results as a single HTML document.
func (f *HTMLFormatter) FormatSearchResults(results []SearchResult) (string, error) {
	for _, result := range results {
		if result.Record == nil {
			return "", Errorf(EINVALID, "record required")
		}
	}
	return f.document(func(sb *strings.Builder) {
		for _, result := range results {
			writeRecordHTML(sb, result.Record, result.Score)
		}
	}), nil
}

// document wraps body content in the report page scaffolding.
func (f *HTMLFormatter) document(body func(*strings.Builder)) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<title>Diagnostic Code Report</title>\n")
	sb.WriteString("<style>\n")
	sb.WriteString("body { font-family: Arial, sans-serif; margin: 20px; }\n")
	sb.WriteString(".error-code { border: 1px solid #ddd; padding: 15px; margin-bottom: 20px; }\n")
	sb.WriteString("h2 { color: #d9534f; }\n")
	sb.WriteString("h3 { color: #5bc0de; }\n")
	sb.WriteString("</style>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString("<h1>Diagnostic Code Report</h1>\n")
	body(&sb)
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// writeRecordHTML renders one record block. A non-zero score appends a
// relevance line for search results.
func writeRecordHTML(sb *strings.Builder, record *CodeRecord, score float64) {
	sb.WriteString("<div class='error-code'>\n")
	fmt.Fprintf(sb, "<h2>Error Code: %s</h2>\n", html.EscapeString(record.Code))
	fmt.Fprintf(sb, "<p><strong>Description:</strong> %s</p>\n", html.EscapeString(record.Description))
	fmt.Fprintf(sb, "<p><strong>Severity:</strong> %s</p>\n", html.EscapeString(record.Severity.String()))
	fmt.Fprintf(sb, "<p><strong>System:</strong> %s</p>\n", html.EscapeString(record.System))
	if score > 0 {
		fmt.Fprintf(sb, "<p><strong>Relevance:</strong> %.1f</p>\n", score)
	}

	sb.WriteString("<h3>Possible Causes:</h3>\n<ul>\n")
	for _, cause := range record.Causes {
		fmt.Fprintf(sb, "<li>%s</li>\n", html.EscapeString(cause))
	}
	sb.WriteString("</ul>\n")

	sb.WriteString("<h3>Recommended Actions:</h3>\n<ul>\n")
	for _, action := range record.Actions {
		fmt.Fprintf(sb, "<li>%s</li>\n", html.EscapeString(action))
	}
	sb.WriteString("</ul>\n")
	sb.WriteString("</div>\n")
}

// JSONFormatter renders records as indented JSON for machine
// consumption.
type JSONFormatter struct{}

var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatRecord renders a single record as JSON.
func (f *JSONFormatter) FormatRecord(record *CodeRecord) (string, error) {
	if record == nil {
		return "", Errorf(EINVALID, "record required")
	}
	return marshalJSON(record)
}

// FormatRecords renders records as a JSON array.
func (f *JSONFormatter) FormatRecords(records []*CodeRecord) (string, error) {
	if records == nil {
		records = []*CodeRecord{}
	}
	return marshalJSON(records)
}

// FormatSearchResults renders ranked results as a JSON array of
// record/score pairs.
func (f *JSONFormatter) FormatSearchResults(results []SearchResult) (string, error) {
	if results == nil {
		results = []SearchResult{}
	}
	return marshalJSON(results)
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", Errorf(EINTERNAL, "failed to encode result: %s", err)
	}
	return string(data), nil
}
