// Package lipgloss renders query results for color terminals, with the
// severity color-coded so critical codes stand out.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/awahed/dtcref"
)

// Ensure Formatter implements dtcref.Formatter at compile time.
var _ dtcref.Formatter = (*Formatter)(nil)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	codeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	causeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	severityStyles = map[dtcref.Severity]lipgloss.Style{
		dtcref.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		dtcref.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		dtcref.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dtcref.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	}
)

const border = "================================"

// Formatter renders records with ANSI styling.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatRecord renders a single record as a styled terminal block.
func (f *Formatter) FormatRecord(record *dtcref.CodeRecord) (string, error) {
	if record == nil {
		return "", dtcref.Errorf(dtcref.EINVALID, "record required")
	}
	return f.renderRecord(record, 0), nil
}

// FormatRecords renders records as consecutive styled blocks.
func (f *Formatter) FormatRecords(records []*dtcref.CodeRecord) (string, error) {
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
func (f *Formatter) FormatSearchResults(results []dtcref.SearchResult) (string, error) {
	parts := make([]string, 0, len(results))
	for _, result := range results {
		if result.Record == nil {
			return "", dtcref.Errorf(dtcref.EINVALID, "record required")
		}
		parts = append(parts, f.renderRecord(result.Record, result.Score))
	}
	return strings.Join(parts, "\n"), nil
}

// renderRecord renders one record block. A non-zero score appends a
// relevance line for search results.
func (f *Formatter) renderRecord(record *dtcref.CodeRecord, score float64) string {
	severityStyle, ok := severityStyles[record.Severity]
	if !ok {
		severityStyle = lipgloss.NewStyle()
	}

	var sb strings.Builder
	sb.WriteString(borderStyle.Render(border) + "\n")
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Error Code:"), codeStyle.Render(record.Code))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Description:"), record.Description)
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Severity:"), severityStyle.Render(record.Severity.String()))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("System:"), systemStyle.Render(record.System))
	if score > 0 {
		fmt.Fprintf(&sb, "%s %.1f\n", scoreStyle.Render("Relevance:"), score)
	}

	sb.WriteString("\n" + causeStyle.Render("Possible Causes:") + "\n")
	for _, cause := range record.Causes {
		fmt.Fprintf(&sb, "  - %s\n", cause)
	}

	sb.WriteString("\n" + actionStyle.Render("Recommended Actions:") + "\n")
	for _, action := range record.Actions {
		fmt.Fprintf(&sb, "  - %s\n", action)
	}
	sb.WriteString(borderStyle.Render(border) + "\n")

	return sb.String()
}
