package main

import (
	"fmt"

	"github.com/awahed/dtcref"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	criteria := dtcref.FilterCriteria{}
	if c.System != "" {
		criteria.System = &c.System
	}
	if c.Severity != "" {
		sev, err := dtcref.ParseSeverity(c.Severity)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dtcref.ErrorMessage(err))
			return err
		}
		criteria.Severity = &sev
	}

	records, err := deps.Queries.Filter(deps.Ctx, criteria)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dtcref.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching codes found.")
		return nil
	}

	formatter, err := formatterFor(c.Format, deps)
	if err != nil {
		return err
	}

	out, err := formatter.FormatRecords(records)
	if err != nil {
		return err
	}

	return writeOutput(deps, c.Output, out)
}
