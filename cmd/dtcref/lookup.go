package main

import (
	"fmt"

	"github.com/awahed/dtcref"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	record, err := deps.Queries.LookupByCode(deps.Ctx, c.Code)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dtcref.ErrorMessage(err))
		return err
	}

	formatter, err := formatterFor(c.Format, deps)
	if err != nil {
		return err
	}

	out, err := formatter.FormatRecord(record)
	if err != nil {
		return err
	}

	return writeOutput(deps, c.Output, out)
}
