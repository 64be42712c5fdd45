package main

import (
	"fmt"
	"strings"

	"github.com/awahed/dtcref"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Queries.Search(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dtcref.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No codes match the given keywords.")
		return nil
	}

	formatter, err := formatterFor(c.Format, deps)
	if err != nil {
		return err
	}

	out, err := formatter.FormatSearchResults(results)
	if err != nil {
		return err
	}

	return writeOutput(deps, c.Output, out)
}
