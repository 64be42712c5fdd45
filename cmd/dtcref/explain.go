package main

import (
	"fmt"

	"github.com/awahed/dtcref"
)

// Run executes the explain command.
func (c *ExplainCmd) Run(deps *Dependencies) error {
	record, err := deps.Queries.LookupByCode(deps.Ctx, c.Code)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dtcref.ErrorMessage(err))
		return err
	}

	answer, err := deps.Explainer.Explain(deps.Ctx, record, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dtcref.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
