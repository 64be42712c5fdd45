package main

import (
	"fmt"
	"path/filepath"

	"github.com/awahed/dtcref"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	records, err := parseCorpusFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	info, err := deps.Corpus.ImportCorpus(deps.Ctx, records, filepath.Base(c.Path))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dtcref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d codes from %s (fingerprint %s)\n", info.RecordCount, info.Source, info.Fingerprint)
	return nil
}
