package main

import (
	"fmt"

	"github.com/awahed/dtcref"
	"github.com/awahed/dtcref/fs"
)

// formatterFor returns the formatter for a --format value, falling back to
// the configured default when the flag was not given.
func formatterFor(name string, deps *Dependencies) (dtcref.Formatter, error) {
	if name == "" {
		name = deps.DefaultFormat
	}
	switch name {
	case "", "text":
		return dtcref.NewTextFormatter(), nil
	case "html":
		return dtcref.NewHTMLFormatter(), nil
	case "json":
		return dtcref.NewJSONFormatter(), nil
	}
	return nil, dtcref.Errorf(dtcref.EINVALID, "unknown output format %q", name)
}

// writeOutput sends formatted output either to a file or to stdout.
func writeOutput(deps *Dependencies, path, out string) error {
	if path == "" {
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}
	if err := fs.WriteReport(path, []byte(out)); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Report exported to %s\n", path)
	return nil
}
