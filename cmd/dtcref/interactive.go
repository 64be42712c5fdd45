package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/awahed/dtcref"
)

// Run executes the interactive command. It reads commands from stdin and
// renders results with the terminal formatter until "exit" or EOF.
func (c *InteractiveCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "=== Diagnostic Code Interactive Mode ===")
	fmt.Fprintln(deps.Stdout, "Type 'help' for available commands or 'exit' to quit")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		command := strings.ToLower(parts[0])
		args := parts[1:]

		switch command {
		case "exit", "quit":
			return scanner.Err()
		case "help":
			printInteractiveHelp(deps)
		case "lookup":
			c.lookup(deps, args)
		case "system":
			c.filter(deps, "system", args)
		case "severity":
			c.filter(deps, "severity", args)
		case "search":
			c.search(deps, args)
		default:
			fmt.Fprintf(deps.Stdout, "Unknown command %q. Type 'help' for available commands\n", command)
		}
	}
	return scanner.Err()
}

func printInteractiveHelp(deps *Dependencies) {
	fmt.Fprintln(deps.Stdout, "Available commands:")
	fmt.Fprintln(deps.Stdout, "  lookup <code>      - Look up details for a diagnostic code")
	fmt.Fprintln(deps.Stdout, "  system <name>      - List all codes for a vehicle system")
	fmt.Fprintln(deps.Stdout, "  severity <level>   - List all codes with a severity level")
	fmt.Fprintln(deps.Stdout, "  search <keywords>  - Search codes by keyword")
	fmt.Fprintln(deps.Stdout, "  help               - Display this help message")
	fmt.Fprintln(deps.Stdout, "  exit               - Exit the interactive mode")
}

func (c *InteractiveCmd) lookup(deps *Dependencies, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(deps.Stdout, "Usage: lookup <code>")
		return
	}

	record, err := deps.Queries.LookupByCode(deps.Ctx, args[0])
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", dtcref.ErrorMessage(err))
		return
	}

	c.render(deps, func() (string, error) { return deps.Terminal.FormatRecord(record) })
}

func (c *InteractiveCmd) filter(deps *Dependencies, kind string, args []string) {
	if len(args) < 1 {
		fmt.Fprintf(deps.Stdout, "Usage: %s <%s>\n", kind, kind)
		return
	}

	criteria := dtcref.FilterCriteria{}
	switch kind {
	case "system":
		system := strings.Join(args, " ")
		criteria.System = &system
	case "severity":
		sev, err := dtcref.ParseSeverity(args[0])
		if err != nil {
			fmt.Fprintf(deps.Stdout, "error: %s\n", dtcref.ErrorMessage(err))
			return
		}
		criteria.Severity = &sev
	}

	records, err := deps.Queries.Filter(deps.Ctx, criteria)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", dtcref.ErrorMessage(err))
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching codes found.")
		return
	}

	c.render(deps, func() (string, error) { return deps.Terminal.FormatRecords(records) })
}

func (c *InteractiveCmd) search(deps *Dependencies, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(deps.Stdout, "Usage: search <keywords>")
		return
	}

	results, err := deps.Queries.Search(deps.Ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", dtcref.ErrorMessage(err))
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No codes match the given keywords.")
		return
	}

	c.render(deps, func() (string, error) { return deps.Terminal.FormatSearchResults(results) })
}

func (c *InteractiveCmd) render(deps *Dependencies, format func() (string, error)) {
	out, err := format()
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", dtcref.ErrorMessage(err))
		return
	}
	fmt.Fprintln(deps.Stdout, out)
}
