package main

import (
	"context"
	"io"

	"github.com/awahed/dtcref"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Queries   dtcref.QueryService
	Corpus    dtcref.CorpusService
	Explainer dtcref.Explainer
	Terminal  dtcref.Formatter

	// DefaultFormat is the output format used when --format is not given.
	DefaultFormat string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lookup      LookupCmd      `cmd:"" help:"Look up a diagnostic code"`
	List        ListCmd        `cmd:"" help:"List codes filtered by system or severity"`
	Search      SearchCmd      `cmd:"" help:"Search codes by keyword"`
	Explain     ExplainCmd     `cmd:"" help:"Explain a diagnostic code using Gemini"`
	Import      ImportCmd      `cmd:"" help:"Import a corpus file into the local database"`
	Interactive InteractiveCmd `cmd:"" help:"Start an interactive session"`

	Corpus  string `help:"Path to a corpus file" env:"DTCREF_CORPUS"`
	Verbose bool   `short:"v" help:"Log query activity"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Code   string `arg:"" help:"Diagnostic code, e.g. P0300"`
	Format string `short:"f" help:"Output format (text, html, json)"`
	Output string `short:"o" help:"Write output to a file instead of stdout"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	System   string `short:"s" help:"Filter by vehicle system, e.g. Engine"`
	Severity string `short:"S" help:"Filter by severity (Low, Medium, High, Critical)"`
	Format   string `short:"f" help:"Output format (text, html, json)"`
	Output   string `short:"o" help:"Write output to a file instead of stdout"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  []string `arg:"" help:"Keywords to search for"`
	Format string   `short:"f" help:"Output format (text, html, json)"`
	Output string   `short:"o" help:"Write output to a file instead of stdout"`
}

// ExplainCmd is the "explain" subcommand.
type ExplainCmd struct {
	Code     string `arg:"" help:"Diagnostic code, e.g. P0300"`
	Question string `arg:"" optional:"" help:"Optional follow-up question about the code"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path string `arg:"" help:"Corpus file to import (.txt block format or .csv)"`
}

// InteractiveCmd is the "interactive" subcommand.
type InteractiveCmd struct{}
