package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/awahed/dtcref"
	"github.com/awahed/dtcref/corpus"
	"github.com/awahed/dtcref/gemini"
	"github.com/awahed/dtcref/lipgloss"
	"github.com/awahed/dtcref/mem"
	dtcslog "github.com/awahed/dtcref/slog"
	"github.com/awahed/dtcref/sqlite"
	"github.com/awahed/dtcref/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database, opened only when a command needs it.
	DB *sqlite.DB

	// Services for end-to-end testing.
	QueryService  dtcref.QueryService
	CorpusService dtcref.CorpusService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: yaml.DefaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := yaml.Load(m.ConfigPath)
	if err != nil {
		return err
	}

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:           ctx,
		Stdin:         stdin,
		Stdout:        stdout,
		Stderr:        stderr,
		Terminal:      lipgloss.NewFormatter(),
		DefaultFormat: cfg.DefaultFormat,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dtcref"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dtcref --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	corpusPath := cli.Corpus
	if corpusPath == "" {
		corpusPath = cfg.CorpusPath
	}

	if cmd == "import" {
		if err := m.openDB(cfg, stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Corpus = m.CorpusService
		return kongCtx.Run(deps)
	}

	records, err := m.loadRecords(ctx, cfg, corpusPath, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	store, err := mem.NewStore(records)
	if err != nil {
		return err
	}
	m.QueryService = mem.NewEngine(store)
	if cli.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))
		m.QueryService = dtcslog.NewLoggingQueryService(m.QueryService, logger)
	}
	deps.Queries = m.QueryService

	if cmd == "explain" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		model := cfg.GeminiModel
		if model == "" {
			model = gemini.DefaultModel
		}
		deps.Explainer = gemini.NewExplainer(client, model)
	}

	return kongCtx.Run(deps)
}

// loadRecords resolves the corpus source: an explicit corpus file wins,
// otherwise records come from the local database.
func (m *Main) loadRecords(ctx context.Context, cfg *yaml.Config, corpusPath string, stderr io.Writer) ([]*dtcref.CodeRecord, error) {
	if corpusPath != "" {
		return parseCorpusFile(corpusPath)
	}

	if err := m.openDB(cfg, stderr); err != nil {
		return nil, err
	}

	records, err := m.CorpusService.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		fmt.Fprintln(stderr, "Hint: Run 'dtcref import <corpus-file>' or pass --corpus to load codes from a file")
		return nil, fmt.Errorf("no diagnostic codes available in %q", cfg.DBPath)
	}
	return records, nil
}

func (m *Main) openDB(cfg *yaml.Config, stderr io.Writer) error {
	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set db_path in the config file to use a different database location")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	m.CorpusService = sqlite.NewCorpusService(m.DB)
	return nil
}

// parseCorpusFile loads records from a corpus file, choosing the parser by
// file extension.
func parseCorpusFile(path string) ([]*dtcref.CodeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %q: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return corpus.ParseCSV(f)
	}
	return corpus.Parse(f)
}

// ExitCode maps error taxonomy to process exit status: 2 for missing
// records, 3 for invalid queries, 1 for everything else.
func ExitCode(err error) int {
	var loadErr *dtcref.LoadError
	if errors.As(err, &loadErr) {
		return 1
	}
	switch dtcref.ErrorCode(err) {
	case dtcref.ENOTFOUND:
		return 2
	case dtcref.EINVALID:
		return 3
	}
	return 1
}
