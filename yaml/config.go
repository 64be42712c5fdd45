// Package yaml loads dtcref configuration files.
package yaml

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/awahed/dtcref"
)

// Config holds user configuration. Flags override config values;
// config values override defaults.
type Config struct {
	// Path to the corpus text file loaded at startup.
	CorpusPath string `yaml:"corpus_path"`

	// Path to the SQLite database holding an imported corpus.
	DBPath string `yaml:"db_path"`

	// Gemini model used by the explain command.
	GeminiModel string `yaml:"gemini_model"`

	// Default output format: text, html, or json.
	DefaultFormat string `yaml:"default_format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DBPath:        DefaultDBPath(),
		DefaultFormat: "text",
	}
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".dtcref", "config.yaml")
}

// DefaultDBPath returns the conventional database location.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dtcref.db"
	}
	return filepath.Join(home, ".dtcref", "dtcref.db")
}

// Load reads the config file at path. A missing file yields the
// defaults; a file that fails to parse is an EINVALID error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, dtcref.Errorf(dtcref.EINVALID, "invalid config file %s: %s", path, err)
	}

	switch cfg.DefaultFormat {
	case "", "text", "html", "json":
	default:
		return nil, dtcref.Errorf(dtcref.EINVALID, "invalid config file %s: unknown format %q", path, cfg.DefaultFormat)
	}

	return cfg, nil
}
