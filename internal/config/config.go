// Package config declares the static season-to-source mapping and process
// settings. Values layer in order of precedence: built-in defaults, an
// optional YAML file, then DUGOUT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// SeasonSource maps one season label to its CSV export. The order of entries
// is the season chronology; every downstream ordering follows it.
type SeasonSource struct {
	Label string `koanf:"label"`
	File  string `koanf:"file"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DBPath locates the SQLite stats database.
	DBPath string `koanf:"db_path"`

	// Seasons is the ordered season-to-export mapping.
	Seasons []SeasonSource `koanf:"seasons"`
}

// LatestSeason returns the last declared season label, or "" with no seasons.
func (c *Config) LatestSeason() string {
	if len(c.Seasons) == 0 {
		return ""
	}
	return c.Seasons[len(c.Seasons)-1].Label
}

// Default returns the built-in configuration: the three Spartans season
// exports in chronological order, read from the working directory.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		DBPath:   filepath.Join(userHome(), ".dugout", "stats.db"),
		Seasons: []SeasonSource{
			{Label: "NM Spartans 11U Fall 2024", File: "NM Spartans 11U Fall 2024 Stats.csv"},
			{Label: "NM Spartans 11U Spring 2025", File: "NM Spartans 11U Spring 2025 Stats.csv"},
			{Label: "NM Spartans 12U Fall 2025", File: "NM Spartans 12U Fall 2025 Stats.csv"},
		},
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and env
// vars. An empty path falls back to the DUGOUT_CONFIG environment variable;
// when neither is set only defaults and env apply. All layers merge inside
// koanf so that a file-declared seasons list replaces the default list
// wholesale instead of merging with it entry by entry.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv("DUGOUT_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Environment variables: DUGOUT_LOG_LEVEL, DUGOUT_DB_PATH, ...
	envProvider := env.Provider("DUGOUT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "dugout_")
		if s == "config" {
			return "" // DUGOUT_CONFIG is the file pointer, not a key
		}
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Seasons) == 0 {
		return errors.New("at least one season must be configured")
	}
	seen := make(map[string]bool, len(cfg.Seasons))
	for _, s := range cfg.Seasons {
		if s.Label == "" || s.File == "" {
			return errors.New("every season needs a label and a file")
		}
		if seen[s.Label] {
			return fmt.Errorf("duplicate season label %q", s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
