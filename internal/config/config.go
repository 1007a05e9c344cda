// Package config loads process configuration by layering defaults, an
// optional YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ridgely/clefdrill/internal/db"
)

// Config contains process configuration.
type Config struct {
	// DBPath locates the SQLite database holding the mistake ledger and
	// session history.
	DBPath string `koanf:"db_path"`

	// AdvanceDelayMS is the pause between answering and the next question.
	AdvanceDelayMS int `koanf:"advance_delay_ms"`

	// DefaultMode selects the startup practice mode: "uniform" or "weighted".
	DefaultMode string `koanf:"default_mode"`

	// DefaultSpan selects the startup octave range: 0, 1 or 2.
	DefaultSpan int `koanf:"default_span"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives log output; empty discards it. Logging to the
	// terminal would corrupt the TUI.
	LogFile string `koanf:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		DBPath:         db.DefaultDBPath(),
		AdvanceDelayMS: 900,
		DefaultMode:    "uniform",
		DefaultSpan:    2,
		LogLevel:       "info",
	}
}

// Load builds a Config by layering, low to high precedence:
//  1. defaults
//  2. YAML file named by CLEFDRILL_CONFIG, if set
//  3. environment variables with the CLEFDRILL_ prefix
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("CLEFDRILL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// CLEFDRILL_DB_PATH -> db_path etc.; underscores match the koanf tags.
	envProvider := env.Provider("CLEFDRILL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "clefdrill_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		return nil, errors.New("db_path must not be empty")
	}
	if cfg.AdvanceDelayMS < 0 {
		return nil, errors.New("advance_delay_ms must not be negative")
	}
	if cfg.DefaultSpan < 0 || cfg.DefaultSpan > 2 {
		return nil, errors.New("default_span must be 0, 1 or 2")
	}
	switch cfg.DefaultMode {
	case "uniform", "weighted":
	default:
		return nil, errors.New(`default_mode must be "uniform" or "weighted"`)
	}
	return &cfg, nil
}
