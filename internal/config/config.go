// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Loaders accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"fmt"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Source is the pdftotext extract of the ranking.
	Source string `koanf:"source"`

	// Snapshot is the canonical CSV produced from Source.
	Snapshot string `koanf:"snapshot"`

	// SeparatorWidth is the number of spaces that end the name column.
	SeparatorWidth int `koanf:"separator_width"`

	// TopPlayers is the default length of the top ranking view.
	TopPlayers int `koanf:"top_players"`

	// TopCountries is the default length of the country ranking.
	TopCountries int `koanf:"top_countries"`

	// LoadWorkers bounds concurrent loads of prior snapshots.
	LoadWorkers int `koanf:"load_workers"`

	// MetricsFile, when set, receives a Prometheus textfile on exit.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Source:         "rank_full-UTF-8.txt",
		Snapshot:       "rank.csv",
		SeparatorWidth: 2,
		TopPlayers:     50,
		TopCountries:   10,
		LoadWorkers:    4,
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Source == "":
		return fmt.Errorf("%w: source must not be empty", ErrInvalidConfig)
	case c.Snapshot == "":
		return fmt.Errorf("%w: snapshot must not be empty", ErrInvalidConfig)
	case c.SeparatorWidth < 1:
		return fmt.Errorf("%w: separator_width must be at least 1, got %d", ErrInvalidConfig, c.SeparatorWidth)
	case c.TopPlayers < 1:
		return fmt.Errorf("%w: top_players must be at least 1, got %d", ErrInvalidConfig, c.TopPlayers)
	case c.TopCountries < 1:
		return fmt.Errorf("%w: top_countries must be at least 1, got %d", ErrInvalidConfig, c.TopCountries)
	case c.LoadWorkers < 1:
		return fmt.Errorf("%w: load_workers must be at least 1, got %d", ErrInvalidConfig, c.LoadWorkers)
	}
	return nil
}
