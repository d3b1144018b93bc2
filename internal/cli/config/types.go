// Package config provides configuration management for the arffkit CLI.
package config

import (
	"log/slog"

	"github.com/leapstack-labs/arffkit/internal/store"
	"github.com/leapstack-labs/arffkit/pkg/arff"
)

// Config holds all CLI configuration options.
type Config struct {
	CommentMarker   string         `koanf:"comment_marker" yaml:"comment_marker"`
	AllowRaggedRows bool           `koanf:"allow_ragged_rows" yaml:"allow_ragged_rows"`
	Encoding        string         `koanf:"encoding" yaml:"encoding"`
	OutputFormat    string         `koanf:"output" yaml:"output"`
	Verbose         bool           `koanf:"verbose" yaml:"verbose"`
	Workers         int            `koanf:"workers" yaml:"workers"`
	PreviewRows     int            `koanf:"preview_rows" yaml:"preview_rows"`
	NullValues      []string       `koanf:"null_values" yaml:"null_values"`
	Database        DatabaseConfig `koanf:"database" yaml:"database"`
}

// DatabaseConfig selects the database `arffkit load` writes to.
type DatabaseConfig struct {
	Driver string `koanf:"driver" yaml:"driver"`
	DSN    string `koanf:"dsn" yaml:"dsn"`
}

// Default configuration values
const (
	DefaultCommentMarker = arff.DefaultCommentMarker
	DefaultEncoding      = "utf-8"
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultWorkers       = 4
	DefaultPreviewRows   = 10
	DefaultDriver        = store.DriverSQLite
	DefaultDSN           = "arffkit.db"
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		CommentMarker: DefaultCommentMarker,
		Encoding:      DefaultEncoding,
		OutputFormat:  DefaultOutput,
		Workers:       DefaultWorkers,
		PreviewRows:   DefaultPreviewRows,
		NullValues:    []string{"?"},
		Database:      DatabaseConfig{Driver: DefaultDriver, DSN: DefaultDSN},
	}
}

// ParseOptions returns the parser options for this configuration.
func (c *Config) ParseOptions(logger *slog.Logger) arff.Options {
	return arff.Options{
		CommentMarker:   c.CommentMarker,
		AllowRaggedRows: c.AllowRaggedRows,
		Logger:          logger,
	}
}

// StoreConfig returns the store configuration for this configuration.
func (c *Config) StoreConfig(logger *slog.Logger) store.Config {
	return store.Config{
		Driver:     c.Database.Driver,
		DSN:        c.Database.DSN,
		NullValues: c.NullValues,
		Logger:     logger,
	}
}
