package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/arffkit/internal/source"
	"github.com/leapstack-labs/arffkit/internal/store"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.CommentMarker == "" {
		return fmt.Errorf("comment_marker must not be empty")
	}
	if _, err := source.Lookup(c.Encoding); err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}
	if !slices.Contains(OutputFormats, strings.ToLower(c.OutputFormat)) {
		return fmt.Errorf("invalid output format %q (supported: %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if !slices.Contains(store.Drivers(), strings.ToLower(c.Database.Driver)) {
		return fmt.Errorf("unknown database driver %q (supported: %s)\nHint: set database.driver in arffkit.yaml",
			c.Database.Driver, strings.Join(store.Drivers(), ", "))
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative, got %d", c.PreviewRows)
	}
	return nil
}
