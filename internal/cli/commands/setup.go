package commands

import (
	"log/slog"
	"strconv"

	"github.com/leapstack-labs/arffkit/internal/cli/config"
	"github.com/leapstack-labs/arffkit/internal/cli/output"
	"github.com/leapstack-labs/arffkit/internal/source"
	"github.com/leapstack-labs/arffkit/pkg/arff"
	"github.com/leapstack-labs/arffkit/pkg/format"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config, logger and renderer for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// ParseFile parses path with the configured encoding and parser options.
func (c *CommandContext) ParseFile(path string) (*arff.Document, error) {
	c.Logger.Debug("parsing file", "path", path, "encoding", c.Cfg.Encoding)
	return source.ParseFile(path, c.Cfg.Encoding, c.Cfg.ParseOptions(c.Logger))
}

// TableStyle returns the table style matching the effective output mode.
func (c *CommandContext) TableStyle() format.Style {
	if c.Renderer.EffectiveMode() == output.ModeMarkdown {
		return format.StyleMarkdown
	}
	return format.StyleBox
}

// renderDocument writes a document overview: its schema followed by up to
// limit rows (all rows when limit is zero).
func renderDocument(c *CommandContext, doc *arff.Document, limit int) {
	r := c.Renderer
	title := doc.Relation
	if title == "" {
		title = "(unnamed relation)"
	}

	r.Header(1, title)
	if doc.SourcePath != "" {
		r.KeyValue("File", doc.SourcePath)
	}
	r.KeyValue("Attributes", strconv.Itoa(len(doc.Attributes)))
	r.KeyValue("Rows", strconv.Itoa(len(doc.Rows)))
	r.Println()

	r.Header(2, "Schema")
	format.Schema(r.Writer(), doc, c.TableStyle())
	r.Println()

	r.Header(2, "Data")
	format.Rows(r.Writer(), doc, limit, c.TableStyle())
}
