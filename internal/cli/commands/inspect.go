package commands

import (
	"github.com/leapstack-labs/arffkit/internal/cli/output"
	"github.com/leapstack-labs/arffkit/pkg/arff"
	"github.com/leapstack-labs/arffkit/pkg/format"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Show the schema and first rows of ARFF files",
		Long: `Parse one or more ARFF files and show each relation's attributes
and a preview of its data rows. Files are parsed concurrently.

Output adapts to environment:
  - Terminal: Styled tables
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Inspect a file
  arffkit inspect iris.arff

  # Show every row of two files as JSON
  arffkit inspect iris.arff weather.arff --rows 0 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			if !cmd.Flags().Changed("rows") {
				rows = c.Cfg.PreviewRows
			}
			return runInspect(cmd, c, args, rows)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "Number of data rows to show, 0 for all (default: preview_rows)")

	return cmd
}

func runInspect(cmd *cobra.Command, c *CommandContext, paths []string, rows int) error {
	docs := make([]*arff.Document, len(paths))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(c.Cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			doc, err := c.ParseFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		out := make([]format.DocumentJSON, len(docs))
		for i, doc := range docs {
			out[i] = format.NewDocumentJSON(doc, rows)
		}
		return r.JSON(out)
	}

	for i, doc := range docs {
		if i > 0 {
			r.Println()
		}
		renderDocument(c, doc, rows)
	}
	return nil
}
