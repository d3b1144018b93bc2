package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/arffkit/internal/cli/output"
	"github.com/leapstack-labs/arffkit/internal/store"
	"github.com/spf13/cobra"
)

// historyEntry is the JSON form of one catalog entry.
type historyEntry struct {
	ID         string `json:"id"`
	Relation   string `json:"relation"`
	SourcePath string `json:"source"`
	Table      string `json:"table"`
	Attributes int    `json:"attributes"`
	Rows       int    `json:"rows"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List relations loaded into the database",
		Long: `List the catalog of loads recorded by 'arffkit load', newest first.
The catalog is kept for sqlite and postgres databases.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd)
		},
	}

	cmd.Flags().String("driver", "", "Database driver")
	cmd.Flags().String("dsn", "", "Database connection string")

	return cmd
}

func runHistory(cmd *cobra.Command) error {
	c := NewCommandContext(cmd)
	ctx := cmd.Context()

	s, err := store.Open(ctx, c.Cfg.StoreConfig(c.Logger))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !s.HasCatalog() {
		return fmt.Errorf("%s databases have no load catalog", s.Driver())
	}
	if err := s.Migrate(ctx); err != nil {
		return err
	}

	loads, err := s.Loads(ctx)
	if err != nil {
		return err
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		entries := make([]historyEntry, len(loads))
		for i, l := range loads {
			entries[i] = historyEntry(l)
		}
		return r.JSON(entries)
	}

	if len(loads) == 0 {
		r.Muted("No loads recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Relation", "Source", "Attributes", "Rows", "ID"})
	for _, l := range loads {
		t.AppendRow(table.Row{l.Table, l.Relation, l.SourcePath, l.Attributes, l.Rows, l.ID})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}
