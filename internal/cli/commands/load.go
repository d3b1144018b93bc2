package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/arffkit/internal/cli/output"
	"github.com/leapstack-labs/arffkit/internal/store"
	"github.com/spf13/cobra"
)

// loadOutput is the JSON form of the load command.
type loadOutput struct {
	ID       string   `json:"id"`
	Driver   string   `json:"driver"`
	Relation string   `json:"relation"`
	Table    string   `json:"table"`
	Columns  []string `json:"columns"`
	Rows     int      `json:"rows"`
	Removed  []string `json:"removed,omitempty"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	var (
		table string
		drop  []string
	)

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load an ARFF relation into a database table",
		Long: `Parse an ARFF file and load it into a table of the configured
database, replacing any existing table of the same name. Numeric attributes
become numeric columns; configured null values (default "?") become NULL.

Supported drivers: ` + strings.Join(store.Drivers(), ", ") + `. SQLite and
PostgreSQL databases also record every load in a catalog.`,
		Example: `  # Load into ./arffkit.db (sqlite)
  arffkit load iris.arff

  # Load into DuckDB without the class attribute
  arffkit load iris.arff --driver duckdb --dsn iris.duckdb --drop class

  # Load into PostgreSQL under a custom table name
  arffkit load iris.arff --driver postgres --dsn 'postgres://localhost/arff' --table flowers`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args[0], table, drop)
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "Target table (default: derived from the relation name)")
	cmd.Flags().StringSliceVar(&drop, "drop", nil, "Attribute to remove before loading (repeatable)")
	cmd.Flags().String("driver", "", "Database driver ("+strings.Join(store.Drivers(), "|")+")")
	cmd.Flags().String("dsn", "", "Database connection string")

	_ = cmd.RegisterFlagCompletionFunc("driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return store.Drivers(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLoad(cmd *cobra.Command, path, table string, drop []string) error {
	c := NewCommandContext(cmd)
	ctx := cmd.Context()

	doc, err := c.ParseFile(path)
	if err != nil {
		return err
	}
	removed, missing, err := dropAttributes(doc, drop)
	if err != nil {
		return err
	}

	s, err := store.Open(ctx, c.Cfg.StoreConfig(c.Logger))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.Migrate(ctx); err != nil {
		return err
	}

	res, err := s.Load(ctx, doc, table)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	r := c.Renderer
	for _, name := range missing {
		r.Warning(fmt.Sprintf("Attribute %q not found", name))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(loadOutput{
			ID:       res.ID,
			Driver:   s.Driver(),
			Relation: doc.Relation,
			Table:    res.Table,
			Columns:  res.Columns,
			Rows:     res.Rows,
			Removed:  removed,
		})
	}

	r.Success(fmt.Sprintf("Loaded %d rows into %s", res.Rows, res.Table))
	r.KeyValue("Driver", s.Driver())
	r.KeyValue("Columns", strings.Join(res.Columns, ", "))
	if len(removed) > 0 {
		r.KeyValue("Removed", strings.Join(removed, ", "))
	}
	if s.HasCatalog() {
		r.Muted("Load id " + res.ID)
	}
	return nil
}
