package commands

import (
	"fmt"

	"github.com/leapstack-labs/arffkit/internal/cli/output"
	"github.com/leapstack-labs/arffkit/pkg/arff"
	"github.com/leapstack-labs/arffkit/pkg/format"
	"github.com/spf13/cobra"
)

// dropOutput is the JSON form of the drop command.
type dropOutput struct {
	Removed  []string            `json:"removed"`
	Missing  []string            `json:"missing"`
	Document format.DocumentJSON `json:"document"`
}

// NewDropCommand creates the drop command.
func NewDropCommand() *cobra.Command {
	var (
		names []string
		rows  int
	)

	cmd := &cobra.Command{
		Use:   "drop <file>",
		Short: "Remove attributes from a relation",
		Long: `Parse an ARFF file, remove the named attributes from its schema and
from every data row, and show the result. Names match case-insensitively;
when several attributes share a name only the first is removed. Names that
match nothing are reported and skipped.

The input file is not modified.`,
		Example: `  arffkit drop iris.arff --attribute class
  arffkit drop iris.arff -a petallength -a petalwidth -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			if !cmd.Flags().Changed("rows") {
				rows = c.Cfg.PreviewRows
			}
			doc, err := c.ParseFile(args[0])
			if err != nil {
				return err
			}
			return runDrop(c, doc, names, rows)
		},
	}

	cmd.Flags().StringSliceVarP(&names, "attribute", "a", nil, "Attribute to remove (repeatable)")
	cmd.Flags().IntVar(&rows, "rows", 0, "Number of data rows to show, 0 for all (default: preview_rows)")
	_ = cmd.MarkFlagRequired("attribute")

	return cmd
}

func runDrop(c *CommandContext, doc *arff.Document, names []string, rows int) error {
	removed, missing, err := dropAttributes(doc, names)
	if err != nil {
		return err
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(dropOutput{
			Removed:  removed,
			Missing:  missing,
			Document: format.NewDocumentJSON(doc, rows),
		})
	}

	for _, name := range removed {
		r.Success("Removed attribute " + name)
	}
	for _, name := range missing {
		r.Warning(fmt.Sprintf("Attribute %q not found", name))
	}
	r.Println()
	renderDocument(c, doc, rows)
	return nil
}

// dropAttributes removes each named attribute in order and sorts the names
// into those removed and those that matched nothing.
func dropAttributes(doc *arff.Document, names []string) (removed, missing []string, err error) {
	removed, missing = []string{}, []string{}
	for _, name := range names {
		ok, err := doc.RemoveAttribute(name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to remove attribute %q: %w", name, err)
		}
		if ok {
			removed = append(removed, name)
		} else {
			missing = append(missing, name)
		}
	}
	return removed, missing, nil
}
