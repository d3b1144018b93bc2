package commands

import (
	"strconv"

	"github.com/leapstack-labs/arffkit/internal/cli/output"
	"github.com/leapstack-labs/arffkit/pkg/arff"
	"github.com/leapstack-labs/arffkit/pkg/format"
	"github.com/spf13/cobra"
)

// describeOutput is the JSON form of the describe command.
type describeOutput struct {
	Source     string              `json:"source"`
	Relation   string              `json:"relation"`
	RowCount   int                 `json:"row_count"`
	Attributes []columnSummaryJSON `json:"attributes"`
}

type columnSummaryJSON struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Count    int      `json:"count"`
	Missing  int      `json:"missing"`
	Distinct int      `json:"distinct"`
	Invalid  int      `json:"invalid,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Mean     *float64 `json:"mean,omitempty"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Summarize every attribute of an ARFF file",
		Long: `Show per-attribute statistics: value count, missing values,
distinct values and, for numeric attributes, minimum, maximum and mean.`,
		Example: `  arffkit describe iris.arff
  arffkit describe iris.arff -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			doc, err := c.ParseFile(args[0])
			if err != nil {
				return err
			}
			return renderDescribe(c, doc)
		},
	}

	return cmd
}

func renderDescribe(c *CommandContext, doc *arff.Document) error {
	summaries := arff.Describe(doc)
	r := c.Renderer

	if r.EffectiveMode() == output.ModeJSON {
		out := describeOutput{
			Source:     doc.SourcePath,
			Relation:   doc.Relation,
			RowCount:   len(doc.Rows),
			Attributes: make([]columnSummaryJSON, len(summaries)),
		}
		for i, s := range summaries {
			js := columnSummaryJSON{
				Name:     s.Name,
				Type:     s.Type.Kind.String(),
				Count:    s.Count,
				Missing:  s.Missing,
				Distinct: s.Distinct,
				Invalid:  s.Invalid,
			}
			if s.HasRange {
				js.Min, js.Max, js.Mean = &s.Min, &s.Max, &s.Mean
			}
			out.Attributes[i] = js
		}
		return r.JSON(out)
	}

	r.Header(1, doc.Relation)
	r.KeyValue("Rows", strconv.Itoa(len(doc.Rows)))
	r.Println()
	format.Summary(r.Writer(), summaries, c.TableStyle())
	return nil
}
