package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/arffkit/pkg/arff"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects how tables are drawn.
type Style int

// Table styles.
const (
	StyleBox Style = iota
	StyleMarkdown
)

var titleCaser = cases.Title(language.English)

// TypeLabel returns a display label for a datatype, e.g. "Numeric" or
// "Nominal (3)".
func TypeLabel(dt arff.Datatype) string {
	label := titleCaser.String(dt.Kind.String())
	if dt.Kind == arff.KindNominal {
		return fmt.Sprintf("%s (%d)", label, len(dt.Values))
	}
	return label
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}

func render(t table.Writer, style Style) {
	if style == StyleMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// Schema writes one line per attribute: position, name, type and, for
// nominal attributes, the declared values.
func Schema(w io.Writer, doc *arff.Document, style Style) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Attribute", "Type", "Values"})
	for i, attr := range doc.Attributes {
		t.AppendRow(table.Row{i + 1, attr.Name, TypeLabel(attr.Type), strings.Join(attr.Type.Values, ", ")})
	}
	render(t, style)
}

// Rows writes up to limit data rows under the attribute names. A limit of
// zero or less writes every row.
func Rows(w io.Writer, doc *arff.Document, limit int, style Style) {
	if len(doc.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTable(w)
	header := make(table.Row, len(doc.Attributes))
	for i, attr := range doc.Attributes {
		header[i] = attr.Name
	}
	t.AppendHeader(header)

	n := len(doc.Rows)
	if limit > 0 && limit < n {
		n = limit
	}
	for _, row := range doc.Rows[:n] {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = v
		}
		t.AppendRow(r)
	}
	render(t, style)

	if n < len(doc.Rows) {
		_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", n, len(doc.Rows))
	} else {
		_, _ = fmt.Fprintf(w, "(%d rows)\n", n)
	}
}

// Summary writes the output of arff.Describe.
func Summary(w io.Writer, summaries []arff.ColumnSummary, style Style) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Attribute", "Type", "Count", "Missing", "Distinct", "Min", "Max", "Mean"})
	for _, s := range summaries {
		minV, maxV, mean := "", "", ""
		if s.HasRange {
			minV, maxV, mean = formatFloat(s.Min), formatFloat(s.Max), formatFloat(s.Mean)
		}
		t.AppendRow(table.Row{s.Name, TypeLabel(s.Type), s.Count, s.Missing, s.Distinct, minV, maxV, mean})
	}
	render(t, style)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
