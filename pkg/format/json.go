package format

import (
	"encoding/json"
	"io"

	"github.com/leapstack-labs/arffkit/pkg/arff"
)

// DocumentJSON is the JSON form of an arff.Document.
type DocumentJSON struct {
	Source     string          `json:"source,omitempty"`
	Relation   string          `json:"relation"`
	Attributes []AttributeJSON `json:"attributes"`
	RowCount   int             `json:"row_count"`
	Rows       [][]string      `json:"rows"`
}

// AttributeJSON is the JSON form of an arff.Attribute.
type AttributeJSON struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values,omitempty"`
}

// NewDocumentJSON converts doc, keeping at most limit rows (all when limit
// is zero or less). RowCount always reports the full row count.
func NewDocumentJSON(doc *arff.Document, limit int) DocumentJSON {
	out := DocumentJSON{
		Source:     doc.SourcePath,
		Relation:   doc.Relation,
		Attributes: make([]AttributeJSON, len(doc.Attributes)),
		RowCount:   len(doc.Rows),
		Rows:       [][]string{},
	}
	for i, attr := range doc.Attributes {
		out.Attributes[i] = AttributeJSON{
			Name:   attr.Name,
			Type:   attr.Type.Kind.String(),
			Values: attr.Type.Values,
		}
	}

	n := len(doc.Rows)
	if limit > 0 && limit < n {
		n = limit
	}
	for _, row := range doc.Rows[:n] {
		out.Rows = append(out.Rows, []string(row))
	}
	return out
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
