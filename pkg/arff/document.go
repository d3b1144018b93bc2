package arff

import (
	"fmt"
	"strings"
)

// Kind identifies an attribute datatype.
type Kind int

// Supported datatypes. The date datatype is not supported.
const (
	KindReal Kind = iota + 1
	KindInteger
	KindNumeric
	KindString
	KindNominal
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindInteger:
		return "integer"
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	case KindNominal:
		return "nominal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Datatype is the declared type of an attribute. Values is only set for
// KindNominal and keeps declaration order, duplicates included.
type Datatype struct {
	Kind   Kind
	Values []string
}

// Real, Integer, Numeric and String are the non-nominal datatypes.
var (
	Real    = Datatype{Kind: KindReal}
	Integer = Datatype{Kind: KindInteger}
	Numeric = Datatype{Kind: KindNumeric}
	String  = Datatype{Kind: KindString}
)

// Nominal returns a nominal datatype over the given values.
func Nominal(values ...string) Datatype {
	return Datatype{Kind: KindNominal, Values: values}
}

// IsNumeric reports whether values of this type are numbers.
func (d Datatype) IsNumeric() bool {
	return d.Kind == KindReal || d.Kind == KindInteger || d.Kind == KindNumeric
}

// String renders the datatype the way it is declared in a header.
func (d Datatype) String() string {
	if d.Kind == KindNominal {
		return "{" + strings.Join(d.Values, ",") + "}"
	}
	return strings.ToUpper(d.Kind.String())
}

// Attribute is a named, typed column of the relation.
type Attribute struct {
	Name string
	Type Datatype
}

// Row is one data line split into fields, positionally aligned to
// Document.Attributes.
type Row []string

// Document is the result of parsing one ARFF input.
//
// Every row is expected to have exactly len(Attributes) fields. Parse
// enforces this unless Options.AllowRaggedRows is set, in which case short
// or long rows are kept as they appear in the input.
type Document struct {
	// SourcePath is informational; it is never re-read.
	SourcePath string
	Relation   string
	Attributes []Attribute
	Rows       []Row
}

// AttributeIndex returns the position of the first attribute whose name
// matches name case-insensitively, or -1.
func (d *Document) AttributeIndex(name string) int {
	for i, attr := range d.Attributes {
		if strings.EqualFold(attr.Name, name) {
			return i
		}
	}
	return -1
}

// Column returns the values of the named attribute across all rows.
func (d *Document) Column(name string) ([]string, error) {
	idx, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(d.Rows))
	for i, row := range d.Rows {
		if idx >= len(row) {
			return nil, &RowError{Row: i + 1, Err: fmt.Errorf("%w: no field %d for attribute %q", ErrRowSchemaMismatch, idx+1, d.Attributes[idx].Name)}
		}
		values = append(values, row[idx])
	}
	return values, nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		SourcePath: d.SourcePath,
		Relation:   d.Relation,
		Attributes: make([]Attribute, len(d.Attributes)),
		Rows:       make([]Row, len(d.Rows)),
	}
	for i, attr := range d.Attributes {
		out.Attributes[i] = Attribute{Name: attr.Name, Type: Datatype{Kind: attr.Type.Kind}}
		if attr.Type.Values != nil {
			out.Attributes[i].Type.Values = append([]string(nil), attr.Type.Values...)
		}
	}
	for i, row := range d.Rows {
		out.Rows[i] = append(Row(nil), row...)
	}
	return out
}

func (d *Document) lookup(name string) (int, error) {
	idx := d.AttributeIndex(name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", errAttributeNotFound, name)
	}
	return idx, nil
}
