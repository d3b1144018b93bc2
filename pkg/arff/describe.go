package arff

import (
	"math"
	"strconv"
)

// MissingValue is the ARFF marker for an unknown field value.
const MissingValue = "?"

// ColumnSummary describes the values found in one attribute's column.
type ColumnSummary struct {
	Name     string
	Type     Datatype
	Count    int // fields present, missing included
	Missing  int // "?" or empty fields
	Distinct int // distinct non-missing values
	Invalid  int // non-numeric values in a numeric column
	Min      float64
	Max      float64
	Mean     float64
	HasRange bool // Min, Max and Mean are set
}

// Describe summarizes every attribute of doc. Rows shorter than the schema
// simply contribute nothing to the attributes they lack.
func Describe(doc *Document) []ColumnSummary {
	out := make([]ColumnSummary, len(doc.Attributes))
	for i, attr := range doc.Attributes {
		out[i] = describeColumn(doc, i, attr)
	}
	return out
}

func describeColumn(doc *Document, idx int, attr Attribute) ColumnSummary {
	s := ColumnSummary{Name: attr.Name, Type: attr.Type}
	seen := make(map[string]struct{})
	sum := 0.0
	numbers := 0

	for _, row := range doc.Rows {
		if idx >= len(row) {
			continue
		}
		s.Count++
		v := row[idx]
		if v == "" || v == MissingValue {
			s.Missing++
			continue
		}
		seen[v] = struct{}{}

		if !attr.Type.IsNumeric() {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.Invalid++
			continue
		}
		if numbers == 0 {
			s.Min, s.Max = f, f
		} else {
			s.Min = math.Min(s.Min, f)
			s.Max = math.Max(s.Max, f)
		}
		sum += f
		numbers++
	}

	s.Distinct = len(seen)
	if numbers > 0 {
		s.Mean = sum / float64(numbers)
		s.HasRange = true
	}
	return s
}
