package arff

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAttribute is returned when an @attribute line has no
	// recognizable name/datatype boundary.
	ErrMalformedAttribute = errors.New("malformed attribute")

	// ErrUnsupportedDatatype is returned when a datatype is neither a known
	// keyword nor a nominal {...} list. The date datatype is reported this way.
	ErrUnsupportedDatatype = errors.New("unsupported datatype")

	// ErrRowSchemaMismatch is returned when a data row does not line up with
	// the declared attributes.
	ErrRowSchemaMismatch = errors.New("row does not match schema")

	errAttributeNotFound = errors.New("attribute not found")
)

// ParseError reports a failure at a specific input line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// RowError reports a failure tied to a data row (1-indexed).
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
