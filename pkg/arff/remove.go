package arff

import (
	"errors"
	"fmt"
	"slices"
)

// RemoveAttribute removes the first attribute whose name matches name
// case-insensitively, together with the field at the same position in
// every row. It reports whether an attribute was removed; an unknown name
// is a no-op.
//
// Every row is checked before anything is changed, so a row that is too
// short for the removal yields ErrRowSchemaMismatch and leaves the document
// untouched.
func (d *Document) RemoveAttribute(name string) (bool, error) {
	idx, err := d.lookup(name)
	if errors.Is(err, errAttributeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	for i, row := range d.Rows {
		if idx >= len(row) {
			return false, &RowError{
				Row: i + 1,
				Err: fmt.Errorf("%w: cannot remove field %d from a row of %d fields", ErrRowSchemaMismatch, idx+1, len(row)),
			}
		}
	}

	d.Attributes = slices.Delete(d.Attributes, idx, idx+1)
	for i := range d.Rows {
		d.Rows[i] = slices.Delete(d.Rows[i], idx, idx+1)
	}
	return true, nil
}
