package validation

import (
	"netsentry/domain/frame"
	"netsentry/domain/schema"
)

// StructuralValidator checks dataset shape against the schema descriptor,
// independent of data content. Both checks are pure.
type StructuralValidator struct {
	schema *schema.Schema
}

// NewStructuralValidator creates a validator bound to an immutable schema.
func NewStructuralValidator(s *schema.Schema) *StructuralValidator {
	return &StructuralValidator{schema: s}
}

// ColumnCountMatches reports whether the frame has exactly as many columns as
// the schema declares. This is a count match only, not a name-level diff.
func (v *StructuralValidator) ColumnCountMatches(f *frame.Frame) bool {
	return f.Width() == v.schema.ColumnCount()
}

// NumericalColumnsPresent reports whether every schema numerical column
// appears in the frame. On failure the missing names are returned, in schema
// order, for diagnostics.
func (v *StructuralValidator) NumericalColumnsPresent(f *frame.Frame) (bool, []string) {
	var missing []string
	for _, name := range v.schema.NumericalColumns {
		if !f.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}
