// Package schema holds the declarative dataset descriptor the validation
// stage checks incoming data against. The descriptor is loaded once and is
// immutable afterwards.
package schema

import (
	"fmt"

	"netsentry/internal/errors"
	"netsentry/internal/yamlio"
)

// Column is one expected dataset column. Dtype is advisory; structural
// validation only uses names and counts.
type Column struct {
	Name  string
	Dtype string
}

// Schema describes the expected shape of ingested datasets: the ordered
// column list and which of those columns must hold numerical data.
type Schema struct {
	Columns          []Column
	NumericalColumns []string
}

// schemaFile is the on-disk YAML shape: exactly two recognized keys, with
// columns given as an ordered sequence of single-key name->dtype mappings.
type schemaFile struct {
	Columns          []map[string]string `yaml:"columns"`
	NumericalColumns []string            `yaml:"numerical_columns"`
}

// Load reads and validates a schema descriptor from a YAML file. Any shape
// mismatch fails here with a SCHEMA_LOAD error rather than deep inside
// validation logic.
func Load(path string) (*Schema, error) {
	var raw schemaFile
	if err := yamlio.ReadFile(path, &raw); err != nil {
		return nil, errors.SchemaLoad(fmt.Sprintf("failed to load schema from %s", path), err)
	}

	s, err := fromFile(raw)
	if err != nil {
		return nil, errors.SchemaLoad(fmt.Sprintf("invalid schema in %s", path), err)
	}
	return s, nil
}

func fromFile(raw schemaFile) (*Schema, error) {
	if len(raw.Columns) == 0 {
		return nil, fmt.Errorf("schema declares no columns")
	}

	s := &Schema{
		Columns:          make([]Column, 0, len(raw.Columns)),
		NumericalColumns: raw.NumericalColumns,
	}

	seen := make(map[string]bool, len(raw.Columns))
	for i, entry := range raw.Columns {
		if len(entry) != 1 {
			return nil, fmt.Errorf("columns entry %d must be a single-key mapping, got %d keys", i, len(entry))
		}
		for name, dtype := range entry {
			if name == "" {
				return nil, fmt.Errorf("columns entry %d has an empty name", i)
			}
			if seen[name] {
				return nil, fmt.Errorf("duplicate column %q", name)
			}
			seen[name] = true
			s.Columns = append(s.Columns, Column{Name: name, Dtype: dtype})
		}
	}

	// Invariant: numerical_columns is a subset of columns.
	for _, name := range s.NumericalColumns {
		if !seen[name] {
			return nil, fmt.Errorf("numerical column %q is not declared in columns", name)
		}
	}

	return s, nil
}

// ColumnCount returns the number of declared columns.
func (s *Schema) ColumnCount() int {
	return len(s.Columns)
}

// ColumnNames returns the declared column names in order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
