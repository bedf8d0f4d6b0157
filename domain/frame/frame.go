// Package frame holds the in-memory tabular dataset the pipeline stages pass
// around. Cells are kept as raw strings so datasets round-trip to disk
// unmodified; numeric views are parsed on demand.
package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingMarker is the source value the document store uses for absent cells.
const MissingMarker = "na"

// Frame is an ordered set of named columns over rows of string cells.
// Invariant: every record has exactly len(Columns) cells.
type Frame struct {
	Columns []string
	Records [][]string
}

// New builds a Frame and enforces the rectangular invariant.
func New(columns []string, records [][]string) (*Frame, error) {
	for i, rec := range records {
		if len(rec) != len(columns) {
			return nil, fmt.Errorf("record %d has %d cells, want %d", i, len(rec), len(columns))
		}
	}
	return &Frame{Columns: columns, Records: records}, nil
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.Columns)
}

// Height returns the number of records.
func (f *Frame) Height() int {
	return len(f.Records)
}

// HasColumn reports whether the frame contains a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	return f.columnIndex(name) >= 0
}

func (f *Frame) columnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the raw string cells of a column.
func (f *Frame) Column(name string) ([]string, error) {
	idx := f.columnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	values := make([]string, len(f.Records))
	for i, rec := range f.Records {
		values[i] = rec[idx]
	}
	return values, nil
}

// NumericColumn parses a column as float64 samples. Missing cells (empty or
// the document-store missing marker) are skipped; any other unparsable cell
// is an error.
func (f *Frame) NumericColumn(name string) ([]float64, error) {
	raw, err := f.Column(name)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, 0, len(raw))
	for i, cell := range raw {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" || strings.EqualFold(trimmed, MissingMarker) {
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: cannot parse %q as number", name, i, cell)
		}
		samples = append(samples, v)
	}
	return samples, nil
}
