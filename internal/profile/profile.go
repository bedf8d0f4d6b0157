// Package profile computes per-column summary statistics used for debug
// logging of loaded datasets.
package profile

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"netsentry/domain/frame"
)

// ColumnSummary holds the basic shape of one numeric column.
type ColumnSummary struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

func (s ColumnSummary) String() string {
	return fmt.Sprintf("%s: n=%d mean=%.4f std=%.4f min=%.4f median=%.4f max=%.4f",
		s.Name, s.Count, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}

// Summarize computes summaries for the named columns of a frame. Columns with
// no numeric samples are skipped; profiling is best-effort and never fails a
// run.
func Summarize(f *frame.Frame, columns []string) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(columns))
	for _, name := range columns {
		samples, err := f.NumericColumn(name)
		if err != nil || len(samples) == 0 {
			continue
		}

		summary := ColumnSummary{Name: name, Count: len(samples)}
		summary.Mean, _ = stats.Mean(samples)
		summary.StdDev, _ = stats.StandardDeviation(samples)
		summary.Min, _ = stats.Min(samples)
		summary.Max, _ = stats.Max(samples)
		summary.Median, _ = stats.Median(samples)
		summaries = append(summaries, summary)
	}
	return summaries
}
