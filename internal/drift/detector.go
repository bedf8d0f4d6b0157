// Package drift compares train and test feature distributions with the
// two-sample Kolmogorov-Smirnov test and reports per-column drift.
package drift

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"netsentry/domain/frame"
	"netsentry/internal/errors"
	"netsentry/internal/yamlio"
)

// DefaultThreshold is the standard significance level for the KS test.
const DefaultThreshold = 0.05

// ColumnDrift is the drift verdict for a single column. PValue is recorded
// exactly as computed, never rounded.
type ColumnDrift struct {
	PValue      float64 `yaml:"p_value"`
	DriftStatus bool    `yaml:"drift_status"`
}

// ColumnReport pairs a column name with its drift verdict.
type ColumnReport struct {
	Name string
	ColumnDrift
}

// Report lists per-column drift verdicts in base-dataset column order. It
// serializes as a mapping column_name -> {p_value, drift_status}.
type Report struct {
	Columns []ColumnReport
}

// Lookup returns the verdict for a column, if present.
func (r *Report) Lookup(name string) (ColumnDrift, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c.ColumnDrift, true
		}
	}
	return ColumnDrift{}, false
}

// MarshalYAML emits an ordered mapping rather than a Go map, so the report
// file lists columns in dataset order.
func (r Report) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range r.Columns {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: c.Name}
		val := &yaml.Node{}
		if err := val.Encode(c.ColumnDrift); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML reads the mapping form back, preserving document order.
func (r *Report) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("drift report must be a mapping, got %v", value.Kind)
	}
	r.Columns = r.Columns[:0]
	for i := 0; i+1 < len(value.Content); i += 2 {
		var cd ColumnDrift
		if err := value.Content[i+1].Decode(&cd); err != nil {
			return err
		}
		r.Columns = append(r.Columns, ColumnReport{Name: value.Content[i].Value, ColumnDrift: cd})
	}
	return nil
}

// Detector runs pairwise distribution comparisons between a base and a
// current dataset.
type Detector struct {
	Threshold float64
}

// NewDetector creates a detector with the given significance threshold;
// values <= 0 fall back to DefaultThreshold.
func NewDetector(threshold float64) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Detector{Threshold: threshold}
}

// Detect compares every base column against the current dataset. Columns that
// exist only in the current dataset are skipped; a base column missing from
// the current dataset, or one with no numeric samples, fails the run. The
// overall flag is the OR of per-column drift verdicts.
func (d *Detector) Detect(base, current *frame.Frame) (bool, *Report, error) {
	report := &Report{Columns: make([]ColumnReport, 0, base.Width())}
	overall := false

	for _, column := range base.Columns {
		baseSamples, err := base.NumericColumn(column)
		if err != nil {
			return false, nil, errors.StatComputation(fmt.Sprintf("drift test failed for column %q", column), err)
		}
		currentSamples, err := current.NumericColumn(column)
		if err != nil {
			return false, nil, errors.StatComputation(fmt.Sprintf("drift test failed for column %q", column), err)
		}

		_, pValue, err := ksTwoSample(baseSamples, currentSamples)
		if err != nil {
			return false, nil, errors.StatComputation(fmt.Sprintf("drift test failed for column %q", column), err)
		}

		// p >= threshold: same distribution. p < threshold: reject the null,
		// the column has drifted.
		drifted := pValue < d.Threshold
		if drifted {
			overall = true
		}
		report.Columns = append(report.Columns, ColumnReport{
			Name:        column,
			ColumnDrift: ColumnDrift{PValue: pValue, DriftStatus: drifted},
		})
	}

	return overall, report, nil
}

// WriteReport persists the report as YAML at path. The report must be durable
// before a validation run concludes.
func WriteReport(path string, report *Report) error {
	if err := yamlio.WriteFile(path, *report); err != nil {
		return errors.WithCode(errors.CodePersistence, err)
	}
	return nil
}
