// Package validation implements the data validation stage: structural schema
// conformance plus train/test drift detection, routing the datasets to the
// valid or invalid destination.
package validation

import (
	"strings"

	"netsentry/adapters/tabular"
	"netsentry/domain/artifact"
	"netsentry/domain/frame"
	"netsentry/domain/schema"
	"netsentry/internal"
	"netsentry/internal/config"
	"netsentry/internal/drift"
	"netsentry/internal/errors"
	"netsentry/internal/profile"
)

// DataValidation orchestrates one validation run. The schema descriptor is
// held at construction and immutable for the component's lifetime; each Run
// is otherwise stateless.
type DataValidation struct {
	ingestion  artifact.DataIngestionArtifact
	cfg        config.DataValidationConfig
	structural *StructuralValidator
	detector   *drift.Detector
	log        *internal.Logger
}

// NewDataValidation builds the validation stage from the upstream ingestion
// artifact, its configuration and the loaded schema.
func NewDataValidation(ing artifact.DataIngestionArtifact, cfg config.DataValidationConfig, s *schema.Schema) *DataValidation {
	return &DataValidation{
		ingestion:  ing,
		cfg:        cfg,
		structural: NewStructuralValidator(s),
		detector:   drift.NewDetector(cfg.DriftThreshold),
		log:        internal.DefaultLogger,
	}
}

// route is the discriminated output destination, chosen once per run from the
// validation status.
type route struct {
	dir       string
	trainPath string
	testPath  string
}

func (dv *DataValidation) selectRoute(valid bool) route {
	if valid {
		return route{
			dir:       dv.cfg.ValidDataDir,
			trainPath: dv.cfg.ValidTrainFilePath,
			testPath:  dv.cfg.ValidTestFilePath,
		}
	}
	return route{
		dir:       dv.cfg.InvalidDataDir,
		trainPath: dv.cfg.InvalidTrainFilePath,
		testPath:  dv.cfg.InvalidTestFilePath,
	}
}

// Run executes the validation stage to completion: load both datasets, run
// all four structural checks, conditionally detect drift, persist the routed
// copies and the drift report, and return the artifact. Any failure aborts
// the run with no partial artifact.
func (dv *DataValidation) Run() (*artifact.DataValidationArtifact, error) {
	trainFrame, err := tabular.NewReader(dv.ingestion.TrainFilePath).Read()
	if err != nil {
		return nil, errors.Wrap(err, "data validation: loading train dataset")
	}
	testFrame, err := tabular.NewReader(dv.ingestion.TestFilePath).Read()
	if err != nil {
		return nil, errors.Wrap(err, "data validation: loading test dataset")
	}
	dv.log.Info("data validation: loaded train (%d rows) and test (%d rows)", trainFrame.Height(), testFrame.Height())
	dv.logProfiles(trainFrame, testFrame)

	// All four checks always run; the route decision uses their conjunction.
	status := dv.runStructuralChecks(trainFrame, testFrame)

	// Drift is informational only: it never alters the validation status, and
	// it only runs once the structure is known to be sound.
	if status {
		overall, report, err := dv.detector.Detect(trainFrame, testFrame)
		if err != nil {
			return nil, errors.Wrap(err, "data validation: drift detection")
		}
		if err := drift.WriteReport(dv.cfg.DriftReportFilePath, report); err != nil {
			return nil, errors.Wrap(err, "data validation: writing drift report")
		}
		dv.log.Info("data validation: drift detected=%v, report written to %s", overall, dv.cfg.DriftReportFilePath)
	} else {
		dv.log.Warn("data validation: structural checks failed, drift detection skipped")
	}

	dest := dv.selectRoute(status)
	if err := tabular.WriteCSV(dest.trainPath, trainFrame); err != nil {
		return nil, errors.Wrap(err, "data validation: persisting train dataset")
	}
	if err := tabular.WriteCSV(dest.testPath, testFrame); err != nil {
		return nil, errors.Wrap(err, "data validation: persisting test dataset")
	}
	dv.log.Info("data validation: datasets persisted to %s", dest.dir)

	return &artifact.DataValidationArtifact{
		ValidationStatus:     status,
		ValidTrainFilePath:   dv.cfg.ValidTrainFilePath,
		ValidTestFilePath:    dv.cfg.ValidTestFilePath,
		InvalidTrainFilePath: dv.cfg.InvalidTrainFilePath,
		InvalidTestFilePath:  dv.cfg.InvalidTestFilePath,
		DriftReportFilePath:  dv.cfg.DriftReportFilePath,
	}, nil
}

// runStructuralChecks evaluates and logs all four checks without
// short-circuiting, returning their conjunction.
func (dv *DataValidation) runStructuralChecks(trainFrame, testFrame *frame.Frame) bool {
	status := true

	for _, ds := range []struct {
		name string
		f    *frame.Frame
	}{
		{"train", trainFrame},
		{"test", testFrame},
	} {
		if ok := dv.structural.ColumnCountMatches(ds.f); !ok {
			dv.log.Warn("data validation: %s column count %d does not match schema", ds.name, ds.f.Width())
			status = false
		} else {
			dv.log.Info("data validation: %s column count matches schema", ds.name)
		}

		if ok, missing := dv.structural.NumericalColumnsPresent(ds.f); !ok {
			dv.log.Warn("data validation: %s is missing numerical columns: %s", ds.name, strings.Join(missing, ", "))
			status = false
		} else {
			dv.log.Info("data validation: %s has all required numerical columns", ds.name)
		}
	}

	return status
}

func (dv *DataValidation) logProfiles(trainFrame, testFrame *frame.Frame) {
	if dv.log.GetLevel() < internal.LogLevelDebug {
		return
	}
	numerical := dv.structural.schema.NumericalColumns
	for _, s := range profile.Summarize(trainFrame, numerical) {
		dv.log.Debug("train %s", s)
	}
	for _, s := range profile.Summarize(testFrame, numerical) {
		dv.log.Debug("test %s", s)
	}
}
