// Package pipeline sequences the training pipeline stages. Execution is
// strictly linear and synchronous; a failed stage aborts the run.
package pipeline

import (
	"context"

	"netsentry/domain/artifact"
	"netsentry/domain/core"
	"netsentry/domain/schema"
	"netsentry/internal"
	"netsentry/internal/config"
	"netsentry/internal/errors"
	"netsentry/internal/ingestion"
	"netsentry/internal/validation"
)

// RunRecorder persists the outcome of a validation run, e.g. to the Postgres
// run registry. Nil disables recording.
type RunRecorder interface {
	SaveValidationRun(ctx context.Context, runID core.RunID, art *artifact.DataValidationArtifact) error
}

// TrainingPipeline wires the stages for one run.
type TrainingPipeline struct {
	cfg      *config.Config
	exporter ingestion.CollectionExporter
	recorder RunRecorder
	log      *internal.Logger
}

// New builds a pipeline. recorder may be nil.
func New(cfg *config.Config, exporter ingestion.CollectionExporter, recorder RunRecorder) *TrainingPipeline {
	return &TrainingPipeline{
		cfg:      cfg,
		exporter: exporter,
		recorder: recorder,
		log:      internal.DefaultLogger,
	}
}

// Run executes ingestion then validation and returns the validation artifact.
// Downstream stages (transformation, training) must not proceed when the
// returned artifact's ValidationStatus is false.
func (p *TrainingPipeline) Run(ctx context.Context) (*artifact.DataValidationArtifact, error) {
	runID := core.NewRunID()
	p.log.Info("pipeline run %s started (artifacts under %s)", runID, p.cfg.Pipeline.ArtifactDir)

	ingestionArtifact, err := ingestion.NewDataIngestion(p.cfg.Ingestion, p.exporter).Run(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "pipeline run %s: ingestion stage", runID)
	}

	s, err := schema.Load(p.cfg.Validation.SchemaFilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "pipeline run %s: loading schema", runID)
	}

	validationArtifact, err := validation.NewDataValidation(*ingestionArtifact, p.cfg.Validation, s).Run()
	if err != nil {
		return nil, errors.Wrapf(err, "pipeline run %s: validation stage", runID)
	}

	if p.recorder != nil {
		if err := p.recorder.SaveValidationRun(ctx, runID, validationArtifact); err != nil {
			return nil, errors.Wrapf(err, "pipeline run %s: recording run", runID)
		}
	}

	if !validationArtifact.ValidationStatus {
		p.log.Warn("pipeline run %s: data rejected by validation, downstream stages skipped", runID)
	} else {
		p.log.Info("pipeline run %s: data accepted", runID)
	}
	return validationArtifact, nil
}
