// Package ingestion implements the first pipeline stage: export the source
// collection from the document store, persist it to the feature store, and
// split it into train and test datasets.
package ingestion

import (
	"context"

	"netsentry/adapters/tabular"
	"netsentry/domain/artifact"
	"netsentry/domain/frame"
	"netsentry/internal"
	"netsentry/internal/config"
	"netsentry/internal/errors"
)

// CollectionExporter pulls the raw dataset out of the document store.
type CollectionExporter interface {
	ExportCollection(ctx context.Context) (*frame.Frame, error)
}

// DataIngestion orchestrates one ingestion run.
type DataIngestion struct {
	cfg      config.DataIngestionConfig
	exporter CollectionExporter
	log      *internal.Logger
}

// NewDataIngestion builds the ingestion stage from explicit configuration and
// a document-store exporter.
func NewDataIngestion(cfg config.DataIngestionConfig, exporter CollectionExporter) *DataIngestion {
	return &DataIngestion{cfg: cfg, exporter: exporter, log: internal.DefaultLogger}
}

// Run exports the collection, writes the feature store copy, splits into
// train/test and persists both, returning the ingestion artifact.
func (di *DataIngestion) Run(ctx context.Context) (*artifact.DataIngestionArtifact, error) {
	f, err := di.exporter.ExportCollection(ctx)
	if err != nil {
		return nil, errors.Ingestion("failed to export collection", err)
	}
	di.log.Info("data ingestion: exported %d records with %d columns", f.Height(), f.Width())

	if err := tabular.WriteCSV(di.cfg.FeatureStoreFilePath, f); err != nil {
		return nil, errors.Wrap(err, "data ingestion: writing feature store")
	}

	train, test := splitFrame(f, di.cfg.TrainTestSplitRatio, di.cfg.RandomSeed)
	di.log.Info("data ingestion: split into train (%d rows) and test (%d rows)", train.Height(), test.Height())

	if err := tabular.WriteCSV(di.cfg.TrainingFilePath, train); err != nil {
		return nil, errors.Wrap(err, "data ingestion: writing train dataset")
	}
	if err := tabular.WriteCSV(di.cfg.TestingFilePath, test); err != nil {
		return nil, errors.Wrap(err, "data ingestion: writing test dataset")
	}

	return &artifact.DataIngestionArtifact{
		TrainFilePath: di.cfg.TrainingFilePath,
		TestFilePath:  di.cfg.TestingFilePath,
	}, nil
}
