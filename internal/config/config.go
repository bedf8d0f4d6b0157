// Package config builds the explicit configuration objects the pipeline
// stages are constructed with. Environment variables are read here, once, at
// the edge; no component does ambient lookups.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"netsentry/internal/drift"
	"netsentry/internal/errors"
)

// File layout constants for the artifact directory tree.
const (
	PipelineName      = "netsentry"
	ArtifactDirName   = "artifacts"
	TrainFileName     = "train.csv"
	TestFileName      = "test.csv"
	FeatureStoreName  = "phishing_data.csv"
	DriftReportName   = "report.yaml"
	defaultSchemaPath = "data_schema/schema.yaml"
	defaultSplitRatio = 0.2
)

// TrainingPipelineConfig anchors one run's artifact tree at a timestamped
// directory.
type TrainingPipelineConfig struct {
	PipelineName string
	Timestamp    string
	ArtifactDir  string
}

// NewTrainingPipelineConfig creates the per-run artifact root under baseDir.
func NewTrainingPipelineConfig(baseDir string, now time.Time) TrainingPipelineConfig {
	ts := now.Format("01_02_2006_15_04_05")
	return TrainingPipelineConfig{
		PipelineName: PipelineName,
		Timestamp:    ts,
		ArtifactDir:  filepath.Join(baseDir, ArtifactDirName, ts),
	}
}

// DataIngestionConfig configures the document-store export and train/test
// split.
type DataIngestionConfig struct {
	DatabaseURL    string
	DatabaseName   string
	CollectionName string

	FeatureStoreFilePath string
	TrainingFilePath     string
	TestingFilePath      string

	TrainTestSplitRatio float64
	RandomSeed          int64
}

// NewDataIngestionConfig derives the ingestion paths from the pipeline root.
func NewDataIngestionConfig(tp TrainingPipelineConfig, databaseURL, databaseName, collectionName string) DataIngestionConfig {
	root := filepath.Join(tp.ArtifactDir, "data_ingestion")
	return DataIngestionConfig{
		DatabaseURL:          databaseURL,
		DatabaseName:         databaseName,
		CollectionName:       collectionName,
		FeatureStoreFilePath: filepath.Join(root, "feature_store", FeatureStoreName),
		TrainingFilePath:     filepath.Join(root, "ingested", TrainFileName),
		TestingFilePath:      filepath.Join(root, "ingested", TestFileName),
		TrainTestSplitRatio:  defaultSplitRatio,
		RandomSeed:           42,
	}
}

// DataValidationConfig configures the validation stage: schema location,
// routed output paths, drift report path and threshold.
type DataValidationConfig struct {
	SchemaFilePath string

	ValidDataDir   string
	InvalidDataDir string

	ValidTrainFilePath   string
	ValidTestFilePath    string
	InvalidTrainFilePath string
	InvalidTestFilePath  string

	DriftReportFilePath string
	DriftThreshold      float64
}

// NewDataValidationConfig derives the validation paths from the pipeline root.
func NewDataValidationConfig(tp TrainingPipelineConfig, schemaFilePath string) DataValidationConfig {
	root := filepath.Join(tp.ArtifactDir, "data_validation")
	validDir := filepath.Join(root, "validated")
	invalidDir := filepath.Join(root, "invalid")
	return DataValidationConfig{
		SchemaFilePath:       schemaFilePath,
		ValidDataDir:         validDir,
		InvalidDataDir:       invalidDir,
		ValidTrainFilePath:   filepath.Join(validDir, TrainFileName),
		ValidTestFilePath:    filepath.Join(validDir, TestFileName),
		InvalidTrainFilePath: filepath.Join(invalidDir, TrainFileName),
		InvalidTestFilePath:  filepath.Join(invalidDir, TestFileName),
		DriftReportFilePath:  filepath.Join(root, "drift_report", DriftReportName),
		DriftThreshold:       drift.DefaultThreshold,
	}
}

// RegistryConfig configures the optional Postgres run registry.
type RegistryConfig struct {
	DatabaseURL string
	Enabled     bool
}

// Config is the complete pipeline configuration for one run.
type Config struct {
	Pipeline   TrainingPipelineConfig
	Ingestion  DataIngestionConfig
	Validation DataValidationConfig
	Registry   RegistryConfig
}

// Load assembles a run configuration from the environment. MONGO_DB_URL is
// required; everything else has defaults. DATABASE_URL enables the run
// registry when present.
func Load(now time.Time) (*Config, error) {
	mongoURL := os.Getenv("MONGO_DB_URL")
	if mongoURL == "" {
		return nil, errors.ConfigInvalid("MONGO_DB_URL is required")
	}

	tp := NewTrainingPipelineConfig(getEnvOrDefault("ARTIFACT_BASE_DIR", "."), now)

	ingestion := NewDataIngestionConfig(
		tp,
		mongoURL,
		getEnvOrDefault("MONGO_DATABASE", "netsentry"),
		getEnvOrDefault("MONGO_COLLECTION", "phishing_data"),
	)
	ingestion.TrainTestSplitRatio = getEnvFloatOrDefault("TRAIN_TEST_SPLIT_RATIO", defaultSplitRatio)
	if ingestion.TrainTestSplitRatio <= 0 || ingestion.TrainTestSplitRatio >= 1 {
		return nil, errors.ConfigInvalid("TRAIN_TEST_SPLIT_RATIO must be in (0, 1)")
	}

	validation := NewDataValidationConfig(tp, getEnvOrDefault("SCHEMA_FILE_PATH", defaultSchemaPath))
	validation.DriftThreshold = getEnvFloatOrDefault("DRIFT_THRESHOLD", drift.DefaultThreshold)
	if validation.DriftThreshold <= 0 || validation.DriftThreshold > 1 {
		return nil, errors.ConfigInvalid("DRIFT_THRESHOLD must be in (0, 1]")
	}

	registryURL := os.Getenv("DATABASE_URL")

	return &Config{
		Pipeline:   tp,
		Ingestion:  ingestion,
		Validation: validation,
		Registry:   RegistryConfig{DatabaseURL: registryURL, Enabled: registryURL != ""},
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
