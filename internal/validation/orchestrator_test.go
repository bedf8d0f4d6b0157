package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netsentry/domain/artifact"
	"netsentry/domain/schema"
	"netsentry/internal/config"
	"netsentry/internal/drift"
	"netsentry/internal/errors"
	"netsentry/internal/yamlio"
)

func validationConfig(t *testing.T) config.DataValidationConfig {
	t.Helper()
	root := t.TempDir()
	validDir := filepath.Join(root, "validated")
	invalidDir := filepath.Join(root, "invalid")
	return config.DataValidationConfig{
		ValidDataDir:         validDir,
		InvalidDataDir:       invalidDir,
		ValidTrainFilePath:   filepath.Join(validDir, "train.csv"),
		ValidTestFilePath:    filepath.Join(validDir, "test.csv"),
		InvalidTrainFilePath: filepath.Join(invalidDir, "train.csv"),
		InvalidTestFilePath:  filepath.Join(invalidDir, "test.csv"),
		DriftReportFilePath:  filepath.Join(root, "drift_report", "report.yaml"),
		DriftThreshold:       drift.DefaultThreshold,
	}
}

func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func ingestionArtifact(t *testing.T, trainCSV, testCSV string) artifact.DataIngestionArtifact {
	t.Helper()
	dir := t.TempDir()
	return artifact.DataIngestionArtifact{
		TrainFilePath: writeDataset(t, dir, "train.csv", trainCSV),
		TestFilePath:  writeDataset(t, dir, "test.csv", testCSV),
	}
}

func twoColumnSchema() *schema.Schema {
	return &schema.Schema{
		Columns: []schema.Column{
			{Name: "a", Dtype: "int64"},
			{Name: "b", Dtype: "int64"},
		},
		NumericalColumns: []string{"a"},
	}
}

func TestRun_IdenticalDatasetsAreValid(t *testing.T) {
	cfg := validationConfig(t)
	ing := ingestionArtifact(t, "a,b\n0,0\n", "a,b\n0,0\n")

	art, err := NewDataValidation(ing, cfg, twoColumnSchema()).Run()
	require.NoError(t, err)

	assert.True(t, art.ValidationStatus)
	assert.Equal(t, cfg.ValidTrainFilePath, art.ValidTrainFilePath)
	assert.Equal(t, cfg.DriftReportFilePath, art.DriftReportFilePath)

	// Routed to the valid destination, never the invalid one.
	assert.FileExists(t, cfg.ValidTrainFilePath)
	assert.FileExists(t, cfg.ValidTestFilePath)
	assert.NoFileExists(t, cfg.InvalidTrainFilePath)
	assert.NoFileExists(t, cfg.InvalidTestFilePath)

	var report drift.Report
	require.NoError(t, yamlio.ReadFile(cfg.DriftReportFilePath, &report))
	require.Len(t, report.Columns, 2)
	for _, c := range report.Columns {
		assert.Equal(t, 1.0, c.PValue, "column %s", c.Name)
		assert.False(t, c.DriftStatus, "column %s", c.Name)
	}
}

func TestRun_PersistsDatasetsUnmodified(t *testing.T) {
	cfg := validationConfig(t)
	trainCSV := "a,b\n0.500,na\n-1,2\n"
	ing := ingestionArtifact(t, trainCSV, "a,b\n0,0\n")

	_, err := NewDataValidation(ing, cfg, twoColumnSchema()).Run()
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ValidTrainFilePath)
	require.NoError(t, err)
	assert.Equal(t, trainCSV, string(data))
}

func TestRun_ExtraColumnRoutesToInvalid(t *testing.T) {
	cfg := validationConfig(t)
	ing := ingestionArtifact(t, "a,b\n0,0\n", "a,b,extra\n0,0,0\n")

	art, err := NewDataValidation(ing, cfg, twoColumnSchema()).Run()
	require.NoError(t, err)

	assert.False(t, art.ValidationStatus)
	assert.FileExists(t, cfg.InvalidTrainFilePath)
	assert.FileExists(t, cfg.InvalidTestFilePath)
	assert.NoFileExists(t, cfg.ValidTrainFilePath)
	assert.NoFileExists(t, cfg.ValidTestFilePath)

	// Drift detection is skipped entirely: no report file for this run.
	assert.NoFileExists(t, cfg.DriftReportFilePath)
}

func TestRun_MissingNumericalColumnIsInvalid(t *testing.T) {
	cfg := validationConfig(t)
	// Right column count, but the required numerical column "a" is absent
	// from the test dataset.
	ing := ingestionArtifact(t, "a,b\n0,0\n", "x,b\n0,0\n")

	art, err := NewDataValidation(ing, cfg, twoColumnSchema()).Run()
	require.NoError(t, err)

	assert.False(t, art.ValidationStatus)
	assert.FileExists(t, cfg.InvalidTrainFilePath)
	assert.NoFileExists(t, cfg.DriftReportFilePath)
}

func TestRun_AllSixPathsAlwaysPopulated(t *testing.T) {
	cfg := validationConfig(t)
	ing := ingestionArtifact(t, "a,b\n0,0\n", "a,b,extra\n0,0,0\n")

	art, err := NewDataValidation(ing, cfg, twoColumnSchema()).Run()
	require.NoError(t, err)

	assert.Equal(t, cfg.ValidTrainFilePath, art.ValidTrainFilePath)
	assert.Equal(t, cfg.ValidTestFilePath, art.ValidTestFilePath)
	assert.Equal(t, cfg.InvalidTrainFilePath, art.InvalidTrainFilePath)
	assert.Equal(t, cfg.InvalidTestFilePath, art.InvalidTestFilePath)
	assert.Equal(t, cfg.DriftReportFilePath, art.DriftReportFilePath)
}

func TestRun_MissingInputFileFails(t *testing.T) {
	cfg := validationConfig(t)
	ing := artifact.DataIngestionArtifact{
		TrainFilePath: filepath.Join(t.TempDir(), "absent.csv"),
		TestFilePath:  filepath.Join(t.TempDir(), "absent.csv"),
	}

	art, err := NewDataValidation(ing, cfg, twoColumnSchema()).Run()
	require.Error(t, err)
	assert.Nil(t, art)
	assert.Equal(t, errors.CodeInputRead, errors.GetCode(err))
}

func TestRun_NonNumericColumnFailsDrift(t *testing.T) {
	cfg := validationConfig(t)
	// Structurally sound, but column b cannot be parsed as numbers, which
	// surfaces during the KS computation.
	ing := ingestionArtifact(t, "a,b\n0,hello\n", "a,b\n0,world\n")

	art, err := NewDataValidation(ing, cfg, twoColumnSchema()).Run()
	require.Error(t, err)
	assert.Nil(t, art)
	assert.Equal(t, errors.CodeStatComputation, errors.GetCode(err))
}
