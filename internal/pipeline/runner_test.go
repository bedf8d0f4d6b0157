package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netsentry/domain/artifact"
	"netsentry/domain/core"
	"netsentry/domain/frame"
	"netsentry/internal/config"
	"netsentry/internal/errors"
)

type fakeExporter struct {
	f *frame.Frame
}

func (e *fakeExporter) ExportCollection(ctx context.Context) (*frame.Frame, error) {
	return e.f, nil
}

type fakeRecorder struct {
	runID core.RunID
	saved *artifact.DataValidationArtifact
	err   error
}

func (r *fakeRecorder) SaveValidationRun(ctx context.Context, runID core.RunID, art *artifact.DataValidationArtifact) error {
	r.runID = runID
	r.saved = art
	return r.err
}

func testConfig(t *testing.T, schemaContent string) *config.Config {
	t.Helper()
	base := t.TempDir()

	schemaPath := filepath.Join(base, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaContent), 0o644))

	tp := config.NewTrainingPipelineConfig(base, time.Now())
	return &config.Config{
		Pipeline:   tp,
		Ingestion:  config.NewDataIngestionConfig(tp, "mongodb://unused", "db", "coll"),
		Validation: config.NewDataValidationConfig(tp, schemaPath),
	}
}

func sourceFrame(t *testing.T, rows int) *frame.Frame {
	t.Helper()
	records := make([][]string, rows)
	for i := range records {
		records[i] = []string{fmt.Sprintf("%d", i%3), fmt.Sprintf("%d", i%5)}
	}
	f, err := frame.New([]string{"a", "b"}, records)
	require.NoError(t, err)
	return f
}

const twoColumnSchemaYAML = `columns:
  - a: int64
  - b: int64
numerical_columns:
  - a
`

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t, twoColumnSchemaYAML)
	recorder := &fakeRecorder{}

	art, err := New(cfg, &fakeExporter{f: sourceFrame(t, 50)}, recorder).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, art.ValidationStatus)
	assert.FileExists(t, cfg.Validation.ValidTrainFilePath)
	assert.FileExists(t, cfg.Validation.ValidTestFilePath)
	assert.FileExists(t, cfg.Validation.DriftReportFilePath)
	assert.FileExists(t, cfg.Ingestion.FeatureStoreFilePath)

	require.NotNil(t, recorder.saved)
	assert.Equal(t, art, recorder.saved)
	assert.False(t, recorder.runID == "")
}

func TestRun_NilRecorder(t *testing.T) {
	cfg := testConfig(t, twoColumnSchemaYAML)

	art, err := New(cfg, &fakeExporter{f: sourceFrame(t, 50)}, nil).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, art.ValidationStatus)
}

func TestRun_SchemaMismatchRejectsData(t *testing.T) {
	cfg := testConfig(t, `columns:
  - a: int64
  - b: int64
  - c: int64
numerical_columns:
  - c
`)

	art, err := New(cfg, &fakeExporter{f: sourceFrame(t, 50)}, nil).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, art.ValidationStatus)
	assert.FileExists(t, cfg.Validation.InvalidTrainFilePath)
	assert.NoFileExists(t, cfg.Validation.DriftReportFilePath)
}

func TestRun_BadSchemaFileFails(t *testing.T) {
	cfg := testConfig(t, `columns: []`)

	art, err := New(cfg, &fakeExporter{f: sourceFrame(t, 10)}, nil).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, art)
	assert.Equal(t, errors.CodeSchemaLoad, errors.GetCode(err))
}

func TestRun_RecorderFailureAbortsRun(t *testing.T) {
	cfg := testConfig(t, twoColumnSchemaYAML)
	recorder := &fakeRecorder{err: errors.DatabaseError("insert failed")}

	art, err := New(cfg, &fakeExporter{f: sourceFrame(t, 50)}, recorder).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, art)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
}
