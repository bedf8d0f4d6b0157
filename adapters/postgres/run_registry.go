// Package postgres persists pipeline run records for audit. The registry is
// optional; the pipeline runs fine without a database.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"netsentry/domain/artifact"
	"netsentry/domain/core"
	"netsentry/internal/errors"
)

const createRunsTable = `CREATE TABLE IF NOT EXISTS validation_runs (
	run_id TEXT PRIMARY KEY,
	validation_status BOOLEAN NOT NULL,
	valid_train_file_path TEXT NOT NULL,
	valid_test_file_path TEXT NOT NULL,
	invalid_train_file_path TEXT NOT NULL,
	invalid_test_file_path TEXT NOT NULL,
	drift_report_file_path TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// RunRegistry stores one row per validation run.
type RunRegistry struct {
	db *sqlx.DB
}

// Connect opens the registry database and ensures its schema exists.
func Connect(ctx context.Context, databaseURL string) (*RunRegistry, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, fmt.Errorf("failed to connect to run registry: %w", err))
	}
	r := &RunRegistry{db: db}
	if err := r.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the database connection.
func (r *RunRegistry) Close() error {
	return r.db.Close()
}

func (r *RunRegistry) ensureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRunsTable); err != nil {
		return errors.WithCode(errors.CodeDatabaseError, fmt.Errorf("failed to create validation_runs table: %w", err))
	}
	return nil
}

// SaveValidationRun inserts the artifact produced by one run.
func (r *RunRegistry) SaveValidationRun(ctx context.Context, runID core.RunID, art *artifact.DataValidationArtifact) error {
	query := `INSERT INTO validation_runs (
		run_id, validation_status, valid_train_file_path, valid_test_file_path,
		invalid_train_file_path, invalid_test_file_path, drift_report_file_path
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		runID.String(), art.ValidationStatus, art.ValidTrainFilePath, art.ValidTestFilePath,
		art.InvalidTrainFilePath, art.InvalidTestFilePath, art.DriftReportFilePath,
	)
	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, fmt.Errorf("failed to save validation run %s: %w", runID, err))
	}
	return nil
}

// GetValidationRun loads the artifact recorded for a run.
func (r *RunRegistry) GetValidationRun(ctx context.Context, runID core.RunID) (*artifact.DataValidationArtifact, error) {
	query := `SELECT validation_status, valid_train_file_path, valid_test_file_path,
		invalid_train_file_path, invalid_test_file_path, drift_report_file_path
	FROM validation_runs WHERE run_id = $1`

	var art artifact.DataValidationArtifact
	err := r.db.QueryRowContext(ctx, query, runID.String()).Scan(
		&art.ValidationStatus, &art.ValidTrainFilePath, &art.ValidTestFilePath,
		&art.InvalidTrainFilePath, &art.InvalidTestFilePath, &art.DriftReportFilePath,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.DatabaseError(fmt.Sprintf("validation run %s not found", runID))
		}
		return nil, errors.WithCode(errors.CodeDatabaseError, fmt.Errorf("failed to load validation run %s: %w", runID, err))
	}
	return &art, nil
}

// ListValidationRunIDs returns the most recent run IDs, newest first.
func (r *RunRegistry) ListValidationRunIDs(ctx context.Context, limit int) ([]core.RunID, error) {
	query := `SELECT run_id FROM validation_runs ORDER BY created_at DESC LIMIT $1`

	var raw []string
	if err := r.db.SelectContext(ctx, &raw, query, limit); err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, fmt.Errorf("failed to list validation runs: %w", err))
	}

	ids := make([]core.RunID, len(raw))
	for i, s := range raw {
		ids[i] = core.RunID(s)
	}
	return ids, nil
}
