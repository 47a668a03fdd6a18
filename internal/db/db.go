// Package db provides PostgreSQL storage for analysis run history.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the analysis_runs table if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analysis_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			resume_summary VARCHAR(100) NOT NULL,
			job_title_guess VARCHAR(200) NOT NULL,
			match_score INTEGER NOT NULL,
			result JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analysis_runs table: %w", err)
	}
	return nil
}

// Run is a stored analysis run. Result holds the full analysis document,
// including the input texts.
type Run struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	ResumeSummary string
	JobTitleGuess string
	MatchScore    int
	Result        json.RawMessage
}

// SaveRun inserts a new analysis run record and returns its ID.
func (db *DB) SaveRun(ctx context.Context, resumeSummary, jobTitleGuess string, matchScore int, result any) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analysis_runs (resume_summary, job_title_guess, match_score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resumeSummary, jobTitleGuess, matchScore, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}
	return id, nil
}

// LatestRun returns the most recent run, or nil when the history is empty.
func (db *DB) LatestRun(ctx context.Context) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, resume_summary, job_title_guess, match_score, result
		 FROM analysis_runs
		 ORDER BY created_at DESC
		 LIMIT 1`,
	).Scan(&run.ID, &run.CreatedAt, &run.ResumeSummary, &run.JobTitleGuess, &run.MatchScore, &run.Result)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, resume_summary, job_title_guess, match_score, result
		 FROM analysis_runs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.ResumeSummary, &run.JobTitleGuess, &run.MatchScore, &run.Result); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}

// DeleteRun deletes a single run by ID. Returns false when no row matched.
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analysis_runs WHERE id = $1`, runID)
	if err != nil {
		return false, fmt.Errorf("failed to delete run: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ClearRuns deletes all stored runs.
func (db *DB) ClearRuns(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM analysis_runs`); err != nil {
		return fmt.Errorf("failed to clear runs: %w", err)
	}
	return nil
}
