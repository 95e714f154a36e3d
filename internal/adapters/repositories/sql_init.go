package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchemaPostgres creates the tables the Postgres-backed adapters depend
// on: solved problems and the solution cache lookaside table.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProblemsQuery := `
	CREATE TABLE IF NOT EXISTS problems (
		problem_hash TEXT PRIMARY KEY,
		problem JSONB NOT NULL,
		solution JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createSolutionCacheQuery := `
	CREATE TABLE IF NOT EXISTS solution_cache (
		problem_hash TEXT PRIMARY KEY,
		solution JSONB NOT NULL
	);
	`

	statements := []string{createProblemsQuery, createSolutionCacheQuery}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
