package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
	"github.com/AlexShukel/kdp-pdvrp/internal/ports"
	"github.com/AlexShukel/kdp-pdvrp/internal/solver"
)

// InitSchema creates the tables the SQLite-backed adapters depend on: solved
// problems (for later retrieval) and the solution cache lookaside table.
func InitSchema(db *sql.DB) error {
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
		problem TEXT NOT NULL,
		solution TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	);
	`

	createSolutionCacheQuery := `
	CREATE TABLE IF NOT EXISTS solution_cache (
		problem_hash TEXT PRIMARY KEY,
		solution TEXT NOT NULL
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

// SeedDemoProblem loads a domain.Problem from jsonPath, solves it, and
// persists the result through repo under hash, so a freshly initialized
// database has at least one browsable solved problem. repo may be backed by
// either SQL dialect since it is addressed only through the port.
func SeedDemoProblem(repo ports.ProblemRepository, jsonPath, hash string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed demo problem: read %q: %w", jsonPath, err)
	}

	var problem domain.Problem
	if err := json.Unmarshal(bytes, &problem); err != nil {
		return fmt.Errorf("seed demo problem: parse json: %w", err)
	}

	solution, err := solver.Solve(problem)
	if err != nil {
		return fmt.Errorf("seed demo problem: solve: %w", err)
	}

	if err := repo.SaveProblem(context.Background(), hash, problem, solution); err != nil {
		return fmt.Errorf("seed demo problem: save: %w", err)
	}

	return nil
}
