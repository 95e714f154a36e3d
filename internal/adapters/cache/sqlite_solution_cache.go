package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
)

// SqliteSolutionCache is a SQLite-backed lookaside cache for solved
// AlgorithmSolutions, keyed by problem hash.
type SqliteSolutionCache struct {
	DB *sql.DB
}

func NewSqliteSolutionCache(db *sql.DB) *SqliteSolutionCache {
	return &SqliteSolutionCache{DB: db}
}

func (s *SqliteSolutionCache) Get(ctx context.Context, key string) (domain.AlgorithmSolution, bool, error) {
	if s.DB == nil {
		return domain.AlgorithmSolution{}, false, errors.New("solution cache: db is nil")
	}
	if key == "" {
		return domain.AlgorithmSolution{}, false, errors.New("get solution cache: key must not be empty")
	}

	var payload []byte
	err := s.DB.QueryRowContext(ctx, `SELECT solution FROM solution_cache WHERE problem_hash = ?;`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AlgorithmSolution{}, false, nil
	}
	if err != nil {
		return domain.AlgorithmSolution{}, false, fmt.Errorf("get solution cache: query solution_cache table: %w", err)
	}

	var sol domain.AlgorithmSolution
	if err := json.Unmarshal(payload, &sol); err != nil {
		return domain.AlgorithmSolution{}, false, fmt.Errorf("get solution cache: decode payload: %w", err)
	}

	return sol, true, nil
}

func (s *SqliteSolutionCache) Put(ctx context.Context, key string, solution domain.AlgorithmSolution) error {
	if s.DB == nil {
		return errors.New("solution cache: db is nil")
	}
	if key == "" {
		return errors.New("put solution cache: key must not be empty")
	}

	payload, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("put solution cache: encode payload: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO solution_cache (problem_hash, solution)
	VALUES (?, ?);
	`, key, payload)
	if err != nil {
		return fmt.Errorf("put solution cache: insert solution_cache row: %w", err)
	}

	return nil
}
