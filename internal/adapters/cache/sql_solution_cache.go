package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
	"github.com/AlexShukel/kdp-pdvrp/internal/platform/obs"
)

// SQLSolutionCache is a Postgres-backed lookaside cache for solved
// AlgorithmSolutions, keyed by problem hash.
type SQLSolutionCache struct {
	DB *sql.DB
}

func NewSQLSolutionCache(db *sql.DB) *SQLSolutionCache {
	return &SQLSolutionCache{DB: db}
}

func (s *SQLSolutionCache) Get(ctx context.Context, key string) (_ domain.AlgorithmSolution, _ bool, err error) {
	defer obs.Time(ctx, "solution.cache.Get")(&err)

	if s.DB == nil {
		return domain.AlgorithmSolution{}, false, errors.New("solution cache: db is nil")
	}
	if key == "" {
		return domain.AlgorithmSolution{}, false, errors.New("get solution cache: key must not be empty")
	}

	var payload []byte
	qerr := s.DB.QueryRowContext(ctx, `SELECT solution FROM solution_cache WHERE problem_hash = $1;`, key).Scan(&payload)
	if errors.Is(qerr, sql.ErrNoRows) {
		return domain.AlgorithmSolution{}, false, nil
	}
	if qerr != nil {
		return domain.AlgorithmSolution{}, false, fmt.Errorf("get solution cache: query solution_cache table: %w", qerr)
	}

	var sol domain.AlgorithmSolution
	if uerr := json.Unmarshal(payload, &sol); uerr != nil {
		return domain.AlgorithmSolution{}, false, fmt.Errorf("get solution cache: decode payload: %w", uerr)
	}

	return sol, true, nil
}

func (s *SQLSolutionCache) Put(ctx context.Context, key string, solution domain.AlgorithmSolution) (err error) {
	defer obs.Time(ctx, "solution.cache.Put")(&err)

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
	INSERT INTO solution_cache (problem_hash, solution)
	VALUES ($1, $2)
	ON CONFLICT (problem_hash) DO UPDATE
	SET solution = EXCLUDED.solution;
	`, key, payload)
	if err != nil {
		return fmt.Errorf("put solution cache: insert solution_cache row: %w", err)
	}

	return nil
}
