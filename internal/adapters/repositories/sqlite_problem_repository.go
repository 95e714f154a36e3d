package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
)

// SqliteProblemRepository persists solved problems in SQLite, storing both
// the input Problem and its AlgorithmSolution as JSON blobs keyed by hash.
type SqliteProblemRepository struct{ DB *sql.DB }

func NewSqliteProblemRepository(db *sql.DB) *SqliteProblemRepository {
	return &SqliteProblemRepository{DB: db}
}

func (s *SqliteProblemRepository) SaveProblem(
	ctx context.Context,
	hash string,
	problem domain.Problem,
	solution domain.AlgorithmSolution,
) error {
	if s.DB == nil {
		return errors.New("sqlite problem repository: DB is nil")
	}
	if hash == "" {
		return errors.New("save problem: hash must not be empty")
	}

	problemPayload, err := json.Marshal(problem)
	if err != nil {
		return fmt.Errorf("save problem: encode problem: %w", err)
	}
	solutionPayload, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("save problem: encode solution: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO problems (problem_hash, problem, solution)
	VALUES (?, ?, ?);
	`, hash, problemPayload, solutionPayload)
	if err != nil {
		return fmt.Errorf("save problem: insert problems row: %w", err)
	}

	return nil
}

func (s *SqliteProblemRepository) GetProblem(
	ctx context.Context,
	hash string,
) (domain.Problem, domain.AlgorithmSolution, bool, error) {
	if s.DB == nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, errors.New("sqlite problem repository: DB is nil")
	}

	var problemPayload, solutionPayload []byte
	err := s.DB.QueryRowContext(ctx, `
	SELECT problem, solution FROM problems WHERE problem_hash = ?;
	`, hash).Scan(&problemPayload, &solutionPayload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, nil
	}
	if err != nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, fmt.Errorf("get problem: query problems table: %w", err)
	}

	var problem domain.Problem
	if err := json.Unmarshal(problemPayload, &problem); err != nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, fmt.Errorf("get problem: decode problem: %w", err)
	}
	var solution domain.AlgorithmSolution
	if err := json.Unmarshal(solutionPayload, &solution); err != nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, fmt.Errorf("get problem: decode solution: %w", err)
	}

	return problem, solution, true, nil
}

func (s *SqliteProblemRepository) ListProblems(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite problem repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT problem_hash FROM problems ORDER BY created_at;`)
	if err != nil {
		return nil, fmt.Errorf("list problems: query problems table: %w", err)
	}
	defer rows.Close()

	hashes := make([]string, 0, 16)
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("list problems: scan row: %w", err)
		}
		hashes = append(hashes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list problems: row iteration: %w", err)
	}

	return hashes, nil
}
