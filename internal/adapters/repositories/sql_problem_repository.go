package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
	"github.com/AlexShukel/kdp-pdvrp/internal/platform/obs"
)

// SQLProblemRepository persists solved problems in Postgres, storing both
// the input Problem and its AlgorithmSolution as JSONB columns keyed by
// hash.
type SQLProblemRepository struct{ DB *sql.DB }

func NewSQLProblemRepository(db *sql.DB) *SQLProblemRepository {
	return &SQLProblemRepository{DB: db}
}

func (s *SQLProblemRepository) SaveProblem(
	ctx context.Context,
	hash string,
	problem domain.Problem,
	solution domain.AlgorithmSolution,
) (err error) {
	defer obs.Time(ctx, "problems.SaveProblem")(&err)

	if s.DB == nil {
		return errors.New("sql problem repository: DB is nil")
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
	INSERT INTO problems (problem_hash, problem, solution)
	VALUES ($1, $2, $3)
	ON CONFLICT (problem_hash) DO UPDATE
	SET problem = EXCLUDED.problem, solution = EXCLUDED.solution;
	`, hash, problemPayload, solutionPayload)
	if err != nil {
		return fmt.Errorf("save problem: insert problems row: %w", err)
	}

	return nil
}

func (s *SQLProblemRepository) GetProblem(
	ctx context.Context,
	hash string,
) (_ domain.Problem, _ domain.AlgorithmSolution, _ bool, err error) {
	defer obs.Time(ctx, "problems.GetProblem")(&err)

	if s.DB == nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, errors.New("sql problem repository: DB is nil")
	}

	var problemPayload, solutionPayload []byte
	qerr := s.DB.QueryRowContext(ctx, `SELECT problem, solution FROM problems WHERE problem_hash = $1;`, hash).
		Scan(&problemPayload, &solutionPayload)
	if errors.Is(qerr, sql.ErrNoRows) {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, nil
	}
	if qerr != nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, fmt.Errorf("get problem: query problems table: %w", qerr)
	}

	var problem domain.Problem
	if uerr := json.Unmarshal(problemPayload, &problem); uerr != nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, fmt.Errorf("get problem: decode problem: %w", uerr)
	}
	var solution domain.AlgorithmSolution
	if uerr := json.Unmarshal(solutionPayload, &solution); uerr != nil {
		return domain.Problem{}, domain.AlgorithmSolution{}, false, fmt.Errorf("get problem: decode solution: %w", uerr)
	}

	return problem, solution, true, nil
}

func (s *SQLProblemRepository) ListProblems(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "problems.ListProblems")(&err)

	if s.DB == nil {
		return nil, errors.New("sql problem repository: DB is nil")
	}

	rows, qerr := s.DB.QueryContext(ctx, `SELECT problem_hash FROM problems ORDER BY created_at;`)
	if qerr != nil {
		return nil, fmt.Errorf("list problems: query problems table: %w", qerr)
	}
	defer rows.Close()

	hashes := make([]string, 0, 16)
	for rows.Next() {
		var h string
		if serr := rows.Scan(&h); serr != nil {
			return nil, fmt.Errorf("list problems: scan row: %w", serr)
		}
		hashes = append(hashes, h)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, fmt.Errorf("list problems: row iteration: %w", rerr)
	}

	return hashes, nil
}
