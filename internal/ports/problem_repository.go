package ports

import (
	"context"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
)

// ProblemRepository persists solved problems for later retrieval, keyed by
// the problem's content hash (see services.HashProblem).
type ProblemRepository interface {
	// Persist problem together with its computed solution under hash,
	// overwriting any existing entry for the same hash.
	SaveProblem(ctx context.Context, hash string, problem domain.Problem, solution domain.AlgorithmSolution) error

	// Retrieve the problem and solution stored under hash. ok is false if no
	// entry exists.
	GetProblem(ctx context.Context, hash string) (problem domain.Problem, solution domain.AlgorithmSolution, ok bool, err error)

	// List the hashes of every persisted problem, oldest first.
	ListProblems(ctx context.Context) ([]string, error)
}
