package ports

import (
	"context"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
)

// SolutionCache is a fast lookaside cache for previously computed
// AlgorithmSolutions, keyed by problem hash. A missing entry reports
// ok == false rather than an error.
type SolutionCache interface {
	Get(ctx context.Context, key string) (solution domain.AlgorithmSolution, ok bool, err error)
	Put(ctx context.Context, key string, solution domain.AlgorithmSolution) error
}
