package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
	"github.com/AlexShukel/kdp-pdvrp/internal/platform/obs"
	"github.com/AlexShukel/kdp-pdvrp/internal/ports"
	"github.com/AlexShukel/kdp-pdvrp/internal/solver"
)

var foldCaser = cases.Fold()

// HashProblem derives a stable cache/storage key for problem: every
// location hash is case-folded first so that two problems differing only in
// hash casing resolve to the same key, then the canonical JSON encoding is
// digested with xxhash.
func HashProblem(problem domain.Problem) (string, error) {
	normalized := domain.Problem{
		Vehicles: make([]domain.Vehicle, len(problem.Vehicles)),
		Orders:   make([]domain.Order, len(problem.Orders)),
	}
	for i, v := range problem.Vehicles {
		v.StartLocation.Hash = foldCaser.String(v.StartLocation.Hash)
		normalized.Vehicles[i] = v
	}
	for i, o := range problem.Orders {
		o.PickupLocation.Hash = foldCaser.String(o.PickupLocation.Hash)
		o.DeliveryLocation.Hash = foldCaser.String(o.DeliveryLocation.Hash)
		normalized.Orders[i] = o
	}

	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("hash problem: encode: %w", err)
	}

	return fmt.Sprintf("%016x", xxhash.Sum64(payload)), nil
}

// SolveProblemService orchestrates cache lookups, request deduplication, and
// the exact solver, and persists each newly solved problem for later
// retrieval. Cache and Repo are both optional: a nil Cache skips the
// lookaside entirely, and a nil Repo skips persistence.
type SolveProblemService struct {
	Cache ports.SolutionCache
	Repo  ports.ProblemRepository

	group singleflight.Group
}

func NewSolveProblemService(cache ports.SolutionCache, repo ports.ProblemRepository) *SolveProblemService {
	return &SolveProblemService{Cache: cache, Repo: repo}
}

// Solve returns the cached solution for problem if one exists, otherwise
// runs the exact solver exactly once even under concurrent identical
// requests (via singleflight), then populates the cache and the persistent
// repository before returning.
func (s *SolveProblemService) Solve(ctx context.Context, problem domain.Problem) (_ domain.AlgorithmSolution, err error) {
	defer obs.Time(ctx, "services.SolveProblem")(&err)

	hash, err := HashProblem(problem)
	if err != nil {
		return domain.AlgorithmSolution{}, fmt.Errorf("solve problem: %w", err)
	}

	if s.Cache != nil {
		cached, ok, cerr := s.Cache.Get(ctx, hash)
		if cerr != nil {
			return domain.AlgorithmSolution{}, fmt.Errorf("solve problem: cache lookup: %w", cerr)
		}
		if ok {
			return cached, nil
		}
	}

	result, err, _ := s.group.Do(hash, func() (any, error) {
		solution, serr := solver.Solve(problem)
		if serr != nil {
			return nil, fmt.Errorf("solve problem: %w", serr)
		}

		if s.Cache != nil {
			if perr := s.Cache.Put(ctx, hash, solution); perr != nil {
				return nil, fmt.Errorf("solve problem: populate cache: %w", perr)
			}
		}
		if s.Repo != nil {
			if perr := s.Repo.SaveProblem(ctx, hash, problem, solution); perr != nil {
				return nil, fmt.Errorf("solve problem: persist problem: %w", perr)
			}
		}

		return solution, nil
	})
	if err != nil {
		return domain.AlgorithmSolution{}, err
	}

	return result.(domain.AlgorithmSolution), nil
}
