package solver

import "github.com/AlexShukel/kdp-pdvrp/internal/domain"

// Solve builds a solver context for problem and runs the exhaustive
// assignment search, returning the three per-objective winning solutions
// (§6). Solve runs domain.Problem.Validate first and returns its error
// rather than panicking if any input constraint is violated (§7).
//
// An empty or fully infeasible problem yields the zero-valued
// domain.AlgorithmSolution for every objective that found no completion.
func Solve(problem domain.Problem) (domain.AlgorithmSolution, error) {
	if err := problem.Validate(); err != nil {
		return domain.AlgorithmSolution{}, err
	}

	ctx := newContext(problem)
	assignments := make([]uint32, len(problem.Vehicles))

	solveRecursive(ctx, 0, 0, 0, 0, 0, assignments)

	var out domain.AlgorithmSolution

	if ctx.bestDist.value < posInf {
		out.BestDistanceSolution = reconstruct(ctx, ctx.bestDist.assignments, criterionDist)
	}
	if ctx.bestPrice.value < posInf {
		out.BestPriceSolution = reconstruct(ctx, ctx.bestPrice.assignments, criterionPrice)
	}
	if ctx.bestEmpty.value < posInf {
		out.BestEmptySolution = reconstruct(ctx, ctx.bestEmpty.assignments, criterionEmpty)
	}

	return out, nil
}
