package solver

// solveRecursive explores every way to partition the yet-uncovered orders
// across vehicles [vIdx..len(vehicles)), one vehicle per recursion level.
// assignments is mutated in place and restored on backtrack; aggDist/
// aggPrice/aggEmpty are the running per-objective totals assuming each
// vehicle independently picks the path optimal for that objective (§4.5 —
// a deliberate design choice: the three winners are NOT required to share a
// single per-vehicle plan).
func solveRecursive(ctx *context, vIdx int, coveredMask uint32, aggDist, aggPrice, aggEmpty float64, assignments []uint32) {
	// Global pruning: once every objective is already dominated, no
	// completion below this branch can improve any of them.
	if aggDist >= ctx.bestDist.value && aggPrice >= ctx.bestPrice.value && aggEmpty >= ctx.bestEmpty.value {
		return
	}

	if coveredMask == ctx.fullMask {
		if aggDist < ctx.bestDist.value {
			ctx.bestDist.value = aggDist
			copy(ctx.bestDist.assignments, assignments)
		}
		if aggPrice < ctx.bestPrice.value {
			ctx.bestPrice.value = aggPrice
			copy(ctx.bestPrice.assignments, assignments)
		}
		if aggEmpty < ctx.bestEmpty.value {
			ctx.bestEmpty.value = aggEmpty
			copy(ctx.bestEmpty.assignments, assignments)
		}
		return
	}

	if vIdx >= len(ctx.vehicles) {
		return
	}

	remaining := ctx.fullMask ^ coveredMask

	// Walk every non-empty submask of remaining in descending numeric order
	// (the standard s = (s-1) & remaining trick).
	for sub := remaining; sub != 0; sub = (sub - 1) & remaining {
		res := solveTSP(ctx, vIdx, sub)
		if !res.valid {
			continue
		}

		assignments[vIdx] = sub
		solveRecursive(
			ctx, vIdx+1, coveredMask|sub,
			aggDist+res.minDist.totalDist,
			aggPrice+res.minPrice.totalPrice,
			aggEmpty+res.minEmpty.totalEmpty,
			assignments,
		)
		assignments[vIdx] = 0
	}

	// Also try leaving this vehicle unused entirely.
	solveRecursive(ctx, vIdx+1, coveredMask, aggDist, aggPrice, aggEmpty, assignments)
}
