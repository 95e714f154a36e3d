package solver

// solveTSP returns the cached or freshly-computed triple result for
// (vehicle vIdx, order subset targetMask): the three paths minimizing
// distance, empty distance, and price respectively under the vehicle's
// single capacity constraint. The result is memoized and computed at most
// once per (vehicle, subset) key (§4.4).
func solveTSP(ctx *context, vIdx int, targetMask uint32) tripleResult {
	idx := ctx.memoIndex(vIdx, targetMask)
	if ctx.memo[idx].filled {
		return ctx.memo[idx].result
	}

	s := &tspSearch{
		ctx:          ctx,
		vIdx:         vIdx,
		vehiclePrice: ctx.vehicles[vIdx].PriceKM,
		targetMask:   targetMask,
	}
	s.bestDist.value = posInf
	s.bestEmpty.value = posInf
	s.bestPrice.value = posInf

	s.dfs(-1, 0, 0, 0, 0, 0, 0, pathBuffer{})

	var result tripleResult
	if s.bestDist.value < posInf {
		result = tripleResult{
			minDist:  tspResult{path: s.bestDist.path, totalDist: s.bestDist.value, totalEmpty: s.bestDist.other1, totalPrice: s.bestDist.other2},
			minEmpty: tspResult{path: s.bestEmpty.path, totalDist: s.bestEmpty.other1, totalEmpty: s.bestEmpty.value, totalPrice: s.bestEmpty.other2},
			minPrice: tspResult{path: s.bestPrice.path, totalDist: s.bestPrice.other1, totalEmpty: s.bestPrice.other2, totalPrice: s.bestPrice.value},
			valid:    true,
		}
	} else {
		result = tripleResult{valid: false}
	}

	ctx.memo[idx] = memoSlot{result: result, filled: true}
	return result
}

// objectiveBest tracks the winning path for a single objective during one
// subset's DFS, plus the companion metrics of that winning path (needed so
// C5 can sum the aggregate objectives that were NOT primarily optimized).
type objectiveBest struct {
	value  float64
	path   pathBuffer
	other1 float64
	other2 float64
}

// tspSearch holds the per-call search state for one (vehicle, subset) DFS.
// last is -1 at the root (no node visited yet), else a node index in
// [0, 2*nOrders).
type tspSearch struct {
	ctx          *context
	vIdx         int
	vehiclePrice float64
	targetMask   uint32

	bestDist  objectiveBest
	bestEmpty objectiveBest
	bestPrice objectiveBest
}

// dfs enumerates every valid pickup-and-delivery sequence for targetMask
// from the virtual vehicle-start node, tracking (dist, empty, price, load)
// alongside pickupMask/deliverMask, per spec §4.4.
func (s *tspSearch) dfs(last int, pickupMask, deliverMask uint32, curDist, curEmpty, curPrice, curLoad float64, path pathBuffer) {
	// Local pruning: if every objective is already dominated by the best
	// found so far for this subset, no descendant of this node can improve
	// any of the three (distance/empty/price are monotone non-decreasing
	// along a path).
	if curDist >= s.bestDist.value && curEmpty >= s.bestEmpty.value && curPrice >= s.bestPrice.value {
		return
	}

	if deliverMask == s.targetMask {
		snap := path.snapshot()
		if curDist < s.bestDist.value {
			s.bestDist = objectiveBest{value: curDist, path: snap, other1: curEmpty, other2: curPrice}
		}
		if curEmpty < s.bestEmpty.value {
			s.bestEmpty = objectiveBest{value: curEmpty, path: snap, other1: curDist, other2: curPrice}
		}
		if curPrice < s.bestPrice.value {
			s.bestPrice = objectiveBest{value: curPrice, path: snap, other1: curDist, other2: curEmpty}
		}
		return
	}

	n := s.ctx.nOrders

	for k := 0; k < n; k++ {
		bit := uint32(1) << uint(k)
		if s.targetMask&bit == 0 {
			continue
		}

		order := s.ctx.orders[k]
		loadUnits := order.LoadUnits()

		switch {
		case pickupMask&bit == 0:
			// Pickup branch: order k not yet picked up.
			if curLoad+loadUnits > capacitySlack {
				continue
			}

			var legDist float64
			if last < 0 {
				legDist = s.ctx.starts.at(s.vIdx, k)
			} else {
				legDist = s.ctx.nodes.at(last, 2*k)
			}

			isEmptyLeg := pickupMask == deliverMask
			addEmpty := 0.0
			if isEmptyLeg {
				addEmpty = legDist
			}

			path.nodes[path.len] = uint8(2 * k)
			path.len++

			s.dfs(2*k, pickupMask|bit, deliverMask,
				curDist+legDist, curEmpty+addEmpty, curPrice+legDist*s.vehiclePrice, curLoad+loadUnits,
				path)

			path.len--

		case deliverMask&bit == 0:
			// Delivery branch: order k picked up, not yet delivered. last is
			// always defined here (a delivery can never be the first step).
			legDist := s.ctx.nodes.at(last, 2*k+1)

			path.nodes[path.len] = uint8(2*k + 1)
			path.len++

			s.dfs(2*k+1, pickupMask, deliverMask|bit,
				curDist+legDist, curEmpty, curPrice+legDist*s.vehiclePrice, curLoad-loadUnits,
				path)

			path.len--
		}
	}
}
