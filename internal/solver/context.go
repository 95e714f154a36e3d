package solver

import "github.com/AlexShukel/kdp-pdvrp/internal/domain"

// capacitySlack absorbs floating-point drift in the capacity check: a
// vehicle may carry load up to capacitySlack (capacity 1 plus a tiny margin)
// before a pickup is refused.
// See spec §4.4 and §9 — this exact value is load-bearing for bit-compatible
// results and is intentionally not configurable.
const capacitySlack = 1.000001

// best tracks one objective's running global optimum across the whole
// assignment search: the lowest aggregate value seen and the assignment
// vector that produced it.
type best struct {
	value       float64
	assignments []uint32
}

// context owns everything one solve() call needs: the input, the
// precomputed matrices, the per-(vehicle,subset) memo, and the three
// monotonically-decreasing global bests. It is built once and is the sole
// mutable state threaded through the search — no global or package-level
// state exists.
type context struct {
	orders   []domain.Order
	vehicles []domain.Vehicle

	nodes    nodeMatrix
	starts   vehicleStartMatrix
	nOrders  int
	fullMask uint32

	// memo[v*2^n+mask] holds the cached triple result for (vehicle v, subset
	// mask), or filled==false if that slot has not been computed yet.
	memo []memoSlot

	bestDist  best
	bestPrice best
	bestEmpty best
}

type memoSlot struct {
	result tripleResult
	filled bool
}

// newContext builds the solver context for a validated problem: runs C1+C2
// to populate the matrices, then allocates the memo and the three bests at
// +Inf. The caller must have already validated problem (see domain.Problem.Validate).
func newContext(p domain.Problem) *context {
	n := len(p.Orders)
	nVehicles := len(p.Vehicles)

	ctx := &context{
		orders:   p.Orders,
		vehicles: p.Vehicles,
		nodes:    buildNodeMatrix(p.Orders),
		starts:   buildVehicleStartMatrix(p.Vehicles, p.Orders),
		nOrders:  n,
		fullMask: (uint32(1) << uint(n)) - 1,
		memo:     make([]memoSlot, nVehicles*(1<<uint(n))),
		bestDist:  best{value: posInf, assignments: make([]uint32, nVehicles)},
		bestPrice: best{value: posInf, assignments: make([]uint32, nVehicles)},
		bestEmpty: best{value: posInf, assignments: make([]uint32, nVehicles)},
	}

	return ctx
}

// memoIndex computes the flat memo slot for (vehicle v_idx, subset mask),
// per spec §4.3: v_idx * 2^n + mask.
func (c *context) memoIndex(vIdx int, mask uint32) int {
	return vIdx*(1<<uint(c.nOrders)) + int(mask)
}
