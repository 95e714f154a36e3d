package solver

import "github.com/AlexShukel/kdp-pdvrp/internal/domain"

// criterion selects which of a (vehicle, subset) triple result's three
// paths to materialize during reconstruction.
type criterion int

const (
	criterionDist criterion = iota
	criterionPrice
	criterionEmpty
)

// reconstruct walks assignments in vehicle index order and, for each vehicle
// with a non-empty mask, looks up its cached triple result and materializes
// a VehicleRoute for the requested criterion, per §4.6. The triple result is
// already memoized from the assignment search, so this never re-explores.
func reconstruct(ctx *context, assignments []uint32, crit criterion) domain.ProblemSolution {
	var solution domain.ProblemSolution

	for vIdx, mask := range assignments {
		if mask == 0 {
			continue
		}

		res := solveTSP(ctx, vIdx, mask)
		if !res.valid {
			continue
		}

		var picked tspResult
		switch crit {
		case criterionDist:
			picked = res.minDist
		case criterionPrice:
			picked = res.minPrice
		default:
			picked = res.minEmpty
		}

		stops := make([]domain.RouteStop, 0, picked.path.len)
		for i := uint8(0); i < picked.path.len; i++ {
			node := picked.path.nodes[i]
			orderID := ctx.orders[node/2].ID

			stopType := domain.StopPickup
			if node%2 == 1 {
				stopType = domain.StopDelivery
			}
			stops = append(stops, domain.RouteStop{OrderID: orderID, Type: stopType})
		}

		route := domain.VehicleRoute{
			Stops:         stops,
			TotalDistance: picked.totalDist,
			EmptyDistance: picked.totalEmpty,
			TotalPrice:    picked.totalPrice,
		}

		solution.AddRoute(ctx.vehicles[vIdx].ID, route)
	}

	return solution
}
