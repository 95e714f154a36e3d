package solver

import "github.com/AlexShukel/kdp-pdvrp/internal/domain"

// nodeMatrix is the flat, row-major 2n x 2n table of great-circle distances
// between route nodes: D[i*width+j] == distance(node i, node j). Node 2k is
// the pickup of order k, node 2k+1 is its delivery (a hard invariant used
// throughout the solver).
type nodeMatrix struct {
	values []float64
	width  int
}

func (m nodeMatrix) at(i, j int) float64 {
	return m.values[i*m.width+j]
}

// buildNodeMatrix computes D from the orders' pickup/delivery locations.
// Diagonal entries are implicitly zero (distance never writes them).
func buildNodeMatrix(orders []domain.Order) nodeMatrix {
	n := len(orders)
	width := 2 * n
	values := make([]float64, width*width)

	nodeLoc := func(idx int) domain.Location {
		orderIdx := idx / 2
		if idx%2 == 0 {
			return orders[orderIdx].PickupLocation
		}
		return orders[orderIdx].DeliveryLocation
	}

	for i := 0; i < width; i++ {
		li := nodeLoc(i)
		for j := 0; j < width; j++ {
			if i == j {
				continue
			}
			lj := nodeLoc(j)
			values[i*width+j] = distance(li.Latitude, li.Longitude, lj.Latitude, lj.Longitude)
		}
	}

	return nodeMatrix{values: values, width: width}
}

// vehicleStartMatrix is the flat |vehicles| x n table of distances from each
// vehicle's start location to each order's pickup: S[v*n+k].
type vehicleStartMatrix struct {
	values []float64
	width  int
}

func (m vehicleStartMatrix) at(v, k int) float64 {
	return m.values[v*m.width+k]
}

func buildVehicleStartMatrix(vehicles []domain.Vehicle, orders []domain.Order) vehicleStartMatrix {
	n := len(orders)
	values := make([]float64, len(vehicles)*n)

	for vi, v := range vehicles {
		for oi, o := range orders {
			values[vi*n+oi] = distance(
				v.StartLocation.Latitude, v.StartLocation.Longitude,
				o.PickupLocation.Latitude, o.PickupLocation.Longitude,
			)
		}
	}

	return vehicleStartMatrix{values: values, width: n}
}
