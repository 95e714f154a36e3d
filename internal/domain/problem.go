package domain

import "fmt"

// MaxOrders bounds the number of orders the exact solver accepts: the memo
// table is sized |vehicles| * 2^n, and the path buffer width is 2n.
const MaxOrders = 16

// A Problem is the external input to the solver: a fleet of vehicles and a
// set of pickup-and-delivery orders to assign and sequence across them.
type Problem struct {
	Vehicles []Vehicle
	Orders   []Order
}

// Validate checks the input constraints the solver relies on (§6): at least
// one vehicle, at most MaxOrders orders, positive load factors, coordinates
// in range, and non-negative prices. It does not mutate the Problem.
func (p Problem) Validate() error {
	if len(p.Vehicles) == 0 {
		return fmt.Errorf("validate problem: at least one vehicle is required")
	}
	if len(p.Orders) > MaxOrders {
		return fmt.Errorf("validate problem: %d orders exceeds the maximum of %d", len(p.Orders), MaxOrders)
	}

	for i, v := range p.Vehicles {
		if v.PriceKM < 0 {
			return fmt.Errorf("validate problem: vehicle[%d] id=%d has negative price_km=%v", i, v.ID, v.PriceKM)
		}
		if err := validateLocation(v.StartLocation); err != nil {
			return fmt.Errorf("validate problem: vehicle[%d] id=%d: %w", i, v.ID, err)
		}
	}

	for i, o := range p.Orders {
		if o.LoadFactor <= 0 {
			return fmt.Errorf("validate problem: order[%d] id=%d has non-positive load_factor=%v", i, o.ID, o.LoadFactor)
		}
		if err := validateLocation(o.PickupLocation); err != nil {
			return fmt.Errorf("validate problem: order[%d] id=%d pickup: %w", i, o.ID, err)
		}
		if err := validateLocation(o.DeliveryLocation); err != nil {
			return fmt.Errorf("validate problem: order[%d] id=%d delivery: %w", i, o.ID, err)
		}
	}

	return nil
}

func validateLocation(loc Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", loc.Longitude)
	}
	return nil
}
