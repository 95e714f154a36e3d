package dto

import "github.com/AlexShukel/kdp-pdvrp/internal/domain"

type LocationRequest struct {
	Hash      string  `json:"hash"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type VehicleRequest struct {
	ID            uint32          `json:"id"`
	StartLocation LocationRequest `json:"start_location"`
	PriceKM       float64         `json:"price_km"`
}

type OrderRequest struct {
	ID               uint32          `json:"id"`
	PickupLocation   LocationRequest `json:"pickup_location"`
	DeliveryLocation LocationRequest `json:"delivery_location"`
	LoadFactor       float64         `json:"load_factor"`
}

// SolveRequest is the JSON body of POST /solve: a fleet of vehicles and the
// orders to assign and sequence across them.
type SolveRequest struct {
	Vehicles []VehicleRequest `json:"vehicles"`
	Orders   []OrderRequest   `json:"orders"`
}

func (req SolveRequest) ToDomain() domain.Problem {
	vehicles := make([]domain.Vehicle, len(req.Vehicles))
	for i, v := range req.Vehicles {
		vehicles[i] = domain.Vehicle{
			ID:            v.ID,
			StartLocation: domain.Location(v.StartLocation),
			PriceKM:       v.PriceKM,
		}
	}

	orders := make([]domain.Order, len(req.Orders))
	for i, o := range req.Orders {
		orders[i] = domain.Order{
			ID:               o.ID,
			PickupLocation:   domain.Location(o.PickupLocation),
			DeliveryLocation: domain.Location(o.DeliveryLocation),
			LoadFactor:       o.LoadFactor,
		}
	}

	return domain.Problem{Vehicles: vehicles, Orders: orders}
}

// FromDomainProblem renders a domain.Problem back into its request shape,
// for display alongside its stored solution.
func FromDomainProblem(p domain.Problem) SolveRequest {
	vehicles := make([]VehicleRequest, len(p.Vehicles))
	for i, v := range p.Vehicles {
		vehicles[i] = VehicleRequest{
			ID:            v.ID,
			StartLocation: LocationRequest(v.StartLocation),
			PriceKM:       v.PriceKM,
		}
	}

	orders := make([]OrderRequest, len(p.Orders))
	for i, o := range p.Orders {
		orders[i] = OrderRequest{
			ID:               o.ID,
			PickupLocation:   LocationRequest(o.PickupLocation),
			DeliveryLocation: LocationRequest(o.DeliveryLocation),
			LoadFactor:       o.LoadFactor,
		}
	}

	return SolveRequest{Vehicles: vehicles, Orders: orders}
}

type RouteStopResponse struct {
	OrderID uint32 `json:"order_id"`
	Type    string `json:"type"`
}

type VehicleRouteResponse struct {
	Stops         []RouteStopResponse `json:"stops"`
	TotalDistance float64             `json:"total_distance_km"`
	EmptyDistance float64             `json:"empty_distance_km"`
	TotalPrice    float64             `json:"total_price"`
}

type ProblemSolutionResponse struct {
	Routes        map[string]VehicleRouteResponse `json:"routes"`
	TotalDistance float64                         `json:"total_distance_km"`
	EmptyDistance float64                         `json:"empty_distance_km"`
	TotalPrice    float64                         `json:"total_price"`
}

type AlgorithmSolutionResponse struct {
	BestDistanceSolution ProblemSolutionResponse `json:"best_distance_solution"`
	BestPriceSolution    ProblemSolutionResponse `json:"best_price_solution"`
	BestEmptySolution    ProblemSolutionResponse `json:"best_empty_solution"`
}

func FromDomainSolution(sol domain.ProblemSolution) ProblemSolutionResponse {
	routes := make(map[string]VehicleRouteResponse, len(sol.Routes))
	for id, route := range sol.Routes {
		stops := make([]RouteStopResponse, len(route.Stops))
		for i, st := range route.Stops {
			stops[i] = RouteStopResponse{OrderID: st.OrderID, Type: st.Type}
		}
		routes[id] = VehicleRouteResponse{
			Stops:         stops,
			TotalDistance: route.TotalDistance,
			EmptyDistance: route.EmptyDistance,
			TotalPrice:    route.TotalPrice,
		}
	}

	return ProblemSolutionResponse{
		Routes:        routes,
		TotalDistance: sol.TotalDistance,
		EmptyDistance: sol.EmptyDistance,
		TotalPrice:    sol.TotalPrice,
	}
}

func FromAlgorithmSolution(sol domain.AlgorithmSolution) AlgorithmSolutionResponse {
	return AlgorithmSolutionResponse{
		BestDistanceSolution: FromDomainSolution(sol.BestDistanceSolution),
		BestPriceSolution:    FromDomainSolution(sol.BestPriceSolution),
		BestEmptySolution:    FromDomainSolution(sol.BestEmptySolution),
	}
}

type ListProblemsResponse struct {
	ProblemHashes []string `json:"problem_hashes"`
}

type ProblemResponse struct {
	Problem  SolveRequest              `json:"problem"`
	Solution AlgorithmSolutionResponse `json:"solution"`
}
