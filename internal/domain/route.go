package domain

// Stop is a routable point in the visit sequence: a warehouse or the customer.
type Stop struct {
	Name     string
	Location Coordinates
}

// RouteLeg is one directed segment between two consecutive stops, with the
// resolved road distance. Immutable once created.
type RouteLeg struct {
	From            Stop
	To              Stop
	DistanceKm      float64
	DurationSeconds float64
}

// RouteResult is the planned multi-leg delivery route for a single order.
// The warehouse sequence preserves the order in which warehouses were first
// required by the order's line items, with duplicates collapsed; the final
// leg's destination is always the customer. It is planning output only and
// contains no side effects.
type RouteResult struct {
	Stops           []Stop
	Legs            []RouteLeg
	TotalDistanceKm float64
	FuelCost        float64
}
