package dto

type OrderLineRequest struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// OrderRequest is the inbound body for /process-order. The customer
// identifier is carried in "id" for compatibility with the frontend.
type OrderRequest struct {
	CustomerID int                `json:"id"`
	Foods      []OrderLineRequest `json:"foods"`
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StopResponse struct {
	Name     string           `json:"name"`
	Location LocationResponse `json:"location"`
}

type LegResponse struct {
	From            StopResponse `json:"from"`
	To              StopResponse `json:"to"`
	DistanceKm      float64      `json:"distance_km"`
	DurationSeconds float64      `json:"duration_seconds"`
}

type RouteResponse struct {
	Stops           []StopResponse `json:"stops"`
	Legs            []LegResponse  `json:"legs"`
	TotalDistanceKm float64        `json:"total_distance_km"`
	FuelCost        float64        `json:"fuel_cost"`
}
