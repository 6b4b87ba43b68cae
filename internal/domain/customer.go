package domain

// Delivery recipient. Static reference data, immutable after startup.
type Customer struct {
	CustomerID int
	Name       string
	Location   Coordinates
}
