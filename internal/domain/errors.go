package domain

import "fmt"

// CustomerNotFoundError reports an order referencing a customer identifier
// with no matching record.
type CustomerNotFoundError struct {
	CustomerID int
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %d not found", e.CustomerID)
}

// ProductUnavailableError reports a line item that no single warehouse can
// supply in the requested quantity.
type ProductUnavailableError struct {
	Title    string
	Quantity int
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %q unavailable in quantity %d", e.Title, e.Quantity)
}

// DistanceUnavailableError reports that the external routing provider failed
// or returned no usable route for one leg. Terminal for the current order:
// no partial route is returned.
type DistanceUnavailableError struct {
	From string
	To   string
	Err  error
}

func (e *DistanceUnavailableError) Error() string {
	return fmt.Sprintf("distance unavailable between %q and %q: %v", e.From, e.To, e.Err)
}

func (e *DistanceUnavailableError) Unwrap() error { return e.Err }
