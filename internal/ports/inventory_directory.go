package ports

import (
	"context"

	"github.com/isstep/logistics-route-optimization/internal/domain"
)

// Port: a read-only boundary over warehouse and customer reference data.
// The directory is immutable during request processing, so concurrent
// orders can share one instance without coordination.
//
// Lookup misses are reported as *domain.ProductUnavailableError and
// *domain.CustomerNotFoundError respectively.
type InventoryDirectory interface {
	// Return a warehouse whose recorded stock for the exact product title
	// covers the full requested quantity. When several qualify, the lowest
	// warehouse ID wins.
	FindWarehouseSupplying(ctx context.Context, title string, quantity int) (*domain.Warehouse, error)

	// Return the customer with the given identifier.
	FindCustomer(ctx context.Context, customerID int) (*domain.Customer, error)

	// Retrieve all warehouses, ordered by warehouse ID.
	ListWarehouses(ctx context.Context) ([]*domain.Warehouse, error)
}
