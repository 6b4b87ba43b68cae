package repositories

import (
	"context"
	"fmt"
	"slices"

	"github.com/isstep/logistics-route-optimization/internal/domain"
)

// MemoryInventoryDirectory serves warehouses and customers from static
// in-process tables. Used by tests and DB-less runs; lookups behave
// exactly like the SQL adapters (lowest warehouse ID wins).
type MemoryInventoryDirectory struct {
	warehouses []*domain.Warehouse
	customers  map[int]*domain.Customer
}

func NewMemoryInventoryDirectory(
	warehouses []*domain.Warehouse,
	customers []*domain.Customer,
) *MemoryInventoryDirectory {
	sorted := make([]*domain.Warehouse, len(warehouses))
	copy(sorted, warehouses)
	slices.SortFunc(sorted, func(a, b *domain.Warehouse) int {
		return a.WarehouseID - b.WarehouseID
	})

	byID := make(map[int]*domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}

	return &MemoryInventoryDirectory{warehouses: sorted, customers: byID}
}

func (d *MemoryInventoryDirectory) FindWarehouseSupplying(
	_ context.Context,
	title string,
	quantity int,
) (*domain.Warehouse, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("find warehouse: quantity must be positive, got %d", quantity)
	}

	for _, w := range d.warehouses {
		if w.CanSupply(title, quantity) {
			return w, nil
		}
	}

	return nil, &domain.ProductUnavailableError{Title: title, Quantity: quantity}
}

func (d *MemoryInventoryDirectory) FindCustomer(
	_ context.Context,
	customerID int,
) (*domain.Customer, error) {
	c, ok := d.customers[customerID]
	if !ok {
		return nil, &domain.CustomerNotFoundError{CustomerID: customerID}
	}
	return c, nil
}

func (d *MemoryInventoryDirectory) ListWarehouses(_ context.Context) ([]*domain.Warehouse, error) {
	out := make([]*domain.Warehouse, len(d.warehouses))
	copy(out, d.warehouses)
	return out, nil
}
