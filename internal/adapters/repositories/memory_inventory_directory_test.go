package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/isstep/logistics-route-optimization/internal/domain"
)

func testMemoryDirectory() *MemoryInventoryDirectory {
	warehouses := []*domain.Warehouse{
		{
			WarehouseID: 3,
			Name:        "Warehouse 3",
			Location:    domain.Coordinates{Lon: 27.557, Lat: 53.91},
			Products:    map[string]int{"Fanta": 40, "Coca-Cola": 5},
		},
		{
			WarehouseID: 2,
			Name:        "Warehouse 2",
			Location:    domain.Coordinates{Lon: 27.545, Lat: 53.906},
			Products:    map[string]int{"Coca-Cola": 50},
		},
	}
	customers := []*domain.Customer{
		{CustomerID: 1, Name: "Customer 1", Location: domain.Coordinates{Lon: 27.558, Lat: 53.901}},
	}
	return NewMemoryInventoryDirectory(warehouses, customers)
}

func TestMemoryFindWarehouseSupplyingLowestIDWins(t *testing.T) {
	d := testMemoryDirectory()

	// Both warehouses hold Coca-Cola for small quantities.
	w, err := d.FindWarehouseSupplying(context.Background(), "Coca-Cola", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.WarehouseID != 2 {
		t.Errorf("WarehouseID = %d, want 2", w.WarehouseID)
	}
}

func TestMemoryFindWarehouseSupplyingQuantityBoundary(t *testing.T) {
	d := testMemoryDirectory()

	if _, err := d.FindWarehouseSupplying(context.Background(), "Coca-Cola", 50); err != nil {
		t.Fatalf("full stock quantity should be supplyable: %v", err)
	}

	_, err := d.FindWarehouseSupplying(context.Background(), "Coca-Cola", 51)
	var unavailable *domain.ProductUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want ProductUnavailableError", err)
	}
	if unavailable.Title != "Coca-Cola" || unavailable.Quantity != 51 {
		t.Errorf("unexpected error detail: %+v", unavailable)
	}
}

func TestMemoryFindCustomerNotFound(t *testing.T) {
	d := testMemoryDirectory()

	_, err := d.FindCustomer(context.Background(), 42)
	var notFound *domain.CustomerNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want CustomerNotFoundError", err)
	}
	if notFound.CustomerID != 42 {
		t.Errorf("CustomerID = %d, want 42", notFound.CustomerID)
	}
}

func TestMemoryListWarehousesOrdered(t *testing.T) {
	d := testMemoryDirectory()

	warehouses, err := d.ListWarehouses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warehouses) != 2 {
		t.Fatalf("expected 2 warehouses, got %d", len(warehouses))
	}
	if warehouses[0].WarehouseID != 2 || warehouses[1].WarehouseID != 3 {
		t.Errorf("warehouses not ordered by ID: %d, %d", warehouses[0].WarehouseID, warehouses[1].WarehouseID)
	}
}
