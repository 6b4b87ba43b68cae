package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/isstep/logistics-route-optimization/internal/domain"
)

const seedJSON = `{
  "warehouses": [
    {
      "warehouse_id": 1,
      "name": "Warehouse 1",
      "lat": 53.9045,
      "lng": 27.559,
      "products": {"Ground Coffee": 10, "Wafers": 20}
    },
    {
      "warehouse_id": 2,
      "name": "Warehouse 2",
      "lat": 53.906,
      "lng": 27.545,
      "products": {"Coca-Cola": 50}
    }
  ],
  "customers": [
    {"customer_id": 1, "name": "Customer 1", "lat": 53.901, "lng": 27.558}
  ]
}`

func newSeededSqliteDirectory(t *testing.T) *SqliteInventoryDirectory {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	seedPath := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(seedPath, []byte(seedJSON), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedFromJSON(db, seedPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return NewSqliteInventoryDirectory(db)
}

func TestSqliteFindWarehouseSupplying(t *testing.T) {
	d := newSeededSqliteDirectory(t)

	w, err := d.FindWarehouseSupplying(context.Background(), "Coca-Cola", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.WarehouseID != 2 {
		t.Errorf("WarehouseID = %d, want 2", w.WarehouseID)
	}
	if w.Products["Coca-Cola"] != 50 {
		t.Errorf("Products[Coca-Cola] = %d, want 50", w.Products["Coca-Cola"])
	}

	_, err = d.FindWarehouseSupplying(context.Background(), "Coca-Cola", 51)
	var unavailable *domain.ProductUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want ProductUnavailableError", err)
	}
}

func TestSqliteFindCustomer(t *testing.T) {
	d := newSeededSqliteDirectory(t)

	c, err := d.FindCustomer(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Customer 1" {
		t.Errorf("Name = %q, want %q", c.Name, "Customer 1")
	}

	_, err = d.FindCustomer(context.Background(), 9)
	var notFound *domain.CustomerNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want CustomerNotFoundError", err)
	}
}

func TestSqliteListWarehouses(t *testing.T) {
	d := newSeededSqliteDirectory(t)

	warehouses, err := d.ListWarehouses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warehouses) != 2 {
		t.Fatalf("expected 2 warehouses, got %d", len(warehouses))
	}
	if warehouses[0].WarehouseID != 1 || warehouses[1].WarehouseID != 2 {
		t.Errorf("warehouses not ordered by ID")
	}
	if len(warehouses[0].Products) != 2 {
		t.Errorf("warehouse 1 products = %d, want 2", len(warehouses[0].Products))
	}
}
