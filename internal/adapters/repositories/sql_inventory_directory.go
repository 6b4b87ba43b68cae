package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isstep/logistics-route-optimization/internal/domain"
	"github.com/isstep/logistics-route-optimization/internal/platform/obs"
)

// Postgres-backed implementation of the InventoryDirectory port.
// Schema and seed are managed by cmd/dbtool.
type SQLInventoryDirectory struct{ DB *sql.DB }

func NewSQLInventoryDirectory(db *sql.DB) *SQLInventoryDirectory {
	return &SQLInventoryDirectory{DB: db}
}

// Return the lowest-ID warehouse whose stock for the exact title covers the
// full requested quantity.
func (s *SQLInventoryDirectory) FindWarehouseSupplying(
	ctx context.Context,
	title string,
	quantity int,
) (_ *domain.Warehouse, err error) {
	defer obs.Time(ctx, "inventory.FindWarehouseSupplying")(&err)

	if s.DB == nil {
		return nil, errors.New("sql inventory directory: DB is nil")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("find warehouse: quantity must be positive, got %d", quantity)
	}

	query := `
	SELECT w.warehouse_id, w.name, w.lat, w.lon
	FROM warehouses w
	JOIN warehouse_products p ON p.warehouse_id = w.warehouse_id
	WHERE p.title = $1 AND p.quantity >= $2
	ORDER BY w.warehouse_id
	LIMIT 1;
	`

	var w domain.Warehouse
	scanErr := s.DB.QueryRowContext(ctx, query, title, quantity).
		Scan(&w.WarehouseID, &w.Name, &w.Location.Lat, &w.Location.Lon)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, &domain.ProductUnavailableError{Title: title, Quantity: quantity}
	}
	if scanErr != nil {
		return nil, fmt.Errorf("find warehouse: query warehouses: %w", scanErr)
	}

	products, err := s.loadProducts(ctx, w.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("find warehouse: %w", err)
	}
	w.Products = products

	return &w, nil
}

// Return the customer with the given identifier.
func (s *SQLInventoryDirectory) FindCustomer(
	ctx context.Context,
	customerID int,
) (_ *domain.Customer, err error) {
	defer obs.Time(ctx, "inventory.FindCustomer")(&err)

	if s.DB == nil {
		return nil, errors.New("sql inventory directory: DB is nil")
	}

	query := `
	SELECT customer_id, name, lat, lon
	FROM customers
	WHERE customer_id = $1;
	`

	var c domain.Customer
	scanErr := s.DB.QueryRowContext(ctx, query, customerID).
		Scan(&c.CustomerID, &c.Name, &c.Location.Lat, &c.Location.Lon)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, &domain.CustomerNotFoundError{CustomerID: customerID}
	}
	if scanErr != nil {
		return nil, fmt.Errorf("find customer: query customers: %w", scanErr)
	}

	return &c, nil
}

// Return all warehouses with their inventories, ordered by warehouse ID.
func (s *SQLInventoryDirectory) ListWarehouses(ctx context.Context) (_ []*domain.Warehouse, err error) {
	defer obs.Time(ctx, "inventory.ListWarehouses")(&err)

	if s.DB == nil {
		return nil, errors.New("sql inventory directory: DB is nil")
	}

	query := `
	SELECT warehouse_id, name, lat, lon
	FROM warehouses
	ORDER BY warehouse_id;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query warehouses: %w", err)
	}
	defer rows.Close()

	warehouses := make([]*domain.Warehouse, 0, 8)
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.WarehouseID, &w.Name, &w.Location.Lat, &w.Location.Lon); err != nil {
			return nil, fmt.Errorf("list warehouses: scan row: %w", err)
		}
		warehouses = append(warehouses, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: row iteration: %w", err)
	}

	for _, w := range warehouses {
		products, err := s.loadProducts(ctx, w.WarehouseID)
		if err != nil {
			return nil, fmt.Errorf("list warehouses: %w", err)
		}
		w.Products = products
	}

	return warehouses, nil
}

func (s *SQLInventoryDirectory) loadProducts(ctx context.Context, warehouseID int) (map[string]int, error) {
	query := `
	SELECT title, quantity
	FROM warehouse_products
	WHERE warehouse_id = $1;
	`

	rows, err := s.DB.QueryContext(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load products for warehouse_id=%d: %w", warehouseID, err)
	}
	defer rows.Close()

	products := make(map[string]int)
	for rows.Next() {
		var title string
		var qty int
		if err := rows.Scan(&title, &qty); err != nil {
			return nil, fmt.Errorf("load products: scan row: %w", err)
		}
		products[title] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load products: row iteration: %w", err)
	}

	return products, nil
}
