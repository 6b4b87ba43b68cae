package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres inventory schema.
func InitSQLSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init sql schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init sql schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouses (
		warehouse_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createWarehouseProductsQuery := `
	CREATE TABLE IF NOT EXISTS warehouse_products (
		warehouse_id INTEGER NOT NULL REFERENCES warehouses(warehouse_id),
		title TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		PRIMARY KEY (warehouse_id, title)
	);
	`

	createCustomersQuery := `
	CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_warehouse_products_title_quantity
	ON warehouse_products(title, quantity);
	`

	statements := []string{
		createWarehousesQuery,
		createWarehouseProductsQuery,
		createCustomersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init sql schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init sql schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with inventory data from a JSON file.
func SeedSQLFromJSON(db *sql.DB, jsonPath string) error {
	seed, err := loadSeed(jsonPath)
	if err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed inventory: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	warehouseStmt, err := tx.Prepare(`
	INSERT INTO warehouses (warehouse_id, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (warehouse_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("seed inventory: prepare warehouse insert: %w", err)
	}
	defer warehouseStmt.Close()

	productStmt, err := tx.Prepare(`
	INSERT INTO warehouse_products (warehouse_id, title, quantity)
	VALUES ($1, $2, $3)
	ON CONFLICT (warehouse_id, title) DO UPDATE
	SET quantity = EXCLUDED.quantity;
	`)
	if err != nil {
		return fmt.Errorf("seed inventory: prepare product insert: %w", err)
	}
	defer productStmt.Close()

	customerStmt, err := tx.Prepare(`
	INSERT INTO customers (customer_id, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (customer_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("seed inventory: prepare customer insert: %w", err)
	}
	defer customerStmt.Close()

	for _, w := range seed.Warehouses {
		if _, err := warehouseStmt.Exec(w.WarehouseID, w.Name, w.Lat, w.Lng); err != nil {
			return fmt.Errorf("seed inventory: insert warehouse_id=%d: %w", w.WarehouseID, err)
		}
		for title, qty := range w.Products {
			if _, err := productStmt.Exec(w.WarehouseID, title, qty); err != nil {
				return fmt.Errorf("seed inventory: insert product %q for warehouse_id=%d: %w", title, w.WarehouseID, err)
			}
		}
	}

	for _, c := range seed.Customers {
		if _, err := customerStmt.Exec(c.CustomerID, c.Name, c.Lat, c.Lng); err != nil {
			return fmt.Errorf("seed inventory: insert customer_id=%d: %w", c.CustomerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed inventory: commit tx: %w", err)
	}

	return nil
}
