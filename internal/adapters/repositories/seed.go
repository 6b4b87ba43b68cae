package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type WarehouseSeed struct {
	WarehouseID int            `json:"warehouse_id"`
	Name        string         `json:"name"`
	Lat         float64        `json:"lat"`
	Lng         float64        `json:"lng"`
	Products    map[string]int `json:"products"`
}

type CustomerSeed struct {
	CustomerID int     `json:"customer_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

type InventorySeed struct {
	Warehouses []WarehouseSeed `json:"warehouses"`
	Customers  []CustomerSeed  `json:"customers"`
}

// Load and validate seed inventory from a JSON file.
func loadSeed(jsonPath string) (*InventorySeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var seed InventorySeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	for i, w := range seed.Warehouses {
		if w.WarehouseID <= 0 {
			return nil, fmt.Errorf("load seed: invalid warehouse_id at index %d: %d", i, w.WarehouseID)
		}
		if strings.TrimSpace(w.Name) == "" {
			return nil, fmt.Errorf("load seed: warehouse %d: name cannot be empty", w.WarehouseID)
		}
		for title, qty := range w.Products {
			if strings.TrimSpace(title) == "" {
				return nil, fmt.Errorf("load seed: warehouse %d: empty product title", w.WarehouseID)
			}
			if qty < 0 {
				return nil, fmt.Errorf("load seed: warehouse %d: product %q has negative quantity %d", w.WarehouseID, title, qty)
			}
		}
	}

	for i, c := range seed.Customers {
		if c.CustomerID <= 0 {
			return nil, fmt.Errorf("load seed: invalid customer_id at index %d: %d", i, c.CustomerID)
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("load seed: customer %d: name cannot be empty", c.CustomerID)
		}
	}

	return &seed, nil
}
