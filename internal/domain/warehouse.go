package domain

// Warehouse is a stocked pickup point for order line items.
// Inventory is loaded once at process start and treated as read-only:
// no reservation or decrement happens during route construction.
type Warehouse struct {
	WarehouseID int
	Name        string
	Location    Coordinates
	Products    map[string]int
}

// CanSupply reports whether the warehouse fully covers one line item.
// Titles must match inventory keys exactly; partial fulfillment across
// warehouses is not supported.
func (w *Warehouse) CanSupply(title string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	return w.Products[title] >= quantity
}
