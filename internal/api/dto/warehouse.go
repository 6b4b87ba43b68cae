package dto

type WarehouseResponse struct {
	WarehouseID int              `json:"warehouse_id"`
	Name        string           `json:"name"`
	Location    LocationResponse `json:"location"`
	Products    map[string]int   `json:"products"`
}

type ListWarehousesResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}
