package handlers

import (
	"log"
	"net/http"

	"github.com/isstep/logistics-route-optimization/internal/api/dto"
	"github.com/isstep/logistics-route-optimization/internal/ports"
)

// WarehouseHandler exposes read-only warehouse retrieval endpoints.
type WarehouseHandler struct {
	Directory ports.InventoryDirectory
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	warehouses, err := h.Directory.ListWarehouses(r.Context())
	if err != nil {
		log.Printf("list warehouses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWarehousesResponse{
		Warehouses: make([]dto.WarehouseResponse, 0, len(warehouses)),
	}
	for _, wh := range warehouses {
		res.Warehouses = append(res.Warehouses, dto.WarehouseResponse{
			WarehouseID: wh.WarehouseID,
			Name:        wh.Name,
			Location: dto.LocationResponse{
				Lat: wh.Location.Lat,
				Lng: wh.Location.Lon,
			},
			Products: wh.Products,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
