package api

import (
	"net/http"

	"github.com/isstep/logistics-route-optimization/internal/api/handlers"
	"github.com/isstep/logistics-route-optimization/internal/ports"
	"github.com/isstep/logistics-route-optimization/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(directory ports.InventoryDirectory, builder *services.RouteBuilder) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Builder: builder}
	warehouseHandler := &handlers.WarehouseHandler{Directory: directory}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/warehouses", warehouseHandler.List)
	mux.HandleFunc("/process-order", orderHandler.ProcessOrder)

	return loggingMiddleware(corsMiddleware(mux))
}
