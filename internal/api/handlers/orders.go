package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/isstep/logistics-route-optimization/internal/api/dto"
	"github.com/isstep/logistics-route-optimization/internal/domain"
	"github.com/isstep/logistics-route-optimization/internal/services"
)

type OrderHandler struct {
	Builder *services.RouteBuilder
}

// ProcessOrder builds a multi-leg delivery route for a single incoming order.
// Failures map onto client-visible statuses: unknown customer 404,
// unsatisfiable line item 422, provider failure 502.
func (h *OrderHandler) ProcessOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OrderRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	order := domain.Order{
		CustomerID: req.CustomerID,
		Lines:      make([]domain.OrderLine, 0, len(req.Foods)),
	}
	for _, f := range req.Foods {
		if strings.TrimSpace(f.Title) == "" {
			writeError(w, r, http.StatusBadRequest, "food title is required")
			return
		}
		if f.Quantity <= 0 {
			writeError(w, r, http.StatusBadRequest, "food quantity must be positive")
			return
		}
		order.Lines = append(order.Lines, domain.OrderLine{Title: f.Title, Quantity: f.Quantity})
	}

	result, err := h.Builder.BuildRoute(r.Context(), order)
	if err != nil {
		writeBuildError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(result))
}

// Translate the failure taxonomy into a structured client error. All three
// conditions are terminal for the order; nothing is retried here.
func writeBuildError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.CustomerNotFoundError
	if errors.As(err, &notFound) {
		log.Printf("process order rejected: %v", err)
		writeError(w, r, http.StatusNotFound, notFound.Error())
		return
	}

	var unavailable *domain.ProductUnavailableError
	if errors.As(err, &unavailable) {
		log.Printf("process order rejected: %v", err)
		writeError(w, r, http.StatusUnprocessableEntity, unavailable.Error())
		return
	}

	var noDistance *domain.DistanceUnavailableError
	if errors.As(err, &noDistance) {
		log.Printf("process order failed: %v", err)
		writeError(w, r, http.StatusBadGateway, noDistance.Error())
		return
	}

	log.Printf("process order failed: %v", err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func toRouteResponse(result *domain.RouteResult) dto.RouteResponse {
	res := dto.RouteResponse{
		Stops:           make([]dto.StopResponse, 0, len(result.Stops)),
		Legs:            make([]dto.LegResponse, 0, len(result.Legs)),
		TotalDistanceKm: result.TotalDistanceKm,
		FuelCost:        result.FuelCost,
	}

	for _, s := range result.Stops {
		res.Stops = append(res.Stops, toStopResponse(s))
	}
	for _, leg := range result.Legs {
		res.Legs = append(res.Legs, dto.LegResponse{
			From:            toStopResponse(leg.From),
			To:              toStopResponse(leg.To),
			DistanceKm:      leg.DistanceKm,
			DurationSeconds: leg.DurationSeconds,
		})
	}

	return res
}

func toStopResponse(s domain.Stop) dto.StopResponse {
	return dto.StopResponse{
		Name: s.Name,
		Location: dto.LocationResponse{
			Lat: s.Location.Lat,
			Lng: s.Location.Lon,
		},
	}
}
