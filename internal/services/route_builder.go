package services

import (
	"context"
	"fmt"

	"github.com/isstep/logistics-route-optimization/internal/domain"
	"github.com/isstep/logistics-route-optimization/internal/ports"
)

// RouteBuilder constructs a multi-leg delivery route for one order.
//
// Warehouses are visited in the order they are first required by the order's
// line items (no TSP-style minimization); the customer is always the final
// stop. Leg distances are resolved sequentially through the DistanceProvider
// and the first failure aborts the whole order: no partial route is ever
// returned. The directory is read-only during the call, so concurrent orders
// can share one builder.
type RouteBuilder struct {
	directory ports.InventoryDirectory
	provider  ports.DistanceProvider
	estimator FuelEstimator
}

func NewRouteBuilder(
	directory ports.InventoryDirectory,
	provider ports.DistanceProvider,
	estimator FuelEstimator,
) *RouteBuilder {
	return &RouteBuilder{
		directory: directory,
		provider:  provider,
		estimator: estimator,
	}
}

func (b *RouteBuilder) BuildRoute(ctx context.Context, order domain.Order) (*domain.RouteResult, error) {
	// Resolve the customer first: an unknown customer fails before any
	// provider I/O happens.
	customer, err := b.directory.FindCustomer(ctx, order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("build route: find customer %d: %w", order.CustomerID, err)
	}

	// One supplying warehouse per line item, duplicates collapsed while
	// preserving first-required order.
	seen := make(map[int]struct{}, len(order.Lines))
	warehouses := make([]*domain.Warehouse, 0, len(order.Lines))
	for _, line := range order.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("build route: line %q: quantity must be positive, got %d", line.Title, line.Quantity)
		}

		w, err := b.directory.FindWarehouseSupplying(ctx, line.Title, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("build route: resolve line %q: %w", line.Title, err)
		}

		if _, ok := seen[w.WarehouseID]; ok {
			continue
		}
		seen[w.WarehouseID] = struct{}{}
		warehouses = append(warehouses, w)
	}

	stops := make([]domain.Stop, 0, len(warehouses)+1)
	for _, w := range warehouses {
		stops = append(stops, domain.Stop{Name: w.Name, Location: w.Location})
	}
	stops = append(stops, domain.Stop{Name: customer.Name, Location: customer.Location})

	// A zero-line order is a valid no-op: the customer alone, nothing to
	// drive, total distance 0.
	legs := make([]domain.RouteLeg, 0, len(stops)-1)
	totalKm := 0.0
	for i := 0; i+1 < len(stops); i++ {
		from, to := stops[i], stops[i+1]

		result, err := b.provider.RoadDistance(ctx, from.Location, to.Location)
		if err != nil {
			return nil, fmt.Errorf("build route: %w", &domain.DistanceUnavailableError{
				From: from.Name,
				To:   to.Name,
				Err:  err,
			})
		}

		totalKm += result.DistanceKm
		legs = append(legs, domain.RouteLeg{
			From:            from,
			To:              to,
			DistanceKm:      result.DistanceKm,
			DurationSeconds: result.DurationSeconds,
		})
	}

	return &domain.RouteResult{
		Stops:           stops,
		Legs:            legs,
		TotalDistanceKm: totalKm,
		FuelCost:        b.estimator.Cost(totalKm),
	}, nil
}
