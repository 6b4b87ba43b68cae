package ports

import (
	"context"

	"github.com/isstep/logistics-route-optimization/internal/domain"
)

// Road distance and travel duration for one route leg.
type DistanceResult struct {
	DistanceKm      float64
	DurationSeconds float64
}

// Contract for resolving driving-network distance between two points.
type DistanceProvider interface {
	// Return road distance between origin and destination. A single attempt
	// per call: no retry, no caching. The caller decides whether a failure
	// aborts the whole order.
	RoadDistance(ctx context.Context, origin, destination domain.Coordinates) (DistanceResult, error)
}
