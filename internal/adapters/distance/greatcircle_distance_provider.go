package distance

import (
	"context"

	"github.com/paulmach/orb/geo"

	"github.com/isstep/logistics-route-optimization/internal/domain"
	"github.com/isstep/logistics-route-optimization/internal/ports"
)

// GreatCircleDistanceProvider estimates legs as straight-line great-circle
// distance. It is for offline and development runs only: it reports no road
// network at all, so totals undershoot real driving routes. The OSRM
// provider never falls back to this estimator.
type GreatCircleDistanceProvider struct {
	// Assumed average road speed used to derive a travel duration.
	SpeedKmh float64
}

func NewGreatCircleDistanceProvider() *GreatCircleDistanceProvider {
	return &GreatCircleDistanceProvider{SpeedKmh: 40}
}

func (p *GreatCircleDistanceProvider) RoadDistance(
	_ context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (ports.DistanceResult, error) {
	km := geo.Distance(origin.Point(), destination.Point()) / 1000

	speed := p.SpeedKmh
	if speed <= 0 {
		speed = 40
	}

	return ports.DistanceResult{
		DistanceKm:      km,
		DurationSeconds: km / speed * 3600,
	}, nil
}
