package distance

import (
	"context"
	"fmt"

	"github.com/isstep/logistics-route-optimization/internal/domain"
	"github.com/isstep/logistics-route-optimization/internal/ports"
)

type MockPair struct {
	From, To domain.Coordinates
	Km       float64
	Seconds  float64
}

// MockDistanceProvider serves a fixed pair table and counts calls, so tests
// can assert both leg values and that fail-fast paths issue no lookups.
type MockDistanceProvider struct {
	m     map[string]ports.DistanceResult
	Calls int
}

func pairKey(from, to domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", from.Lon, from.Lat, to.Lon, to.Lat)
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[pairKey(p.From, p.To)] = ports.DistanceResult{DistanceKm: p.Km, DurationSeconds: p.Seconds}
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) RoadDistance(
	_ context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (ports.DistanceResult, error) {
	p.Calls++

	r, ok := p.m[pairKey(origin, destination)]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q", pairKey(origin, destination))
	}

	return r, nil
}
