package distance

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isstep/logistics-route-optimization/internal/domain"
)

var (
	testOrigin      = domain.Coordinates{Lon: 27.545, Lat: 53.906}
	testDestination = domain.Coordinates{Lon: 27.558, Lat: 53.901}
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OSRMDistanceProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := NewOSRMDistanceProvider(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return provider
}

func TestOSRMRoadDistance(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		wantPath := "/route/v1/driving/27.545000,53.906000;27.558000,53.901000"
		if r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		if got := r.URL.Query().Get("overview"); got != "false" {
			t.Errorf("overview = %q, want %q", got, "false")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":2500.0,"duration":300.0}]}`))
	})

	result, err := provider.RoadDistance(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.DistanceKm-2.5) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 2.5", result.DistanceKm)
	}
	if math.Abs(result.DurationSeconds-300) > 1e-9 {
		t.Errorf("DurationSeconds = %v, want 300", result.DurationSeconds)
	}
}

func TestOSRMRoadDistanceUsesFirstRoute(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":1000.0,"duration":120.0},{"distance":9000.0,"duration":900.0}]}`))
	})

	result, err := provider.RoadDistance(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(result.DistanceKm-1.0) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 1.0", result.DistanceKm)
	}
}

func TestOSRMRoadDistanceNonOkCode(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	})

	if _, err := provider.RoadDistance(context.Background(), testOrigin, testDestination); err == nil {
		t.Fatal("expected error for non-Ok code")
	}
}

func TestOSRMRoadDistanceZeroRoutes(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[]}`))
	})

	if _, err := provider.RoadDistance(context.Background(), testOrigin, testDestination); err == nil {
		t.Fatal("expected error for zero routes")
	}
}

func TestOSRMRoadDistanceServerError(t *testing.T) {
	calls := 0
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := provider.RoadDistance(context.Background(), testOrigin, testDestination); err == nil {
		t.Fatal("expected error for 500 response")
	}

	// Single attempt per leg: failures are not retried.
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestGreatCircleRoadDistance(t *testing.T) {
	provider := NewGreatCircleDistanceProvider()

	same, err := provider.RoadDistance(context.Background(), testOrigin, testOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same.DistanceKm != 0 {
		t.Errorf("identical points: DistanceKm = %v, want 0", same.DistanceKm)
	}

	ab, err := provider.RoadDistance(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := provider.RoadDistance(context.Background(), testDestination, testOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ab.DistanceKm <= 0 {
		t.Errorf("distinct points: DistanceKm = %v, want > 0", ab.DistanceKm)
	}
	if math.Abs(ab.DistanceKm-ba.DistanceKm) > 1e-9 {
		t.Errorf("great-circle distance not symmetric: %v vs %v", ab.DistanceKm, ba.DistanceKm)
	}
	if ab.DurationSeconds <= 0 {
		t.Errorf("DurationSeconds = %v, want > 0", ab.DurationSeconds)
	}
}
