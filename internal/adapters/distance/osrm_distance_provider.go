package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/isstep/logistics-route-optimization/internal/domain"
	"github.com/isstep/logistics-route-optimization/internal/platform/obs"
	"github.com/isstep/logistics-route-optimization/internal/ports"
)

// DefaultOSRMBaseURL is the public OSRM demo server.
const DefaultOSRMBaseURL = "http://router.project-osrm.org"

// OSRMDistanceProvider implements DistanceProvider against the OSRM
// /route/v1 endpoint.
//
// Policy: one attempt per leg, no retry, no caching, no straight-line
// fallback. A failure (network error, non-2xx status, non-Ok code, zero
// routes) propagates as an error and the caller decides whether it aborts
// the whole order. Identical coordinate pairs are re-resolved on every
// call: request volume is low and fresh provider state wins over latency.
//
// The provider is safe for concurrent use.
type OSRMDistanceProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMDistanceProvider(baseURL string) (*OSRMDistanceProvider, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("OSRM base URL is empty")
	}

	return &OSRMDistanceProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
	}, nil
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		DistanceMeters  float64 `json:"distance"`
		DurationSeconds float64 `json:"duration"`
	} `json:"routes"`
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Resolve one leg via GET /route/v1/{profile}/{lon},{lat};{lon},{lat}.
// OSRM expects lon,lat coordinate order. overview=false skips the
// turn-by-turn geometry the service never reads.
func (o *OSRMDistanceProvider) RoadDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ ports.DistanceResult, err error) {
	defer obs.Time(ctx, "osrm.RoadDistance")(&err)

	url := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=false",
		o.baseURL, o.profile,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.session.Do(req)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return ports.DistanceResult{}, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.DistanceResult{}, fmt.Errorf("decode route response: %w", err)
	}

	if decoded.Code != "Ok" {
		return ports.DistanceResult{}, fmt.Errorf("OSRM returned code %q", decoded.Code)
	}

	if len(decoded.Routes) == 0 {
		return ports.DistanceResult{}, errors.New("OSRM returned no routes")
	}

	first := decoded.Routes[0]
	return ports.DistanceResult{
		DistanceKm:      first.DistanceMeters / 1000,
		DurationSeconds: first.DurationSeconds,
	}, nil
}
