package services

const (
	// Liters per 100 km. Fixed in current scope.
	DefaultFuelRatePer100Km = 8.0
	// Unit fuel price, overridable via configuration.
	DefaultFuelPricePerLiter = 2.20
)

// FuelEstimator converts a total route distance into a monetary fuel cost.
// Pure and deterministic: no I/O, no failure modes.
type FuelEstimator struct {
	RatePer100Km  float64
	PricePerLiter float64
}

func NewFuelEstimator(ratePer100Km, pricePerLiter float64) FuelEstimator {
	return FuelEstimator{
		RatePer100Km:  ratePer100Km,
		PricePerLiter: pricePerLiter,
	}
}

// Cost returns the estimated fuel cost for a total distance in kilometers.
func (e FuelEstimator) Cost(totalDistanceKm float64) float64 {
	litersRequired := totalDistanceKm / 100 * e.RatePer100Km
	return litersRequired * e.PricePerLiter
}
