package domain

import "github.com/paulmach/orb"

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Point returns the location as an orb.Point ([lon, lat]) for geo math.
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }
