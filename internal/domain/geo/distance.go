// Package geo provides great-circle distance computations for GPS geofencing.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Distance returns the haversine distance in meters between two points.
// Points follow the orb convention: X is longitude, Y is latitude, both in degrees.
func Distance(p1, p2 orb.Point) float64 {
	lat1 := p1.Lat() * math.Pi / 180
	lat2 := p2.Lat() * math.Pi / 180
	deltaLat := (p2.Lat() - p1.Lat()) * math.Pi / 180
	deltaLng := (p2.Lon() - p1.Lon()) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceMeters is Distance for callers holding raw latitude/longitude pairs.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return Distance(orb.Point{lng1, lat1}, orb.Point{lng2, lat2})
}
