package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Position is the latest GPS fix reported for a tracked device.
type Position struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	FixTime   *time.Time `json:"fix_time"`
}

// Point returns the position as an orb.Point {lng, lat}.
func (p Position) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
