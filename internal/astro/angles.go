package astro

import (
	"math"

	"github.com/soniakeys/unit"
)

// DegsInRange returns d reduced to [0, 360). Negative inputs are handled.
func DegsInRange(d float64) float64 {
	return inRange(d, 360)
}

// RadsInRange returns r reduced to [0, 2π). Negative inputs are handled.
func RadsInRange(r float64) float64 {
	return inRange(r, 2*math.Pi)
}

func inRange(x, period float64) float64 {
	r := x - period*math.Floor(x/period)
	if r >= period {
		// x was a tiny negative value and the subtraction rounded up.
		r = 0
	}
	return r
}

// SecsToRads converts arc seconds to an angle.
func SecsToRads(s float64) unit.Angle {
	return unit.AngleFromSec(s)
}

// DMSToDegs returns decimal degrees from degrees, minutes and seconds.
// The sign is taken from d.
func DMSToDegs(d, m int, s float64) float64 {
	neg := byte(' ')
	if d < 0 {
		neg = '-'
		d = -d
	}
	return unit.FromSexa(neg, d, m, s)
}
