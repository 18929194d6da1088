package coords

import (
	"fmt"
	"math"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Sexagesimal is a value split into a unit part (hours or degrees),
// minutes, and seconds.
//
// Unit, Min, and Sec are always magnitudes; the sign lives only in Neg.
// This keeps values such as -0°30′ representable.
type Sexagesimal struct {
	Neg  bool
	Unit int
	Min  int
	Sec  float64
}

// Value returns the signed value in the units of the Unit component.
func (s Sexagesimal) Value() float64 {
	neg := byte(' ')
	if s.Neg {
		neg = '-'
	}
	return unit.FromSexa(neg, s.Unit, s.Min, s.Sec)
}

// decompose splits v into sexagesimal components.
func decompose(v float64) Sexagesimal {
	a := math.Abs(v)
	u := math.Floor(a)
	mf := (a - u) * 60
	m := math.Floor(mf)
	return Sexagesimal{
		Neg:  v < 0,
		Unit: int(u),
		Min:  int(m),
		Sec:  (mf - m) * 60,
	}
}

// RAInfo is a right ascension tagged with its epoch.
type RAInfo struct {
	epoch Epoch
	deg   float64
}

// RAFromDegrees returns a right ascension of deg decimal degrees.
// No range checking is done.
func RAFromDegrees(epoch Epoch, deg float64) RAInfo {
	return RAInfo{epoch: epoch, deg: deg}
}

// RAFromHMS returns a right ascension from hours, minutes and seconds,
// where one hour is 15 degrees.
func RAFromHMS(epoch Epoch, h, m int, s float64) RAInfo {
	return RAInfo{epoch: epoch, deg: 15 * unit.FromSexa(' ', h, m, s)}
}

// RAFromSexagesimal returns a right ascension from sexagesimal hours.
func RAFromSexagesimal(epoch Epoch, hms Sexagesimal) RAInfo {
	return RAInfo{epoch: epoch, deg: 15 * hms.Value()}
}

// Epoch returns the coordinate epoch.
func (r RAInfo) Epoch() Epoch { return r.epoch }

// Degrees returns the value given at construction, in decimal degrees.
func (r RAInfo) Degrees() float64 { return r.deg }

// Angle returns the right ascension as an unwrapped angle.
func (r RAInfo) Angle() unit.Angle { return unit.AngleFromDeg(r.deg) }

// RA returns the right ascension normalised to [0, 24h).
func (r RAInfo) RA() unit.RA { return unit.RAFromDeg(r.deg) }

// HMS decomposes the right ascension into hours, minutes and seconds.
func (r RAInfo) HMS() Sexagesimal { return decompose(r.deg / 15) }

func (r RAInfo) String() string {
	return fmt.Sprintf("%.2s %s", sexa.FmtRA(r.RA()), r.epoch)
}

// DecInfo is a declination tagged with its epoch.
type DecInfo struct {
	epoch Epoch
	deg   float64
}

// DecFromDegrees returns a declination of deg decimal degrees.
// No range checking is done.
func DecFromDegrees(epoch Epoch, deg float64) DecInfo {
	return DecInfo{epoch: epoch, deg: deg}
}

// DecFromDMS returns a declination from degrees, minutes and seconds.
// The sign is taken from d; a zero d gives a non-negative result, so
// use DecFromSexagesimal for values between 0 and -1 degree.
func DecFromDMS(epoch Epoch, d, m int, s float64) DecInfo {
	neg := byte(' ')
	if d < 0 {
		neg = '-'
		d = -d
	}
	return DecInfo{epoch: epoch, deg: unit.FromSexa(neg, d, m, s)}
}

// DecFromSexagesimal returns a declination from sexagesimal degrees.
func DecFromSexagesimal(epoch Epoch, dms Sexagesimal) DecInfo {
	return DecInfo{epoch: epoch, deg: dms.Value()}
}

// Epoch returns the coordinate epoch.
func (d DecInfo) Epoch() Epoch { return d.epoch }

// Degrees returns the value given at construction, in decimal degrees.
func (d DecInfo) Degrees() float64 { return d.deg }

// Angle returns the declination as an angle.
func (d DecInfo) Angle() unit.Angle { return unit.AngleFromDeg(d.deg) }

// DMS decomposes the declination into degrees, arc minutes and arc seconds.
func (d DecInfo) DMS() Sexagesimal { return decompose(d.deg) }

func (d DecInfo) String() string {
	return fmt.Sprintf("%.1s %s", sexa.FmtAngle(d.Angle()), d.epoch)
}
