// Package hjd converts Julian Dates to Heliocentric Julian Dates.
//
// A Converter is bound to one coordinate epoch. The correction is the light
// travel time between the Earth and the Sun projected on the direction of
// the target, so that HJD = JD + correction.
package hjd

import (
	"errors"
	"fmt"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-hjd/internal/astro"
	"github.com/litescript/ls-hjd/internal/calendar"
	"github.com/litescript/ls-hjd/internal/coords"
)

// ErrUnsupportedEpoch is returned by ForEpoch for epochs with no converter.
var ErrUnsupportedEpoch = errors.New("unsupported epoch")

// Converter turns a Julian Date into a Heliocentric Julian Date.
//
// RA and Dec must carry the converter's epoch. This is not checked.
type Converter interface {
	Epoch() coords.Epoch
	Convert(jd float64, ra coords.RAInfo, dec coords.DecInfo) float64
	Correction(jd float64, ra coords.RAInfo, dec coords.DecInfo) float64
}

// epochConverter is the Converter for one epoch. Values are immutable.
type epochConverter struct {
	epoch coords.Epoch
	eph   astro.Ephemeris
}

var (
	j2000 = epochConverter{
		epoch: coords.J2000,
		eph:   astro.Ephemeris{Precision: astro.High, EquinoxYear: 2000},
	}
	b1950 = epochConverter{
		epoch: coords.B1950,
		eph:   astro.Ephemeris{Precision: astro.Low, EquinoxYear: 1950},
	}
)

// J2000 returns the converter for J2000.0 coordinates.
func J2000() Converter { return j2000 }

// B1950 returns the converter for B1950.0 coordinates.
func B1950() Converter { return b1950 }

// ForEpoch returns the converter for epoch.
func ForEpoch(epoch coords.Epoch) (Converter, error) {
	switch epoch {
	case coords.J2000:
		return j2000, nil
	case coords.B1950:
		return b1950, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEpoch, epoch)
	}
}

func (c epochConverter) Epoch() coords.Epoch { return c.epoch }

func (c epochConverter) Convert(jd float64, ra coords.RAInfo, dec coords.DecInfo) float64 {
	return jd + c.Correction(jd, ra, dec)
}

// Correction returns HJD - JD in days.
func (c epochConverter) Correction(jd float64, ra coords.RAInfo, dec coords.DecInfo) float64 {
	s := c.Sun(jd)
	return correction(s.Radius, unit.Angle(s.RA), s.Dec, ra.Angle(), dec.Angle())
}

// SunPosition is the Sun's position used for one correction.
type SunPosition struct {
	RA     unit.RA
	Dec    unit.Angle
	Radius float64 // AU
}

// Sun returns the Sun's position at jd referred to the converter's equinox.
func (c epochConverter) Sun(jd float64) SunPosition {
	T := astro.JulianCenturies(jd)
	sc := c.eph.SolarCoords(T, calendar.YearOf(jd))
	return SunPosition{
		RA:     sc.RA,
		Dec:    sc.Dec,
		Radius: astro.RadiusVector(T, sc.MeanAnomaly, sc.EquationOfCenter),
	}
}

// SunAt returns the Sun's position at jd as seen by conv. It reports false
// when conv was not created by this package.
func SunAt(conv Converter, jd float64) (SunPosition, bool) {
	ec, ok := conv.(epochConverter)
	if !ok {
		return SunPosition{}, false
	}
	return ec.Sun(jd), true
}

// correction returns -(R/c)·cos θ where θ is the angle between the Sun and
// the target.
func correction(r float64, sunRA, sunDec, ra, dec unit.Angle) float64 {
	var sun, star coord.Cart
	sun.FromSphr(&coord.Sphr{Lon: sunRA, Lat: sunDec})
	star.FromSphr(&coord.Sphr{Lon: ra, Lat: dec})
	cosTheta := sun.X*star.X + sun.Y*star.Y + sun.Z*star.Z
	return -astro.LightTimeDays(r) * cosTheta
}
