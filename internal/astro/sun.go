// Package astro provides the solar ephemeris and angle helpers used for
// heliocentric time corrections.
//
// The formulas follow Meeus, Astronomical Algorithms (1st ed.), chapters
// 21 and 24 ("low accuracy" solar coordinates). All functions are pure and
// safe for concurrent use; NaN inputs give NaN outputs.
package astro

import (
	"math"

	"github.com/soniakeys/unit"
)

// J2000JD is the Julian Date of the J2000.0 epoch.
const J2000JD = 2451545.0

// precessionPerYear is the general precession in longitude, in degrees
// per year, used to refer the Sun's longitude to a standard equinox.
const precessionPerYear = 0.01397

// JulianCenturies returns the time in Julian centuries from J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000JD) / 36525.0
}

// SolarCoords holds the intermediate and final quantities of one
// solar position computation.
type SolarCoords struct {
	GeometricMeanLongitude unit.Angle // L0, in [0, 2π)
	MeanAnomaly            unit.Angle // M, in [0, 2π)
	EquationOfCenter       unit.Angle // C
	TrueAnomaly            unit.Angle // v = M + C
	TrueLongitude          unit.Angle // L0 + C, mean equinox of date

	// Geometric position referred to the mean equinox of date.
	RAOfDate  unit.RA
	DecOfDate unit.Angle

	// Apparent position of date (aberration and nutation in longitude).
	ApparentRA  unit.RA
	ApparentDec unit.Angle

	// Geometric position with the longitude reduced to the ephemeris
	// reference equinox. This is the position used for HJD.
	RA  unit.RA
	Dec unit.Angle
}

// Ephemeris computes solar coordinates for one coordinate epoch.
type Ephemeris struct {
	// Precision selects the mean obliquity series.
	Precision Precision

	// EquinoxYear is the year of the reference equinox (2000 or 1950).
	EquinoxYear float64
}

// SolarCoords returns the Sun's coordinates at T Julian centuries from
// J2000.0. Year is the calendar year of the date, used for the reduction
// of the longitude to the reference equinox.
func (e Ephemeris) SolarCoords(T float64, year int) SolarCoords {
	// Meeus 24.2
	L0 := unit.AngleFromDeg(DegsInRange(280.46645 + 36000.76983*T + 0.0003032*T*T))

	// Meeus 24.3
	M := unit.Angle(RadsInRange(unit.AngleFromDeg(
		357.52910 + 35999.05030*T - 0.0001559*T*T - 0.00000048*T*T*T).Rad()))

	C := unit.AngleFromDeg(1.914600-0.004817*T-0.000014*T*T).Mul(M.Sin()) +
		unit.AngleFromDeg(0.019993-0.000101*T).Mul(M.Mul(2).Sin()) +
		unit.AngleFromDeg(0.000290).Mul(M.Mul(3).Sin())

	lon := L0 + C
	reduced := lon - unit.AngleFromDeg(precessionPerYear).Mul(float64(year)-e.EquinoxYear)

	omega := LongitudeOfAscendingNode(T)
	lambda := lon - unit.AngleFromDeg(0.00569) - unit.AngleFromDeg(0.00478).Mul(omega.Sin())

	eps := Obliquity(T, e.Precision)
	apparentEps := eps + unit.AngleFromDeg(0.00256).Mul(omega.Cos())

	c := SolarCoords{
		GeometricMeanLongitude: L0,
		MeanAnomaly:            M,
		EquationOfCenter:       C,
		TrueAnomaly:            M + C,
		TrueLongitude:          lon,
	}
	c.RAOfDate, c.DecOfDate = eclipticToEquatorial(lon, eps)
	c.ApparentRA, c.ApparentDec = eclipticToEquatorial(lambda, apparentEps)
	c.RA, c.Dec = eclipticToEquatorial(reduced, eps)
	return c
}

// eclipticToEquatorial converts an ecliptic longitude on the ecliptic
// (latitude zero) to equatorial coordinates. Meeus 24.6, 24.7.
func eclipticToEquatorial(lon, eps unit.Angle) (unit.RA, unit.Angle) {
	sLon, cLon := lon.Sincos()
	ra := math.Atan2(eps.Cos()*sLon, cLon)
	dec := math.Asin(eps.Sin() * sLon)
	return unit.RAFromRad(ra), unit.Angle(dec)
}

// Eccentricity returns the eccentricity of the Earth's orbit. Meeus 24.4.
//
// The value is dimensionless.
func Eccentricity(T float64) float64 {
	return 0.016708617 - 0.000042037*T - 0.0000001236*T*T
}

// RadiusVector returns the Earth-Sun distance in AU given the mean anomaly
// M and the equation of center C. Meeus 24.5.
func RadiusVector(T float64, M, C unit.Angle) float64 {
	e := Eccentricity(T)
	v := M + C
	return (1.000001018 * (1 - e*e)) / (1 + e*v.Cos())
}

// LongitudeOfAscendingNode returns the longitude of the ascending node of
// the Moon's mean orbit, measured from the mean equinox of date.
func LongitudeOfAscendingNode(T float64) unit.Angle {
	return unit.AngleFromDeg(125.04452 - 1934.136261*T + 0.0020708*T*T + T*T*T/450000)
}

// Elongation returns the angular separation between the Sun and a target.
func Elongation(sunRA, sunDec, targetRA, targetDec unit.Angle) unit.Angle {
	// Haversine formula; stable for small separations.
	dRA := targetRA - sunRA
	dDec := targetDec - sunDec

	a := math.Sin(dDec.Rad()/2)*math.Sin(dDec.Rad()/2) +
		sunDec.Cos()*targetDec.Cos()*math.Sin(dRA.Rad()/2)*math.Sin(dRA.Rad()/2)
	if a > 1 {
		a = 1
	}
	return unit.Angle(2 * math.Asin(math.Sqrt(a)))
}
