package astro

import (
	"math"

	"github.com/soniakeys/unit"
)

// Precision selects between the two mean obliquity series.
type Precision int

const (
	// Low is the IAU series, Meeus 21.2. Good to about 1″ over 2000 years
	// either side of J2000.
	Low Precision = iota

	// High is Laskar's series, Meeus 21.3, good to 0.01″ over 1000 years.
	High
)

func (p Precision) String() string {
	switch p {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// obliquityJ2000 is the mean obliquity at J2000.0, 23°26′21.448″.
var obliquityJ2000 = unit.AngleFromDeg(DMSToDegs(23, 26, 21.448))

// MeanObliquity returns the mean obliquity of the ecliptic using the
// series selected by p.
func MeanObliquity(T float64, p Precision) unit.Angle {
	if p == High {
		return MeanObliquityHighPrecision(T)
	}
	return MeanObliquityLowPrecision(T)
}

// MeanObliquityLowPrecision returns the mean obliquity of the ecliptic.
// Meeus 21.2.
func MeanObliquityLowPrecision(T float64) unit.Angle {
	return obliquityJ2000 -
		SecsToRads(46.8150*T) -
		SecsToRads(0.00059*T*T) +
		SecsToRads(0.001813*T*T*T)
}

// laskarTerms are the coefficients of U, U², … U¹⁰ in arc seconds.
var laskarTerms = [...]float64{
	-4680.93, -1.55, 1999.25, -51.38, -249.67,
	-39.05, 7.12, 27.87, 5.79, 2.45,
}

// MeanObliquityHighPrecision returns the mean obliquity of the ecliptic.
// Meeus 21.3, where U = T/100.
func MeanObliquityHighPrecision(T float64) unit.Angle {
	U := T / 100
	eps := obliquityJ2000
	for i, c := range laskarTerms {
		eps += SecsToRads(c * math.Pow(U, float64(i+1)))
	}
	return eps
}

// NutationInObliquity returns Δε from the four principal terms (Meeus
// p. 132), accurate to about 0.1″.
func NutationInObliquity(T float64) unit.Angle {
	L := unit.AngleFromDeg(280.4665 + 36000.7698*T)      // mean longitude of the Sun
	Lprime := unit.AngleFromDeg(218.3165 + 481267.8813*T) // mean longitude of the Moon
	omega := LongitudeOfAscendingNode(T)

	return SecsToRads(9.20).Mul(omega.Cos()) +
		SecsToRads(0.57).Mul(L.Mul(2).Cos()) +
		SecsToRads(0.10).Mul(Lprime.Mul(2).Cos()) -
		SecsToRads(0.09).Mul(omega.Mul(2).Cos())
}

// Obliquity returns the true obliquity of the ecliptic: the mean obliquity
// plus the nutation in obliquity.
func Obliquity(T float64, p Precision) unit.Angle {
	return MeanObliquity(T, p) + NutationInObliquity(T)
}
