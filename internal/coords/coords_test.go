package coords

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDegreesEchoesConstructionValue(t *testing.T) {
	values := []float64{0, 143.06083, -62.78889, 400.5, -720.25, 1e-12}
	for _, v := range values {
		if got := RAFromDegrees(J2000, v).Degrees(); got != v {
			t.Errorf("RAFromDegrees(%v).Degrees() = %v", v, got)
		}
		if got := DecFromDegrees(B1950, v).Degrees(); got != v {
			t.Errorf("DecFromDegrees(%v).Degrees() = %v", v, got)
		}
	}
}

func TestRAFromHMS(t *testing.T) {
	tests := []struct {
		name    string
		h, m    int
		s       float64
		wantDeg float64
	}{
		{"zero", 0, 0, 0, 0},
		{"one hour", 1, 0, 0, 15},
		{"twelve hours", 12, 0, 0, 180},
		{"sigma Oct", 21, 8, 46.84, 317.1951666666667},
		{"minutes only", 0, 30, 0, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra := RAFromHMS(J2000, tt.h, tt.m, tt.s)
			if math.Abs(ra.Degrees()-tt.wantDeg) > 1e-9 {
				t.Errorf("Degrees() = %v, want %v", ra.Degrees(), tt.wantDeg)
			}
			if ra.Epoch() != J2000 {
				t.Errorf("Epoch() = %v, want J2000", ra.Epoch())
			}
		})
	}
}

func TestDecFromDMS(t *testing.T) {
	tests := []struct {
		name    string
		d, m    int
		s       float64
		wantDeg float64
	}{
		{"positive", 23, 26, 21.448, 23.43929111111111},
		{"negative", -23, 26, 21.448, -23.43929111111111},
		{"sigma Oct", -88, 57, 23.40, -88.9565},
		{"zero degrees is non-negative", 0, 30, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := DecFromDMS(J2000, tt.d, tt.m, tt.s)
			if math.Abs(dec.Degrees()-tt.wantDeg) > 1e-9 {
				t.Errorf("Degrees() = %v, want %v", dec.Degrees(), tt.wantDeg)
			}
		})
	}
}

func TestNegativeZeroDegreesDeclination(t *testing.T) {
	dec := DecFromSexagesimal(J2000, Sexagesimal{Neg: true, Unit: 0, Min: 30})
	if dec.Degrees() != -0.5 {
		t.Fatalf("Degrees() = %v, want -0.5", dec.Degrees())
	}

	dms := dec.DMS()
	if !dms.Neg || dms.Unit != 0 || dms.Min != 30 || math.Abs(dms.Sec) > 1e-6 {
		t.Errorf("DMS() = %+v, want -0°30′0″ with Neg set", dms)
	}
}

func TestHMSRoundTrip(t *testing.T) {
	tests := []struct {
		h, m int
		s    float64
	}{
		{21, 8, 46.84},
		{9, 32, 14.6},
		{0, 0, 12.5},
		{17, 47, 33.63},
		{23, 59, 30.25},
	}

	// 1e-6 degree expressed in seconds of time.
	tol := 1e-6 * 240

	for _, tt := range tests {
		hms := RAFromHMS(J2000, tt.h, tt.m, tt.s).HMS()
		if hms.Neg || hms.Unit != tt.h || hms.Min != tt.m || math.Abs(hms.Sec-tt.s) > tol {
			t.Errorf("HMS() = %+v, want %dh%dm%vs", hms, tt.h, tt.m, tt.s)
		}
	}
}

func TestDMSRoundTrip(t *testing.T) {
	tests := []struct {
		d, m int
		s    float64
	}{
		{-88, 57, 23.40},
		{-62, 47, 20.0},
		{45, 10, 5.5},
		{-27, 49, 50.9},
	}

	// 1e-6 degree expressed in arc seconds.
	tol := 1e-6 * 3600

	for _, tt := range tests {
		dms := DecFromDMS(J2000, tt.d, tt.m, tt.s).DMS()
		wantUnit := tt.d
		if wantUnit < 0 {
			wantUnit = -wantUnit
		}
		if dms.Neg != (tt.d < 0) || dms.Unit != wantUnit || dms.Min != tt.m || math.Abs(dms.Sec-tt.s) > tol {
			t.Errorf("DMS() = %+v, want %d°%d′%v″", dms, tt.d, tt.m, tt.s)
		}
	}
}

func TestSexagesimalValue(t *testing.T) {
	s := Sexagesimal{Neg: true, Unit: 23, Min: 26, Sec: 21.448}
	if math.Abs(s.Value()+23.43929111111111) > 1e-12 {
		t.Errorf("Value() = %v", s.Value())
	}
}

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		in      string
		want    Epoch
		wantErr bool
	}{
		{"J2000", J2000, false},
		{"j2000.0", J2000, false},
		{" B1950 ", B1950, false},
		{"J2015.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseEpoch(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownEpoch) {
				t.Errorf("ParseEpoch(%q) error = %v, want ErrUnknownEpoch", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseEpoch(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestEpochString(t *testing.T) {
	if J2000.String() != "J2000" || B1950.String() != "B1950" {
		t.Errorf("unexpected names %q %q", J2000, B1950)
	}
	if got := Epoch(7).String(); got != "Epoch(7)" {
		t.Errorf("Epoch(7).String() = %q", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		got    string
		parts  []string
		suffix string
	}{
		{RAFromHMS(J2000, 21, 8, 46.84).String(), []string{"21", "08", "46"}, " J2000"},
		{DecFromDMS(B1950, -88, 57, 23.40).String(), []string{"88", "57", "23"}, " B1950"},
	}
	for _, tt := range tests {
		if strings.Contains(tt.got, "%!") || !strings.HasSuffix(tt.got, tt.suffix) {
			t.Errorf("String() = %q", tt.got)
		}
		for _, p := range tt.parts {
			if !strings.Contains(tt.got, p) {
				t.Errorf("String() = %q, missing %q", tt.got, p)
			}
		}
	}
}
