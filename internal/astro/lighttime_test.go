package astro

import (
	"math"
	"testing"
)

func TestLightTime(t *testing.T) {
	if got := LightTimeDays(1); math.Abs(got-0.0057755) > 1e-7 {
		t.Errorf("LightTimeDays(1) = %v, want ~0.0057755", got)
	}
	// Light travels 1 AU in ~499.005 seconds.
	if got := LightTimeSeconds(1); math.Abs(got-499.005) > 0.001 {
		t.Errorf("LightTimeSeconds(1) = %v, want ~499.005", got)
	}
}

func TestFormatLightTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "+0.0s"},
		{42, "+42.0s"},
		{-188.3, "-3m08.3s"},
		{499.005, "+8m19.0s"},
		{59.96, "+1m00.0s"},
		{math.NaN(), "n/a"},
	}

	for _, tt := range tests {
		if got := FormatLightTime(tt.seconds); got != tt.want {
			t.Errorf("FormatLightTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
