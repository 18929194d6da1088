package astro

import (
	"fmt"
	"math"
)

// SpeedOfLightAUPerDay is the speed of light in AU per day.
const SpeedOfLightAUPerDay = 173.144632674240

// LightTimeDays returns the one-way light time for a distance in AU, in days.
// One AU is about 0.0057755 days (8.32 minutes).
func LightTimeDays(au float64) float64 {
	return au / SpeedOfLightAUPerDay
}

// LightTimeSeconds returns the one-way light time for a distance in AU,
// in seconds.
func LightTimeSeconds(au float64) float64 {
	return LightTimeDays(au) * 86400
}

// FormatLightTime formats a signed light-time interval in seconds,
// e.g. "-3m08.3s" or "+42.0s".
func FormatLightTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "n/a"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	// Round once so that 59.96s becomes 1m00.0s rather than 0m60.0s.
	tenths := math.Round(seconds * 10)
	if tenths < 600 {
		return fmt.Sprintf("%s%.1fs", sign, tenths/10)
	}
	mins := math.Floor(tenths / 600)
	secs := (tenths - mins*600) / 10
	return fmt.Sprintf("%s%dm%04.1fs", sign, int(mins), secs)
}
