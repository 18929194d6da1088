// Package calendar converts between Julian Dates and calendar dates.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ErrBadDate is returned when text is neither a Julian Date nor a date.
var ErrBadDate = errors.New("bad date")

// ParseJD parses a Julian Date given as a number ("2448908.5"), a
// Gregorian date with fractional day ("1992-10-13.0"), an RFC 3339
// time, or "now".
func ParseJD(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		return jd, nil
	}
	if strings.EqualFold(s, "now") {
		return JDFromTime(time.Now()), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return JDFromTime(t), nil
	}

	parts := strings.Split(s, "-")
	if len(parts) == 3 {
		y, errY := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		d, errD := strconv.ParseFloat(parts[2], 64)
		if errY == nil && errM == nil && errD == nil && m >= 1 && m <= 12 && d >= 1 && d < 32 {
			return JDFromDate(y, m, d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDate, s)
}

// YearOf returns the calendar year containing the Julian Date jd.
// Dates before 1582 October 15 use the Julian calendar.
func YearOf(jd float64) int {
	y, _, _ := julian.JDToCalendar(jd)
	return y
}

// JDFromDate returns the Julian Date of a Gregorian calendar date with
// a fractional day.
func JDFromDate(year, month int, day float64) float64 {
	return julian.CalendarGregorianToJD(year, month, day)
}

// JDFromTime returns the Julian Date of t.
func JDFromTime(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// TimeFromJD returns the UTC time of the Julian Date jd.
func TimeFromJD(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}
