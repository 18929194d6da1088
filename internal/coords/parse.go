package coords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCoordinate is returned when coordinate text cannot be parsed.
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// sexaSeparators are replaced with spaces before splitting sexagesimal text.
var sexaSeparators = strings.NewReplacer(
	":", " ",
	"h", " ", "m", " ", "s", " ",
	"d", " ", "°", " ", "′", " ", "″", " ",
	"'", " ", "\"", " ",
	"ʰ", " ", "ᵐ", " ", "ˢ", " ",
)

// ParseRA parses a right ascension given either as decimal degrees
// ("143.06083") or as sexagesimal hours ("21:08:46.84", "21h08m46.84s").
func ParseRA(epoch Epoch, s string) (RAInfo, error) {
	deg, hms, isDecimal, err := parseAngle(s)
	if err != nil {
		return RAInfo{}, fmt.Errorf("parse RA: %w", err)
	}
	if isDecimal {
		return RAFromDegrees(epoch, deg), nil
	}
	return RAFromSexagesimal(epoch, hms), nil
}

// ParseDec parses a declination given either as decimal degrees
// ("-62.78889") or as sexagesimal degrees ("-88:57:23.40", "-00 30 00").
func ParseDec(epoch Epoch, s string) (DecInfo, error) {
	deg, dms, isDecimal, err := parseAngle(s)
	if err != nil {
		return DecInfo{}, fmt.Errorf("parse Dec: %w", err)
	}
	if isDecimal {
		return DecFromDegrees(epoch, deg), nil
	}
	return DecFromSexagesimal(epoch, dms), nil
}

// parseAngle returns either a decimal value or sexagesimal components.
// Minute and second ranges are not checked.
func parseAngle(s string) (float64, Sexagesimal, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Sexagesimal{}, false, fmt.Errorf("%w: empty", ErrMalformedCoordinate)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, Sexagesimal{}, true, nil
	}

	var sx Sexagesimal
	body := s
	switch body[0] {
	case '-':
		sx.Neg = true
		body = body[1:]
	case '+':
		body = body[1:]
	}

	fields := strings.Fields(sexaSeparators.Replace(body))
	if len(fields) == 0 || len(fields) > 3 {
		return 0, Sexagesimal{}, false, fmt.Errorf("%w: %q", ErrMalformedCoordinate, s)
	}

	u, err := strconv.Atoi(fields[0])
	if err != nil || u < 0 {
		return 0, Sexagesimal{}, false, fmt.Errorf("%w: %q", ErrMalformedCoordinate, s)
	}
	sx.Unit = u

	if len(fields) > 1 {
		m, err := strconv.Atoi(fields[1])
		if err != nil || m < 0 {
			return 0, Sexagesimal{}, false, fmt.Errorf("%w: bad minutes in %q", ErrMalformedCoordinate, s)
		}
		sx.Min = m
	}
	if len(fields) > 2 {
		sec, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || sec < 0 {
			return 0, Sexagesimal{}, false, fmt.Errorf("%w: bad seconds in %q", ErrMalformedCoordinate, s)
		}
		sx.Sec = sec
	}
	return 0, sx, false, nil
}
