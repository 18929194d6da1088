// Package coords provides epoch-tagged celestial coordinate values.
package coords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEpoch is returned when an epoch name cannot be parsed.
var ErrUnknownEpoch = errors.New("unknown epoch")

// Epoch identifies the coordinate reference standard of an RA/Dec pair.
type Epoch int

const (
	// B1950 is the Besselian 1950.0 equinox, used by pre-1984 catalogues.
	B1950 Epoch = iota + 1

	// J2000 is the Julian 2000.0 equinox.
	J2000
)

func (e Epoch) String() string {
	switch e {
	case B1950:
		return "B1950"
	case J2000:
		return "J2000"
	default:
		return fmt.Sprintf("Epoch(%d)", int(e))
	}
}

// ParseEpoch parses an epoch name such as "J2000" or "b1950".
func ParseEpoch(s string) (Epoch, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B1950", "B1950.0":
		return B1950, nil
	case "J2000", "J2000.0":
		return J2000, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEpoch, s)
	}
}
