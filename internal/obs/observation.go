// Package obs holds variable-star observation series and converts their
// times to HJD.
package obs

import (
	"fmt"
	"strings"
)

// Flavour is the time system of an observation time.
type Flavour int

const (
	JD Flavour = iota
	HJD
)

func (f Flavour) String() string {
	switch f {
	case JD:
		return "JD"
	case HJD:
		return "HJD"
	default:
		return fmt.Sprintf("Flavour(%d)", int(f))
	}
}

// ParseFlavour parses "JD" or "HJD", case-insensitively.
func ParseFlavour(s string) (Flavour, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "JD":
		return JD, nil
	case "HJD":
		return HJD, nil
	default:
		return 0, fmt.Errorf("unknown time flavour %q", s)
	}
}

// Observation is one brightness measurement.
type Observation struct {
	Time    float64
	Mag     float64
	Err     float64
	HasMag  bool
	HasErr  bool
	Flavour Flavour
}

// Series is an ordered list of observations of one target.
type Series struct {
	Observations []Observation
}

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.Observations) }

// CountFlavour returns the number of observations with flavour f.
func (s *Series) CountFlavour(f Flavour) int {
	n := 0
	for _, o := range s.Observations {
		if o.Flavour == f {
			n++
		}
	}
	return n
}
