package obs

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadOptions controls Read.
type ReadOptions struct {
	// Flavour is assigned to every time read.
	Flavour Flavour
}

// Read parses observations, one per line, as "time [mag [err]]" separated
// by commas, tabs, or spaces. Blank lines and lines starting with '#' are
// skipped, as is a header before the first observation.
func Read(r io.Reader, opts ReadOptions) (*Series, error) {
	series := &Series{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitFields(line)
		if len(fields) == 0 {
			continue // separators only
		}
		if len(fields) > 3 {
			return nil, fmt.Errorf("line %d: expected at most 3 fields, got %d", lineNo, len(fields))
		}

		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			if series.Len() == 0 && !isNumeric(fields[0]) {
				continue // header
			}
			return nil, fmt.Errorf("line %d: bad time %q: %w", lineNo, fields[0], err)
		}
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("line %d: time %q is not finite", lineNo, fields[0])
		}

		o := Observation{Time: t, Flavour: opts.Flavour}
		if len(fields) > 1 {
			if o.Mag, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, fmt.Errorf("line %d: bad magnitude %q: %w", lineNo, fields[1], err)
			}
			if math.IsNaN(o.Mag) || math.IsInf(o.Mag, 0) {
				return nil, fmt.Errorf("line %d: magnitude %q is not finite", lineNo, fields[1])
			}
			o.HasMag = true
		}
		if len(fields) > 2 {
			if o.Err, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("line %d: bad uncertainty %q: %w", lineNo, fields[2], err)
			}
			if math.IsNaN(o.Err) || math.IsInf(o.Err, 0) {
				return nil, fmt.Errorf("line %d: uncertainty %q is not finite", lineNo, fields[2])
			}
			o.HasErr = true
		}
		series.Observations = append(series.Observations, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read observations: %w", err)
	}
	return series, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '\t' || r == ' ' || r == ';'
	})
}

// isNumeric reports whether s starts like a number, so that a malformed
// time is not mistaken for a header.
func isNumeric(s string) bool {
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}
