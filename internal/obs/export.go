package obs

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ObservationExport is the JSON representation of an observation.
type ObservationExport struct {
	Time    float64  `json:"time"`
	Flavour string   `json:"flavour"`
	Mag     *float64 `json:"mag,omitempty"`
	Err     *float64 `json:"mag_err,omitempty"`
}

// SeriesExport is the JSON representation of a series.
type SeriesExport struct {
	Target       string              `json:"target,omitempty"`
	Epoch        string              `json:"epoch,omitempty"`
	Observations []ObservationExport `json:"observations"`
}

// Export converts s to its exportable form.
func Export(s *Series, target, epoch string) *SeriesExport {
	export := &SeriesExport{
		Target:       target,
		Epoch:        epoch,
		Observations: make([]ObservationExport, 0, s.Len()),
	}
	for _, o := range s.Observations {
		e := ObservationExport{Time: o.Time, Flavour: o.Flavour.String()}
		if o.HasMag {
			mag := o.Mag
			e.Mag = &mag
		}
		if o.HasErr {
			oe := o.Err
			e.Err = &oe
		}
		export.Observations = append(export.Observations, e)
	}
	return export
}

// WriteJSON writes the export as indented JSON.
func (e *SeriesExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// WriteCSV writes the series as CSV with a header row.
func WriteCSV(w io.Writer, s *Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "flavour", "mag", "mag_err"}); err != nil {
		return err
	}
	for _, o := range s.Observations {
		rec := []string{formatFloat(o.Time, 8), o.Flavour.String(), "", ""}
		if o.HasMag {
			rec[2] = formatFloat(o.Mag, 3)
		}
		if o.HasErr {
			rec[3] = formatFloat(o.Err, 3)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes the series as a text table.
func WriteTable(w io.Writer, s *Series, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", 44))

	if s.Len() == 0 {
		fmt.Fprintln(w, "No observations")
		return
	}

	fmt.Fprintf(w, "%-18s %-4s %9s %9s\n", "Time", "Sys", "Mag", "Err")
	fmt.Fprintln(w, strings.Repeat("─", 44))
	for _, o := range s.Observations {
		mag, errStr := "-", "-"
		if o.HasMag {
			mag = formatFloat(o.Mag, 3)
		}
		if o.HasErr {
			errStr = formatFloat(o.Err, 3)
		}
		fmt.Fprintf(w, "%-18s %-4s %9s %9s\n", formatFloat(o.Time, 8), o.Flavour, mag, errStr)
	}

	fmt.Fprintf(w, "\nTotal: %d observations (%d JD, %d HJD)\n",
		s.Len(), s.CountFlavour(JD), s.CountFlavour(HJD))
}
