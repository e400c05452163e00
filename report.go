package mobius

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is the printable outcome of one run.
type Report struct {
	Radius      float64 `json:"radius"`
	Width       float64 `json:"width"`
	Resolution  int     `json:"resolution"`
	SurfaceArea float64 `json:"surface_area"`
	EdgeLength  float64 `json:"edge_length"`
}

// NewReport converts Results into a Report.
func NewReport(r Results) Report {
	return Report{
		Radius:      r.Params.R,
		Width:       r.Params.W,
		Resolution:  r.Params.N,
		SurfaceArea: r.SurfaceArea,
		EdgeLength:  r.EdgeLength,
	}
}

// WriteText prints both estimates with four decimals.
func (r Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Approximate Surface Area: %.4f units²\nApproximate Edge Length: %.4f units\n",
		r.SurfaceArea, r.EdgeLength)
	return err
}

// WriteJSON prints the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(r, "", "\t")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// Write prints the report in the named format, "text" or "json".
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.WriteText(w)
	case "json":
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
