// Package output renders resolution and fit results for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"limits-fits/core/feature"
	"limits-fits/core/fit"
	"limits-fits/core/material"
	"limits-fits/internal/errors"
)

// Supported output formats.
const (
	FormatCLI  = "cli"
	FormatJSON = "json"
)

// Formatter renders results in a fixed format with a fixed number of
// decimal places. Rounding happens here only; upstream values are exact.
type Formatter struct {
	format string
	places int32
}

// New creates a formatter. places is the millimetre precision; deviations
// small enough to print in micrometres drop three places accordingly.
func New(format string, places int) (*Formatter, error) {
	switch format {
	case FormatCLI, FormatJSON:
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format %q", format)
	}
	if places < 0 {
		places = 0
	}
	return &Formatter{format: format, places: int32(places)}, nil
}

type featureResult struct {
	Designation string          `json:"designation"`
	Feature     feature.Feature `json:"feature"`
}

// Feature renders a resolved feature.
func (f *Formatter) Feature(designation string, ft feature.Feature) (string, error) {
	if f.format == FormatJSON {
		return f.marshal(featureResult{Designation: designation, Feature: ft})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ø%s %s\n", f.basic(ft.Size.Basic), designation)
	fmt.Fprintf(&b, "  upper deviation: %s\n", f.deviation(ft.Tolerance.Upper))
	fmt.Fprintf(&b, "  lower deviation: %s\n", f.deviation(ft.Tolerance.Lower))
	fmt.Fprintf(&b, "  limits:          %s / %s mm\n", f.limit(ft.Size.Upper), f.limit(ft.Size.Lower))
	return b.String(), nil
}

type fitResult struct {
	Designation string  `json:"designation"`
	Fit         fit.Fit `json:"fit"`
}

// Fit renders a classified fit. label is the pairing designation,
// e.g. "H7/h6".
func (f *Formatter) Fit(label string, ft fit.Fit) (string, error) {
	if f.format == FormatJSON {
		return f.marshal(fitResult{Designation: label, Fit: ft})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ø%s %s: %s fit\n", f.basic(ft.Hole.Size.Basic), label, ft.Kind)
	if ft.Kind == fit.Transition {
		fmt.Fprintf(&b, "  behaves as:      %s\n", ft.Class)
	}
	fmt.Fprintf(&b, "  hole limits:     %s / %s mm\n", f.limit(ft.Hole.Size.Upper), f.limit(ft.Hole.Size.Lower))
	fmt.Fprintf(&b, "  shaft limits:    %s / %s mm\n", f.limit(ft.Shaft.Size.Upper), f.limit(ft.Shaft.Size.Lower))
	fmt.Fprintf(&b, "  mmc:             %s\n", f.deviation(ft.MMC))
	fmt.Fprintf(&b, "  lmc:             %s\n", f.deviation(ft.LMC))
	fmt.Fprintf(&b, "  mid:             %s\n", f.deviation(ft.Mid))
	return b.String(), nil
}

// Materials renders the catalog.
func (f *Formatter) Materials(materials []material.Material) (string, error) {
	if f.format == FormatJSON {
		return f.marshal(materials)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-26s %8s %8s %9s %7s %7s\n", "NAME", "CTE", "POISSON", "YOUNGS", "YIELD", "UTS")
	for _, m := range materials {
		fmt.Fprintf(&b, "%-26s %8.1f %8.2f %9.0f %7.0f %7.0f\n",
			m.Name, m.CTE, m.Poissons, m.Youngs, m.YieldStrength, m.UTS)
	}
	return b.String(), nil
}

type codesResult struct {
	Grades          []string `json:"grades"`
	HoleDeviations  []string `json:"hole_deviations"`
	ShaftDeviations []string `json:"shaft_deviations"`
}

// Codes renders the recognized grade and deviation codes.
func (f *Formatter) Codes(grades, holes, shafts []string) (string, error) {
	if f.format == FormatJSON {
		return f.marshal(codesResult{Grades: grades, HoleDeviations: holes, ShaftDeviations: shafts})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "grades:           %s\n", strings.Join(grades, " "))
	fmt.Fprintf(&b, "hole deviations:  %s\n", strings.Join(holes, " "))
	fmt.Fprintf(&b, "shaft deviations: %s\n", strings.Join(shafts, " "))
	return b.String(), nil
}

func (f *Formatter) marshal(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Internal("encoding output", err)
	}
	return string(data) + "\n", nil
}

// basic prints a basic size without trailing zeros.
func (f *Formatter) basic(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// limit prints an absolute limit in millimetres at full precision.
func (f *Formatter) limit(v float64) string {
	return decimal.NewFromFloat(v).Round(f.places).StringFixed(f.places)
}

// deviation prints a signed deviation, in micrometres while it is small
// enough to read that way, otherwise in millimetres.
func (f *Formatter) deviation(v float64) string {
	var s, unit string
	if math.Abs(v) < 1 {
		places := f.places - 3
		if places < 0 {
			places = 0
		}
		s = decimal.NewFromFloat(v * 1000).Round(places).String()
		unit = "µm"
	} else {
		s = decimal.NewFromFloat(v).Round(f.places).String()
		unit = "mm"
	}
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + " " + unit
}
