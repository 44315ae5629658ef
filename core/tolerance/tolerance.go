// Package tolerance resolves ISO 286 designations to deviation limits.
package tolerance

import "github.com/shopspring/decimal"

// Tolerance is a pair of deviations from the basic size, in millimetres.
// Upper is ES/es, Lower is EI/ei.
type Tolerance struct {
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

// New builds a tolerance from explicit deviations. Nothing enforces
// Upper >= Lower; manual tolerances flow through as given.
func New(upper, lower float64) Tolerance {
	return Tolerance{Upper: upper, Lower: lower}
}

// Mid returns the midpoint deviation.
func (t Tolerance) Mid() float64 {
	return (t.Upper + t.Lower) / 2
}

// Width returns the tolerance band width.
func (t Tolerance) Width() float64 {
	return t.Upper - t.Lower
}

// Round returns the tolerance with both deviations rounded to the given
// number of decimal places. Used at the presentation boundary only; the
// resolver itself is exact.
func (t Tolerance) Round(places int32) Tolerance {
	return Tolerance{
		Upper: decimal.NewFromFloat(t.Upper).Round(places).InexactFloat64(),
		Lower: decimal.NewFromFloat(t.Lower).Round(places).InexactFloat64(),
	}
}
