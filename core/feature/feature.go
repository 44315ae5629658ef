// Package feature models toleranced features of size.
package feature

import (
	"limits-fits/core/material"
	"limits-fits/core/tolerance"
)

// Size carries a basic size and its absolute limits, in millimetres.
type Size struct {
	Basic float64 `json:"basic"`
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

// Mid returns the midpoint of the limits.
func (s Size) Mid() float64 {
	return (s.Upper + s.Lower) / 2
}

// Feature is a single dimensioned feature, a bore or a shaft OD.
type Feature struct {
	Size      Size                `json:"size"`
	Tolerance tolerance.Tolerance `json:"tolerance"`
}

// New builds a feature from a basic size and a tolerance, manual or
// resolved.
func New(basic float64, tol tolerance.Tolerance) Feature {
	return Feature{
		Size: Size{
			Basic: basic,
			Upper: basic + tol.Upper,
			Lower: basic + tol.Lower,
		},
		Tolerance: tol,
	}
}

// Resolve builds a feature by resolving a designation at the basic size.
func Resolve(basic float64, d tolerance.Designation) (Feature, error) {
	tol, err := d.Resolve(basic)
	if err != nil {
		return Feature{}, err
	}
	return New(basic, tol), nil
}

// AtTemperature scales the limits to a temperature, given an expansion
// coefficient in 1e-6/K. Each limit grows independently from the 20
// degree reference.
func (f Feature) AtTemperature(temp, cte float64) Size {
	scale := 1 + cte*1e-6*(temp-material.ReferenceTemp)
	return Size{
		Basic: f.Size.Basic * scale,
		Upper: f.Size.Upper * scale,
		Lower: f.Size.Lower * scale,
	}
}

// Grown scales the limits to the material's evaluation temperature.
func (f Feature) Grown(m material.Material) Size {
	return f.AtTemperature(m.Temp, m.CTE)
}
