// Package component groups features of a single part with its material.
package component

import (
	"limits-fits/core/feature"
	"limits-fits/core/material"
	"limits-fits/core/tolerance"
)

// Component is a part with up to two features of size. A hub carries a
// bore, a shaft an OD; a bushing carries both.
type Component struct {
	Name     string            `json:"name"`
	Bore     *feature.Feature  `json:"bore,omitempty"`
	OD       *feature.Feature  `json:"od,omitempty"`
	Material material.Material `json:"material"`
}

// DefaultHub returns a brass hub with a 10 mm H7 bore.
func DefaultHub() Component {
	bore, _ := feature.Resolve(10, tolerance.Designation{Deviation: "H", Grade: "7"})
	return Component{
		Name:     "Hub",
		Bore:     &bore,
		Material: material.Brass(),
	}
}

// DefaultShaft returns a carbon-steel shaft with a 10 mm h6 OD.
func DefaultShaft() Component {
	od, _ := feature.Resolve(10, tolerance.Designation{Deviation: "h", Grade: "6"})
	return Component{
		Name:     "Shaft",
		OD:       &od,
		Material: material.CarbonSteel(),
	}
}
