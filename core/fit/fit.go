// Package fit classifies hole and shaft pairings.
package fit

import (
	"limits-fits/core/feature"
	"limits-fits/core/material"
)

// Kind classifies a fit.
type Kind string

const (
	Clearance    Kind = "Clearance"
	Transition   Kind = "Transition"
	Interference Kind = "Interference"
)

// Fit pairs a hole feature with a shaft feature. MMC is the clearance at
// maximum material condition (tightest), LMC at least material condition
// (loosest); negative values are interference. Kind is the three-way
// classification from the extremes; Class is the binary call from the
// midpoint, splitting transition fits by their likely behaviour.
type Fit struct {
	Hole  feature.Feature `json:"hole"`
	Shaft feature.Feature `json:"shaft"`
	MMC   float64         `json:"mmc"`
	LMC   float64         `json:"lmc"`
	Mid   float64         `json:"mid"`
	Kind  Kind            `json:"kind"`
	Class Kind            `json:"class"`
}

// New classifies the pairing at the reference temperature. Inputs pass
// through mechanically; manual tolerances are not validated.
func New(hole, shaft feature.Feature) Fit {
	return classify(hole, shaft, hole.Size, shaft.Size)
}

// NewAtTemperature classifies the pairing with each feature grown to its
// material's evaluation temperature.
func NewAtTemperature(hole, shaft feature.Feature, holeMat, shaftMat material.Material) Fit {
	return classify(hole, shaft, hole.Grown(holeMat), shaft.Grown(shaftMat))
}

func classify(hole, shaft feature.Feature, holeSize, shaftSize feature.Size) Fit {
	mmc := holeSize.Lower - shaftSize.Upper
	lmc := holeSize.Upper - shaftSize.Lower
	mid := (mmc + lmc) / 2

	kind := Transition
	switch {
	case mmc >= 0:
		kind = Clearance
	case lmc <= 0:
		kind = Interference
	}

	class := Clearance
	if mid < 0 {
		class = Interference
	}

	return Fit{
		Hole:  hole,
		Shaft: shaft,
		MMC:   mmc,
		LMC:   lmc,
		Mid:   mid,
		Kind:  kind,
		Class: class,
	}
}
