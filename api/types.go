package api

import (
	"limits-fits/core/feature"
	"limits-fits/core/fit"
)

// ResolveRequest asks for the limits of one designation at a basic size.
type ResolveRequest struct {
	Size        float64 `json:"size"`
	Designation string  `json:"designation"`
}

// ResolveResponse carries the resolved feature.
type ResolveResponse struct {
	Designation string          `json:"designation"`
	Feature     feature.Feature `json:"feature"`
}

// FeatureInput describes one side of a fit. Either a designation or a
// manual (upper, lower) tolerance pair selects the limits; material,
// temp and cte opt the side into the at-temperature calculation, with
// explicit temp/cte overriding the material's values.
type FeatureInput struct {
	Size        float64  `json:"size"`
	Designation string   `json:"designation,omitempty"`
	Upper       *float64 `json:"upper,omitempty"`
	Lower       *float64 `json:"lower,omitempty"`
	Material    string   `json:"material,omitempty"`
	Temp        *float64 `json:"temp,omitempty"`
	CTE         *float64 `json:"cte,omitempty"`
}

// FitRequest asks for the classification of a hole/shaft pairing.
type FitRequest struct {
	Hole  FeatureInput `json:"hole"`
	Shaft FeatureInput `json:"shaft"`
}

// FitResponse carries the classified fit.
type FitResponse struct {
	Designation   string  `json:"designation"`
	AtTemperature bool    `json:"at_temperature"`
	Fit           fit.Fit `json:"fit"`
}

// CodesResponse lists the recognized codes.
type CodesResponse struct {
	Grades          []string `json:"grades"`
	HoleDeviations  []string `json:"hole_deviations"`
	ShaftDeviations []string `json:"shaft_deviations"`
}
