// Package material provides the engineering material catalog.
package material

import (
	"strings"

	"limits-fits/internal/errors"
)

// ReferenceTemp is the temperature at which dimensions are nominal, in
// degrees Celsius.
const ReferenceTemp = 20.0

// Material carries the properties needed for fit calculations.
// CTE is the linear expansion coefficient in 1e-6/K; the elastic and
// strength properties are in MPa. Temp is the temperature the material
// is evaluated at, defaulting to the 20 degree reference.
type Material struct {
	Name          string  `json:"name"`
	Temp          float64 `json:"temp"`
	CTE           float64 `json:"cte"`
	Poissons      float64 `json:"poissons"`
	Youngs        float64 `json:"youngs"`
	YieldStrength float64 `json:"yield_strength"`
	UTS           float64 `json:"uts"`
}

// CarbonSteel is the default shaft material.
func CarbonSteel() Material {
	return Material{
		Name:          "Carbon Steel",
		Temp:          ReferenceTemp,
		CTE:           11.7,
		Poissons:      0.29,
		Youngs:        210_000,
		YieldStrength: 250,
		UTS:           440,
	}
}

// Steel4340Annealed is a through-hardening low-alloy steel.
func Steel4340Annealed() Material {
	return Material{
		Name:          "4340 Steel Annealed",
		Temp:          ReferenceTemp,
		CTE:           12.3,
		Poissons:      0.30,
		Youngs:        129_000,
		YieldStrength: 470,
		UTS:           745,
	}
}

// Brass is the default hub material.
func Brass() Material {
	return Material{
		Name:          "Brass CZ121",
		Temp:          ReferenceTemp,
		CTE:           18.7,
		Poissons:      0.31,
		Youngs:        97_000,
		YieldStrength: 280,
		UTS:           400,
	}
}

// PhosphorBronzePB104 is a common bearing bronze.
func PhosphorBronzePB104() Material {
	return Material{
		Name:          "Phosphor Bronze PB104",
		Temp:          ReferenceTemp,
		CTE:           17.0,
		Poissons:      0.34,
		Youngs:        105_000,
		YieldStrength: 360,
		UTS:           500,
	}
}

// Aluminium6082 is a general-purpose structural alloy.
func Aluminium6082() Material {
	return Material{
		Name:          "Aluminium 6082-T6",
		Temp:          ReferenceTemp,
		CTE:           23.1,
		Poissons:      0.33,
		Youngs:        70_000,
		YieldStrength: 260,
		UTS:           310,
	}
}

// GreyCastIron is a flake-graphite casting iron. Cast iron has no true
// yield point; the 0.1% proof stress stands in.
func GreyCastIron() Material {
	return Material{
		Name:          "Grey Cast Iron GJL-250",
		Temp:          ReferenceTemp,
		CTE:           10.8,
		Poissons:      0.26,
		Youngs:        110_000,
		YieldStrength: 165,
		UTS:           250,
	}
}

// Builtins returns the built-in catalog.
func Builtins() []Material {
	return []Material{
		CarbonSteel(),
		Steel4340Annealed(),
		Brass(),
		PhosphorBronzePB104(),
		Aluminium6082(),
		GreyCastIron(),
	}
}

// Lookup finds a built-in material by name, case-insensitively.
func Lookup(name string) (Material, error) {
	for _, m := range Builtins() {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Material{}, errors.NotFound("material", name)
}
