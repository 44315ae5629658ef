package tolerance

import (
	"math"
	"strings"
	"unicode"

	"limits-fits/core/standard"
	"limits-fits/internal/errors"
)

// Designation pairs a fundamental-deviation letter with an IT grade code,
// e.g. {H, 7} or {js, 4}. An upper-case letter selects the hole
// convention, lower-case the shaft convention.
type Designation struct {
	Deviation string `json:"deviation"`
	Grade     string `json:"grade"`
}

// Parse splits a compact designation such as "H7", "js4" or "ZC11" at the
// first digit.
func Parse(s string) (Designation, error) {
	i := strings.IndexFunc(s, unicode.IsDigit)
	if i <= 0 {
		return Designation{}, errors.Input("designation must be a deviation letter followed by a grade, e.g. H7").
			WithContext("designation", s)
	}
	return Designation{Deviation: s[:i], Grade: s[i:]}, nil
}

// String returns the compact form, e.g. "H7".
func (d Designation) String() string {
	return d.Deviation + d.Grade
}

// IsHole reports whether the designation uses the hole convention.
func (d Designation) IsHole() bool {
	for _, r := range d.Deviation {
		return unicode.IsUpper(r)
	}
	return false
}

// mm converts the internal fixed-point unit, tenths of a micrometre, to
// millimetres. Conversion happens once per limit, at the return.
func mm(tenths int) float64 {
	return float64(tenths) / 10_000
}

// kzcDeviation resolves the k-zc letters for both conventions from the
// shared magnitude table, in tenths of a micrometre. Shafts take the
// magnitude directly as the lower deviation; holes mirror the sign,
// apply the Delta correction, and carry extra grade guards. Keeping one
// function here stops the two conventions drifting apart under table
// updates.
func kzcDeviation(hole bool, size float64, lookup, devCol, gradeCol int) (int, bool) {
	if !hole {
		// Shaft k deviates only at IT4-IT7; elsewhere it sits on zero.
		if devCol == standard.ColK && (gradeCol < 6 || gradeCol > 9) {
			return 0, true
		}
		base, ok := standard.KZC(lookup, devCol)
		if !ok {
			return 0, false
		}
		return base * 10, true
	}

	switch devCol {
	case standard.ColK:
		if gradeCol > 10 && size > 3 {
			return 0, false
		}
	case standard.ColM:
	case standard.ColN:
		if gradeCol > 10 && (size > 500 || size <= 1) {
			return 0, false
		}
	default: // p through zc: holes need IT8 or coarser
		if gradeCol <= 9 {
			return 0, false
		}
	}

	base, ok := standard.KZC(lookup, devCol)
	if !ok {
		return 0, false
	}
	es := -base*10 + standard.Delta(lookup, gradeCol)
	// M6 between 250 and 315 mm carries a fixed ES of -9 um.
	if devCol == standard.ColM && gradeCol == 8 && size > 250 && size <= 315 {
		es += 20
	}
	return es, true
}

// Resolve computes the deviation limits for a basic size in millimetres.
// Sizes between band bounds resolve through the band covering their
// ceiling. Every failure is a typed error: unknown codes, sizes beyond
// 3150 mm, or combinations the standard leaves undefined.
func (d Designation) Resolve(size float64) (Tolerance, error) {
	gradeCol, ok := standard.GradeIndex(d.Grade)
	if !ok {
		return Tolerance{}, errors.UnknownGrade(d.Grade)
	}
	devCol, ok := standard.DeviationIndex(d.Deviation)
	if !ok {
		return Tolerance{}, errors.UnknownDeviation(d.Deviation)
	}

	if !standard.InRange(size) {
		return Tolerance{}, errors.OutOfRange(size)
	}
	lookup := int(math.Ceil(size))
	tol, ok := standard.ITValue(lookup, gradeCol)
	if !ok {
		return Tolerance{}, d.undefined(size)
	}

	if d.IsHole() {
		return d.resolveHole(size, lookup, tol, devCol, gradeCol)
	}
	return d.resolveShaft(size, lookup, tol, devCol, gradeCol)
}

func (d Designation) undefined(size float64) *errors.Error {
	return errors.Undefined(size, d.Deviation, d.Grade)
}

// resolveHole applies the hole-convention rules. tol is the IT magnitude
// in tenths of a micrometre.
func (d Designation) resolveHole(size float64, lookup, tol, devCol, gradeCol int) (Tolerance, error) {
	switch {
	case devCol <= standard.ColG:
		// A and B are not defined at or below 1 mm.
		if (devCol == standard.ColA || devCol == standard.ColB) && size <= 1 {
			return Tolerance{}, d.undefined(size)
		}
		v, ok := standard.DeviationAG(lookup, devCol)
		if !ok {
			return Tolerance{}, d.undefined(size)
		}
		ei := v * 10
		return Tolerance{Upper: mm(ei + tol), Lower: mm(ei)}, nil

	case devCol == standard.ColH:
		return Tolerance{Upper: mm(tol), Lower: 0}, nil

	case devCol == standard.ColJS:
		half := mm(tol) / 2
		return Tolerance{Upper: half, Lower: -half}, nil

	case devCol == standard.ColJ:
		if gradeCol < 8 || gradeCol > 10 {
			return Tolerance{}, d.undefined(size)
		}
		v, ok := standard.UpperJ(lookup, gradeCol)
		if !ok {
			return Tolerance{}, d.undefined(size)
		}
		es := v * 10
		return Tolerance{Upper: mm(es), Lower: mm(es - tol)}, nil

	default: // K through ZC
		es, ok := kzcDeviation(true, size, lookup, devCol, gradeCol)
		if !ok {
			return Tolerance{}, d.undefined(size)
		}
		return Tolerance{Upper: mm(es), Lower: mm(es - tol)}, nil
	}
}

// resolveShaft applies the shaft-convention rules.
func (d Designation) resolveShaft(size float64, lookup, tol, devCol, gradeCol int) (Tolerance, error) {
	switch {
	case devCol <= standard.ColG:
		if (devCol == standard.ColA || devCol == standard.ColB) && size <= 1 {
			return Tolerance{}, d.undefined(size)
		}
		v, ok := standard.DeviationAG(lookup, devCol)
		if !ok {
			return Tolerance{}, d.undefined(size)
		}
		es := -v * 10
		return Tolerance{Upper: mm(es), Lower: mm(es - tol)}, nil

	case devCol == standard.ColH:
		return Tolerance{Upper: 0, Lower: mm(-tol)}, nil

	case devCol == standard.ColJS:
		half := mm(tol) / 2
		return Tolerance{Upper: half, Lower: -half}, nil

	case devCol == standard.ColJ:
		if gradeCol < 7 || gradeCol > 10 {
			return Tolerance{}, d.undefined(size)
		}
		v, ok := standard.LowerJ(lookup, gradeCol)
		if !ok {
			return Tolerance{}, d.undefined(size)
		}
		ei := -v * 10
		return Tolerance{Upper: mm(ei + tol), Lower: mm(ei)}, nil

	default: // k through zc
		ei, ok := kzcDeviation(false, size, lookup, devCol, gradeCol)
		if !ok {
			return Tolerance{}, d.undefined(size)
		}
		return Tolerance{Upper: mm(ei + tol), Lower: mm(ei)}, nil
	}
}
