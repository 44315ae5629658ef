package fit

import (
	"math"
	"testing"

	"limits-fits/core/feature"
	"limits-fits/core/material"
	"limits-fits/core/tolerance"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func resolve(t *testing.T, basic float64, deviation, grade string) feature.Feature {
	t.Helper()
	f, err := feature.Resolve(basic, tolerance.Designation{Deviation: deviation, Grade: grade})
	if err != nil {
		t.Fatalf("%s%s at %g: %v", deviation, grade, basic, err)
	}
	return f
}

func TestNewClearance(t *testing.T) {
	f := New(resolve(t, 10, "H", "7"), resolve(t, 10, "h", "6"))

	if !approx(f.MMC, 0) || !approx(f.LMC, 0.024) || !approx(f.Mid, 0.012) {
		t.Errorf("H7/h6 at 10: mmc=%g lmc=%g mid=%g", f.MMC, f.LMC, f.Mid)
	}
	if f.Kind != Clearance || f.Class != Clearance {
		t.Errorf("H7/h6 at 10: kind=%s class=%s", f.Kind, f.Class)
	}
}

func TestNewTransition(t *testing.T) {
	f := New(resolve(t, 25, "H", "7"), resolve(t, 25, "k", "6"))

	if !approx(f.MMC, -0.015) || !approx(f.LMC, 0.019) || !approx(f.Mid, 0.002) {
		t.Errorf("H7/k6 at 25: mmc=%g lmc=%g mid=%g", f.MMC, f.LMC, f.Mid)
	}
	if f.Kind != Transition {
		t.Errorf("H7/k6 at 25: kind=%s, want Transition", f.Kind)
	}
	// Midpoint is a hair of clearance, so the binary call goes that way.
	if f.Class != Clearance {
		t.Errorf("H7/k6 at 25: class=%s, want Clearance", f.Class)
	}
}

func TestNewInterference(t *testing.T) {
	f := New(resolve(t, 25, "H", "7"), resolve(t, 25, "s", "6"))

	if !approx(f.MMC, -0.048) || !approx(f.LMC, -0.014) {
		t.Errorf("H7/s6 at 25: mmc=%g lmc=%g", f.MMC, f.LMC)
	}
	if f.Kind != Interference || f.Class != Interference {
		t.Errorf("H7/s6 at 25: kind=%s class=%s", f.Kind, f.Class)
	}
}

func TestSplitBasicSizes(t *testing.T) {
	// Nothing requires hole and shaft to share a basic size.
	f := New(resolve(t, 25.1, "H", "7"), resolve(t, 25, "h", "6"))
	if f.Kind != Clearance {
		t.Errorf("split sizes: kind=%s, want Clearance", f.Kind)
	}
	if !approx(f.MMC, 0.1) {
		t.Errorf("split sizes: mmc=%g, want 0.1", f.MMC)
	}
}

func TestManualTolerancesFlowThrough(t *testing.T) {
	// Inverted manual limits still classify mechanically.
	hole := feature.New(10, tolerance.New(-0.02, 0.01))
	shaft := feature.New(10, tolerance.New(0, 0))

	f := New(hole, shaft)
	if !approx(f.MMC, 0.01) || !approx(f.LMC, -0.02) {
		t.Errorf("inverted limits: mmc=%g lmc=%g", f.MMC, f.LMC)
	}
}

func TestClassificationIsTotal(t *testing.T) {
	shaftDevs := []string{"d", "g", "h", "js", "k", "n", "s", "u"}
	for _, dev := range shaftDevs {
		hole := resolve(t, 40, "H", "7")
		shaft := resolve(t, 40, dev, "6")
		f := New(hole, shaft)

		switch f.Kind {
		case Clearance, Transition, Interference:
		default:
			t.Errorf("H7/%s6 at 40: unclassified kind %q", dev, f.Kind)
		}
		if f.MMC > f.LMC {
			t.Errorf("H7/%s6 at 40: mmc %g above lmc %g", dev, f.MMC, f.LMC)
		}
		if !approx(f.Mid, (f.MMC+f.LMC)/2) {
			t.Errorf("H7/%s6 at 40: mid %g inconsistent", dev, f.Mid)
		}
	}
}

func TestNewAtTemperature(t *testing.T) {
	hole := resolve(t, 10, "H", "7")
	shaft := resolve(t, 10, "h", "6")

	cold := New(hole, shaft)
	if cold.Kind != Clearance {
		t.Fatalf("reference fit: kind=%s", cold.Kind)
	}

	// Heating only the shaft eats the clearance.
	holeMat := material.Brass()
	shaftMat := material.CarbonSteel()
	shaftMat.Temp = 100

	hot := NewAtTemperature(hole, shaft, holeMat, shaftMat)
	if hot.MMC >= cold.MMC {
		t.Errorf("hot shaft should tighten mmc: %g vs %g", hot.MMC, cold.MMC)
	}
	if hot.Kind != Transition {
		t.Errorf("hot fit: kind=%s, want Transition", hot.Kind)
	}

	// Both at reference reproduces the plain classification.
	same := NewAtTemperature(hole, shaft, material.Brass(), material.CarbonSteel())
	if !approx(same.MMC, cold.MMC) || !approx(same.LMC, cold.LMC) {
		t.Errorf("reference-temperature fit diverged: %+v vs %+v", same, cold)
	}
}
