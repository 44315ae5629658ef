package output

import (
	"encoding/json"
	"strings"
	"testing"

	"limits-fits/core/feature"
	"limits-fits/core/fit"
	"limits-fits/core/material"
	"limits-fits/core/tolerance"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("yaml", 4); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestFeatureCLI(t *testing.T) {
	f, err := New(FormatCLI, 4)
	if err != nil {
		t.Fatal(err)
	}

	ft := feature.New(10, tolerance.New(0.015, 0))
	out, err := f.Feature("H7", ft)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Ø10 H7", "+15 µm", "+0 µm", "10.0150 / 10.0000 mm"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFeatureJSON(t *testing.T) {
	f, err := New(FormatJSON, 4)
	if err != nil {
		t.Fatal(err)
	}

	ft := feature.New(10, tolerance.New(0.015, 0))
	out, err := f.Feature("H7", ft)
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Designation string          `json:"designation"`
		Feature     feature.Feature `json:"feature"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if decoded.Designation != "H7" || decoded.Feature.Size.Upper != 10.015 {
		t.Errorf("decoded %+v", decoded)
	}
}

func TestFitCLI(t *testing.T) {
	f, err := New(FormatCLI, 4)
	if err != nil {
		t.Fatal(err)
	}

	hole := feature.New(10, tolerance.New(0.015, 0))
	shaft := feature.New(10, tolerance.New(0, -0.009))
	out, err := f.Fit("H7/h6", fit.New(hole, shaft))
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Clearance fit", "mmc:", "+24 µm", "+12 µm"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "behaves as") {
		t.Error("non-transition fits should not print the midpoint call")
	}
}

func TestDeviationUnitSwitch(t *testing.T) {
	f, err := New(FormatCLI, 4)
	if err != nil {
		t.Fatal(err)
	}

	if got := f.deviation(0.015); got != "+15 µm" {
		t.Errorf("deviation(0.015) = %q", got)
	}
	if got := f.deviation(-0.0005); got != "-0.5 µm" {
		t.Errorf("deviation(-0.0005) = %q", got)
	}
	if got := f.deviation(1.5); got != "+1.5 mm" {
		t.Errorf("deviation(1.5) = %q", got)
	}
}

func TestMaterialsCLI(t *testing.T) {
	f, err := New(FormatCLI, 4)
	if err != nil {
		t.Fatal(err)
	}

	out, err := f.Materials(material.Builtins())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Carbon Steel") || !strings.Contains(out, "11.7") {
		t.Errorf("materials output:\n%s", out)
	}
}
