package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	outputFormat = ""
	libraryPath = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return buf.String()
}

func TestResolveCommand(t *testing.T) {
	out := execute(t, "resolve", "10", "H7")
	for _, want := range []string{"Ø10 H7", "+15 µm", "10.0150 / 10.0000 mm"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResolveCommandJSON(t *testing.T) {
	out := execute(t, "resolve", "10", "H7", "--format", "json")

	var resp struct {
		Designation string `json:"designation"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if resp.Designation != "H7" {
		t.Errorf("designation %q", resp.Designation)
	}
}

func TestResolveCommandErrors(t *testing.T) {
	rootCmd.SetArgs([]string{"resolve", "10", "H99"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for an unknown grade")
	}

	rootCmd.SetArgs([]string{"resolve", "0", "H7"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for a non-positive size")
	}
}

func TestFitCommand(t *testing.T) {
	out := execute(t, "fit", "10", "H7/h6")
	if !strings.Contains(out, "Clearance fit") {
		t.Errorf("output:\n%s", out)
	}
}

func TestCodesCommand(t *testing.T) {
	out := execute(t, "codes")
	if !strings.Contains(out, "grades:") || !strings.Contains(out, "js") {
		t.Errorf("output:\n%s", out)
	}
}

func TestMaterialsCommand(t *testing.T) {
	out := execute(t, "materials")
	if !strings.Contains(out, "Carbon Steel") {
		t.Errorf("output:\n%s", out)
	}
}
