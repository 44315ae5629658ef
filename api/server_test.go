package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"limits-fits/core/fit"
	"limits-fits/core/material"
)

func newTestServer() *Server {
	return NewServer(material.NewLibrary(), "test")
}

func do(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestResolveEndpoint(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/resolve", ResolveRequest{Size: 10, Designation: "H7"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp ResolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Designation != "H7" {
		t.Errorf("designation %q", resp.Designation)
	}
	if math.Abs(resp.Feature.Size.Upper-10.015) > 1e-9 || math.Abs(resp.Feature.Size.Lower-10) > 1e-9 {
		t.Errorf("limits (%g, %g)", resp.Feature.Size.Upper, resp.Feature.Size.Lower)
	}
}

func TestResolveEndpointErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		req  ResolveRequest
		code int
	}{
		{"non-positive size", ResolveRequest{Size: 0, Designation: "H7"}, http.StatusBadRequest},
		{"bad designation", ResolveRequest{Size: 10, Designation: "7H"}, http.StatusBadRequest},
		{"unknown grade", ResolveRequest{Size: 10, Designation: "H99"}, http.StatusUnprocessableEntity},
		{"unknown deviation", ResolveRequest{Size: 10, Designation: "Q7"}, http.StatusUnprocessableEntity},
		{"out of range", ResolveRequest{Size: 4000, Designation: "H7"}, http.StatusBadRequest},
		{"overflowing size", ResolveRequest{Size: 1e19, Designation: "H7"}, http.StatusBadRequest},
		{"undefined combination", ResolveRequest{Size: 53, Designation: "T3"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/resolve", tt.req)
			if rec.Code != tt.code {
				t.Errorf("status %d, want %d: %s", rec.Code, tt.code, rec.Body.String())
			}
		})
	}
}

func TestFitEndpoint(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/fit", FitRequest{
		Hole:  FeatureInput{Size: 10, Designation: "H7"},
		Shaft: FeatureInput{Size: 10, Designation: "h6"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp FitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Designation != "H7/h6" || resp.AtTemperature {
		t.Errorf("designation %q, at_temperature %v", resp.Designation, resp.AtTemperature)
	}
	if resp.Fit.Kind != fit.Clearance {
		t.Errorf("kind %s", resp.Fit.Kind)
	}
}

func TestFitEndpointManualAndThermal(t *testing.T) {
	s := newTestServer()

	upper, lower := 0.0, -0.02
	temp := 100.0

	rec := do(t, s, http.MethodPost, "/fit", FitRequest{
		Hole:  FeatureInput{Size: 10, Designation: "H7"},
		Shaft: FeatureInput{Size: 10, Upper: &upper, Lower: &lower, Material: "Carbon Steel", Temp: &temp},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp FitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Designation != "H7/manual" || !resp.AtTemperature {
		t.Errorf("designation %q, at_temperature %v", resp.Designation, resp.AtTemperature)
	}

	// The heated shaft is larger than its drawn limits, which eats the
	// clearance at maximum material condition.
	if resp.Fit.MMC >= 0 {
		t.Errorf("mmc %g should reflect thermal growth", resp.Fit.MMC)
	}
}

func TestFitEndpointConventionMismatch(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/fit", FitRequest{
		Hole:  FeatureInput{Size: 10, Designation: "h7"},
		Shaft: FeatureInput{Size: 10, Designation: "h6"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestFitEndpointUnknownMaterial(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/fit", FitRequest{
		Hole:  FeatureInput{Size: 10, Designation: "H7", Material: "unobtainium"},
		Shaft: FeatureInput{Size: 10, Designation: "h6"},
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestMaterialsEndpoint(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/materials", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var materials []material.Material
	if err := json.Unmarshal(rec.Body.Bytes(), &materials); err != nil {
		t.Fatal(err)
	}
	if len(materials) == 0 {
		t.Error("expected built-in materials")
	}
}

func TestCodesEndpoint(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/codes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp CodesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Grades) != 20 || len(resp.HoleDeviations) != 28 || len(resp.ShaftDeviations) != 28 {
		t.Errorf("code counts: %d grades, %d hole, %d shaft",
			len(resp.Grades), len(resp.HoleDeviations), len(resp.ShaftDeviations))
	}
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer()

	if rec := do(t, s, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Errorf("health status %d", rec.Code)
	}

	rec := do(t, s, http.MethodGet, "/version", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("version status %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["version"] != "test" {
		t.Errorf("version %q", resp["version"])
	}
}
