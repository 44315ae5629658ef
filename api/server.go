// Package api exposes the resolution engine over HTTP. The layer stays
// thin: decode, call the engine, serialize.
package api

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"limits-fits/core/feature"
	"limits-fits/core/fit"
	"limits-fits/core/material"
	"limits-fits/core/standard"
	"limits-fits/core/tolerance"
	"limits-fits/internal/errors"
	"limits-fits/internal/logging"
)

// Server is the HTTP API server.
type Server struct {
	mux     *http.ServeMux
	library *material.Library
	version string
}

// NewServer creates a server backed by a material library.
func NewServer(library *material.Library, version string) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		library: library,
		version: version,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /resolve", s.handleResolve)
	s.mux.HandleFunc("POST /fit", s.handleFit)
	s.mux.HandleFunc("GET /materials", s.handleMaterials)
	s.mux.HandleFunc("GET /codes", s.handleCodes)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	logging.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("duration", time.Since(start)))
}

// Start runs the server on the given address, blocking.
func (s *Server) Start(addr string) error {
	logging.Info("starting server", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.TypeInput, "decoding request", err))
		return
	}
	if err := validateSize(req.Size); err != nil {
		writeError(w, err)
		return
	}

	d, err := tolerance.Parse(req.Designation)
	if err != nil {
		writeError(w, err)
		return
	}
	ft, err := feature.Resolve(req.Size, d)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResolveResponse{Designation: d.String(), Feature: ft})
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req FitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.TypeInput, "decoding request", err))
		return
	}

	hole, holeLabel, err := buildFeature(req.Hole, true)
	if err != nil {
		writeError(w, err)
		return
	}
	shaft, shaftLabel, err := buildFeature(req.Shaft, false)
	if err != nil {
		writeError(w, err)
		return
	}

	holeMat, holeThermal, err := s.materialFor(req.Hole)
	if err != nil {
		writeError(w, err)
		return
	}
	shaftMat, shaftThermal, err := s.materialFor(req.Shaft)
	if err != nil {
		writeError(w, err)
		return
	}

	thermal := holeThermal || shaftThermal
	var result fit.Fit
	if thermal {
		result = fit.NewAtTemperature(hole, shaft, holeMat, shaftMat)
	} else {
		result = fit.New(hole, shaft)
	}

	writeJSON(w, http.StatusOK, FitResponse{
		Designation:   holeLabel + "/" + shaftLabel,
		AtTemperature: thermal,
		Fit:           result,
	})
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.library.Materials())
}

func (s *Server) handleCodes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CodesResponse{
		Grades:          standard.Grades(),
		HoleDeviations:  standard.HoleDeviations(),
		ShaftDeviations: standard.ShaftDeviations(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// buildFeature turns one side of a fit request into a feature, returning
// the label used in the response designation.
func buildFeature(in FeatureInput, hole bool) (feature.Feature, string, error) {
	if err := validateSize(in.Size); err != nil {
		return feature.Feature{}, "", err
	}

	if in.Upper != nil || in.Lower != nil {
		if in.Upper == nil || in.Lower == nil {
			return feature.Feature{}, "", errors.Input("manual tolerances need both upper and lower")
		}
		return feature.New(in.Size, tolerance.New(*in.Upper, *in.Lower)), "manual", nil
	}

	d, err := tolerance.Parse(in.Designation)
	if err != nil {
		return feature.Feature{}, "", err
	}
	if d.IsHole() != hole {
		return feature.Feature{}, "", errors.Input("hole designations are upper-case, shaft lower-case").
			WithContext("designation", d.String())
	}
	ft, err := feature.Resolve(in.Size, d)
	return ft, d.String(), err
}

// materialFor assembles the thermal parameters for one side. The second
// return reports whether the side opted into the thermal calculation.
func (s *Server) materialFor(in FeatureInput) (material.Material, bool, error) {
	m := material.Material{Temp: material.ReferenceTemp}
	thermal := false

	if in.Material != "" {
		found, err := s.library.Lookup(in.Material)
		if err != nil {
			return m, false, err
		}
		m = found
		thermal = true
	}
	if in.CTE != nil {
		m.CTE = *in.CTE
		thermal = true
	}
	if in.Temp != nil {
		m.Temp = *in.Temp
		thermal = true
	}
	return m, thermal, nil
}

func validateSize(size float64) error {
	if math.IsNaN(size) || size <= 0 {
		return errors.Input("size must be a positive number of millimetres")
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.IsType(err, errors.TypeInput):
		return http.StatusBadRequest
	case errors.IsType(err, errors.TypeOutOfRange):
		return http.StatusBadRequest
	case errors.IsType(err, errors.TypeNotFound):
		return http.StatusNotFound
	case errors.IsType(err, errors.TypeUnknownGrade),
		errors.IsType(err, errors.TypeUnknownDeviation),
		errors.IsType(err, errors.TypeUndefined):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	var payload interface{}
	if e, ok := err.(*errors.Error); ok {
		payload = e
	} else {
		payload = map[string]string{"message": err.Error()}
	}
	writeJSON(w, statusFor(err), map[string]interface{}{"error": payload})
}
