package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/printwise/stlweight/pkg/material"
	"github.com/printwise/stlweight/pkg/stl"
	"github.com/printwise/stlweight/pkg/weight"
)

// weightResponse is the success payload. The weight is formatted to two
// decimal places as a string, matching what clients of this API expect.
type weightResponse struct {
	WeightGrams string `json:"weight_grams"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCalculateWeight(w http.ResponseWriter, r *http.Request) {
	applyCORS(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := time.Now()

	req, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := readUpload(r, int64(s.cfg.MaxUploadMB)<<20)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	grams, err := weight.Estimate(data, req)
	if err != nil {
		status := http.StatusInternalServerError
		if isRequestError(err) {
			status = http.StatusBadRequest
		}
		s.log.Warn("estimate failed",
			zap.Error(err),
			zap.Int("uploadBytes", len(data)),
			zap.Int("status", status))
		writeError(w, status, err.Error())
		return
	}

	s.log.Info("estimate served",
		zap.Float64("grams", grams),
		zap.Int("uploadBytes", len(data)),
		zap.String("material", req.Material),
		zap.Duration("elapsed", time.Since(start)))

	writeJSON(w, http.StatusOK, weightResponse{
		WeightGrams: fmt.Sprintf("%.2f", grams),
	})
}

// parseQuery extracts the numeric parameters from the URL query.
func parseQuery(r *http.Request) (weight.Request, error) {
	q := r.URL.Query()

	var req weight.Request
	for _, p := range []struct {
		key  string
		dest *float64
	}{
		{"x_dim", &req.TargetX},
		{"y_dim", &req.TargetY},
		{"z_dim", &req.TargetZ},
		{"infill_percentage", &req.InfillPercent},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			return weight.Request{}, fmt.Errorf("missing query parameter %q", p.key)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return weight.Request{}, fmt.Errorf("invalid query parameter %q: %q", p.key, raw)
		}
		*p.dest = value
	}

	// Absent material falls back to PLA inside the estimator; an explicitly
	// unknown name is rejected there rather than silently substituted.
	req.Material = q.Get("material")
	return req, nil
}

// readUpload returns the bytes of the first multipart file field.
func readUpload(r *http.Request, maxBytes int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("expected a multipart upload: %v", err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file: %v", err)
		}
		if part.FileName() == "" {
			continue
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file: %v", err)
		}
		return data, nil
	}
	return nil, errors.New("no STL file was uploaded")
}

// isRequestError reports whether the failure was caused by the client's
// input rather than the server.
func isRequestError(err error) bool {
	var degenerate *weight.DegenerateAxisError
	return errors.Is(err, stl.ErrEmptyInput) ||
		errors.Is(err, stl.ErrMalformed) ||
		errors.Is(err, weight.ErrInvalidTarget) ||
		errors.Is(err, weight.ErrInvalidInfill) ||
		errors.Is(err, material.ErrUnknownMaterial) ||
		errors.As(err, &degenerate)
}

func applyCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "*")
	h.Set("Access-Control-Max-Age", "3600")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
