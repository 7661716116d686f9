// Package api exposes the assignment solver over HTTP.
//
// Routes:
//   - GET  /healthz   liveness probe, always {"status":"ok"}.
//   - POST /v1/solve  solves one cost matrix.
//
// Every response carries an X-Request-Id header. Caller mistakes map to
// 400 with kind "invalid_input"; internal solver failures map to 500 with
// kind "internal".
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvassign/hungarian"
	"github.com/katalvlaran/lvassign/matrixio"
)

const (
	// MaxBodyBytes caps the size of a solve request.
	MaxBodyBytes = 1 << 20

	// HeaderRequestID carries the per-request identifier.
	HeaderRequestID = "X-Request-Id"

	kindInvalidInput = "invalid_input"
	kindInternal     = "internal"
)

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Cost       [][]float64 `json:"cost"`
	Algorithm  string      `json:"algorithm,omitempty"`
	Extraction string      `json:"extraction,omitempty"`
}

// SolveResponse is the success body of POST /v1/solve.
type SolveResponse struct {
	TotalCost   float64 `json:"totalCost"`
	Assignment  []int   `json:"assignment"`
	Adjustments int     `json:"adjustments"`
	RequestID   string  `json:"requestId"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"requestId"`
}

type server struct {
	logger *log.Logger
	opts   hungarian.Options
}

// NewRouter builds the chi router. opts are the defaults a request may
// override per field.
func NewRouter(logger *log.Logger, opts hungarian.Options) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &server{logger: logger, opts: opts}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/solve", s.handleSolve)

	return r
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestID assigns a fresh uuid to every request and echoes it back.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestIDFromContext returns the id assigned by the router, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"id", RequestIDFromContext(r.Context()),
		)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := RequestIDFromContext(r.Context())

	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, id, http.StatusBadRequest, kindInvalidInput, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	opts, err := s.requestOptions(req)
	if err != nil {
		s.writeError(w, id, http.StatusBadRequest, kindInvalidInput, err)
		return
	}
	opts.OnRound = func(ri hungarian.RoundInfo) {
		s.logger.Debug("round", "id", id, "round", ri.Round, "matched", ri.Matched, "delta", ri.Delta)
	}

	sol, err := matrixio.Solve(matrixio.Matrix{Cost: req.Cost}, opts)
	if err != nil {
		status, kind := classify(err)
		s.writeError(w, id, status, kind, err)
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		TotalCost:   sol.TotalCost,
		Assignment:  sol.Assignment,
		Adjustments: sol.Adjustments,
		RequestID:   id,
	})
}

// requestOptions overlays the request's algorithm and extraction on the
// server defaults.
func (s *server) requestOptions(req SolveRequest) (hungarian.Options, error) {
	opts := s.opts
	if req.Algorithm != "" {
		algo, err := hungarian.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return opts, fmt.Errorf("%w: algorithm %q", err, req.Algorithm)
		}
		opts.Algo = algo
	}
	if req.Extraction != "" {
		ext, err := hungarian.ParseExtraction(req.Extraction)
		if err != nil {
			return opts, fmt.Errorf("%w: extraction %q", err, req.Extraction)
		}
		opts.Extraction = ext
	}

	return opts, nil
}

// classify maps the solver's error taxonomy to a status code and kind.
func classify(err error) (int, string) {
	if errors.Is(err, hungarian.ErrInvalidInput) {
		return http.StatusBadRequest, kindInvalidInput
	}

	return http.StatusInternalServerError, kindInternal
}

func (s *server) writeError(w http.ResponseWriter, id string, status int, kind string, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("solve failed", "id", id, "err", err)
	} else {
		s.logger.Debug("rejected request", "id", id, "err", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind, RequestID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
