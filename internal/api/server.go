// Package api exposes configuration resolution and cost estimation over
// HTTP. The handlers only decode input, call into config and pricing, and
// serialize the result; no resolution or cost logic lives here.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/errors"
	"github.com/devplane/devplane/internal/logging"
	"github.com/devplane/devplane/internal/pricing"
)

// Server is the HTTP API server.
type Server struct {
	mux       *http.ServeMux
	estimator *pricing.Estimator
	table     *pricing.Table
	version   string
}

// NewServer creates a server priced from the builtin table.
func NewServer(version string) *Server {
	return NewServerWithTable(version, pricing.DefaultTable())
}

// NewServerWithTable creates a server priced from the given table.
func NewServerWithTable(version string, table *pricing.Table) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		estimator: pricing.NewEstimatorWithTable(table),
		table:     table,
		version:   version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes.
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.Handle("POST /v1/resolve", instrument("resolve", http.HandlerFunc(s.handleResolve)))
	s.mux.Handle("POST /v1/estimate", instrument("estimate", http.HandlerFunc(s.handleEstimate)))

	// Supporting endpoints
	s.mux.Handle("GET /healthz", http.HandlerFunc(s.handleHealth))
	s.mux.Handle("GET /version", http.HandlerFunc(s.handleVersion))
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// resolveResponse pairs the resolved configuration with the resource names
// derived from it.
type resolveResponse struct {
	EffectiveConfig *config.EffectiveConfig `json:"effective_config"`
	Names           config.DerivedNames     `json:"names"`
}

// handleResolve handles POST /v1/resolve.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeConfig(r)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	effective, err := config.Resolve(cfg)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, resolveResponse{
		EffectiveConfig: effective,
		Names:           effective.DerivedNames(),
	}, http.StatusOK)
}

// handleEstimate handles POST /v1/estimate.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeConfig(r)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	effective, err := config.Resolve(cfg)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	breakdown := s.estimator.Estimate(effective)
	s.writeJSON(w, pricing.NewJSONBreakdown(breakdown), http.StatusOK)
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":          s.version,
		"api_version":      "v1",
		"defaults_version": config.DefaultsVersion,
		"table_version":    s.table.Version,
	}, http.StatusOK)
}

// decodeConfig parses the request body into a Config, rejecting unknown
// fields so typos fail loudly instead of silently resolving to defaults.
func decodeConfig(r *http.Request) (*config.Config, error) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var cfg config.Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// writeDomainError maps a typed domain error onto an HTTP status. The error
// type travels as the envelope code so clients can match without parsing
// message text.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	s.writeError(w, string(errors.TypeOf(err)), err.Error(), statusForError(err))
}

func statusForError(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeInvalidInput, errors.TypeUnknownTier:
		return http.StatusBadRequest
	case errors.TypeNotFound:
		return http.StatusNotFound
	case errors.TypeNameCollision:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ServeHTTP implements http.Handler, logging each request after it is
// served.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rec, r)

	logging.Logger.Info("http request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ListenAndServe starts the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
