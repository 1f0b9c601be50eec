// Package http exposes the automaton grader as a JSON API: specification
// checks, challenge grading, challenge listing, prometheus metrics and
// static hosting for a grading UI.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/automark/internal/metrics"
	"github.com/aretw0/automark/pkg/dfa"
	"github.com/aretw0/automark/pkg/grader"
	"github.com/aretw0/automark/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckRequest is the body of POST /check.
type CheckRequest struct {
	YamlDef    string `json:"yaml_def"`
	TestString string `json:"test_string"`
}

// GradeRequest is the body of POST /grade.
type GradeRequest struct {
	ChallengeID string `json:"challenge_id"`
	YamlDef     string `json:"yaml_def"`
}

// errorResponse is the envelope for transport-level failures, matching the
// shape of the core's own failure results.
type errorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// Server handles the grading API against a challenge store.
type Server struct {
	store  ports.ChallengeStore
	logger *slog.Logger
}

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger    *slog.Logger
	staticDir string
}

// WithLogger sets the structured logger for request handling.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithStaticDir mounts a directory of static files at the root path,
// typically the grading UI.
func WithStaticDir(dir string) Option {
	return func(c *handlerConfig) {
		c.staticDir = dir
	}
}

// NewHandler creates the HTTP handler for the grading API.
func NewHandler(store ports.ChallengeStore, opts ...Option) http.Handler {
	cfg := handlerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	server := &Server{store: store, logger: cfg.logger}

	r := chi.NewRouter()
	r.Post("/check", server.Check)
	r.Post("/grade", server.Grade)
	r.Get("/challenges", server.ListChallenges)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	if cfg.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.staticDir)))
	}

	return enableCORS(server.recoverErrors(r))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverErrors converts panics into the JSON failure envelope so a broken
// request never takes the server down or leaks a stack trace to the caller.
func (s *Server) recoverErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", "error", rec, "path", r.URL.Path)
				s.writeJSON(w, http.StatusInternalServerError, errorResponse{
					Success: false,
					Errors:  []string{fmt.Sprintf("Server error: %v", rec)},
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Check handles POST /check: load the submitted specification and evaluate
// the test string against it. Load failures are relayed as the load result.
func (s *Server) Check(w http.ResponseWriter, r *http.Request) {
	var body CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	automaton := dfa.New()
	if res := automaton.Load(body.YamlDef); !res.Success {
		metrics.ChecksTotal.WithLabelValues("invalid").Inc()
		metrics.LoadFailuresTotal.WithLabelValues(failureTier(res.Errors)).Inc()
		s.writeJSON(w, http.StatusOK, res)
		return
	}

	result, err := automaton.Accepts(body.TestString)
	if err != nil {
		s.logger.Error("acceptance check failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Errors:  []string{fmt.Sprintf("Server error: %v", err)},
		})
		return
	}

	switch {
	case !result.Success:
		metrics.ChecksTotal.WithLabelValues("invalid").Inc()
	case result.Accepted:
		metrics.ChecksTotal.WithLabelValues("accepted").Inc()
	default:
		metrics.ChecksTotal.WithLabelValues("rejected").Inc()
	}

	s.writeJSON(w, http.StatusOK, result)
}

// Grade handles POST /grade: compare a submission against a stored
// challenge's reference solution.
func (s *Server) Grade(w http.ResponseWriter, r *http.Request) {
	var body GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	challenge, err := s.store.Load(r.Context(), body.ChallengeID)
	if err != nil {
		if errors.Is(err, grader.ErrChallengeNotFound) {
			s.writeJSON(w, http.StatusNotFound, errorResponse{
				Success: false,
				Errors:  []string{fmt.Sprintf("Challenge '%s' not found.", body.ChallengeID)},
			})
			return
		}
		s.logger.Error("challenge load failed", "error", err, "challenge", body.ChallengeID)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Errors:  []string{fmt.Sprintf("Server error: %v", err)},
		})
		return
	}

	result, err := grader.Grade(challenge, body.YamlDef)
	if err != nil {
		s.logger.Error("grading failed", "error", err, "challenge", body.ChallengeID)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Errors:  []string{fmt.Sprintf("Server error: %v", err)},
		})
		return
	}

	switch {
	case len(result.Errors) > 0:
		metrics.GradesTotal.WithLabelValues("invalid").Inc()
		metrics.LoadFailuresTotal.WithLabelValues(failureTier(result.Errors)).Inc()
	case result.Success:
		metrics.GradesTotal.WithLabelValues("equivalent").Inc()
	default:
		metrics.GradesTotal.WithLabelValues("counterexample").Inc()
	}

	s.writeJSON(w, http.StatusOK, result)
}

// ListChallenges handles GET /challenges.
func (s *Server) ListChallenges(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("challenge listing failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Errors:  []string{fmt.Sprintf("Server error: %v", err)},
		})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"challenges": ids})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// failureTier classifies load diagnostics for metrics: parse failures and
// shape failures carry fixed prefixes, anything else is semantic.
func failureTier(errs []string) string {
	if len(errs) == 0 {
		return "semantic"
	}
	switch {
	case strings.HasPrefix(errs[0], "YAML parsing error"):
		return "parse"
	case strings.HasPrefix(errs[0], "Field '"):
		return "shape"
	default:
		return "semantic"
	}
}
