// Package http exposes the generator over a JSON API: problem generation,
// listing, clearing, and whole-worksheet assembly.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/abacus/internal/config"
	"github.com/aretw0/abacus/internal/generator"
	"github.com/aretw0/abacus/internal/logging"
	"github.com/aretw0/abacus/internal/worksheet"
	"github.com/aretw0/abacus/pkg/algebra"
)

// Server routes API requests to a Generator.
type Server struct {
	gen *generator.Generator
	log *slog.Logger

	generated *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

// NewHandler creates the HTTP handler. Metrics are registered on the
// given registry; pass prometheus.DefaultRegisterer outside tests.
func NewHandler(gen *generator.Generator, reg prometheus.Registerer, log *slog.Logger) http.Handler {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Server{
		gen: gen,
		log: log,
		generated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "abacus_problems_generated_total",
			Help: "Problems generated and stored, by kind.",
		}, []string{"kind"}),
		failures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "abacus_generation_failures_total",
			Help: "Failed generation attempts, by kind.",
		}, []string{"kind"}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/problems", func(r chi.Router) {
		r.Post("/", s.createProblems)
		r.Get("/", s.listProblems)
		r.Delete("/", s.clearProblems)
	})
	r.Post("/worksheet", s.buildWorksheet)

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createRequest mirrors a single worksheet block.
type createRequest struct {
	Kind   string         `json:"kind"`
	Count  int            `json:"count"`
	Params map[string]any `json:"params"`
}

func (b createRequest) block() config.Block {
	count := b.Count
	if count == 0 {
		count = 1
	}
	return config.Block{Kind: b.Kind, Count: count, Params: b.Params}
}

func (s *Server) createProblems(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	before, err := s.gen.Store().Len(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	ws := &config.Worksheet{Problems: []config.Block{req.block()}}
	if err := config.Apply(r.Context(), s.gen, ws); err != nil {
		s.failures.WithLabelValues(req.Kind).Inc()
		writeError(w, statusFor(err), err)
		return
	}

	all, err := s.gen.Store().List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	created := all[before:]
	s.generated.WithLabelValues(req.Kind).Add(float64(len(created)))
	s.log.Info("problems generated", "kind", req.Kind, "count", len(created))

	writeJSON(w, http.StatusCreated, map[string]any{"problems": created})
}

func (s *Server) listProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := s.gen.Store().List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if problems == nil {
		problems = []algebra.Problem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"problems": problems})
}

func (s *Server) clearProblems(w http.ResponseWriter, r *http.Request) {
	if err := s.gen.Store().Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// worksheetRequest is a full worksheet definition plus the output format.
type worksheetRequest struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Message  string          `json:"message"`
	Problems []createRequest `json:"problems"`
	Format   string          `json:"format"` // "latex" (default) or "markdown"
}

func (s *Server) buildWorksheet(w http.ResponseWriter, r *http.Request) {
	var req worksheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if len(req.Problems) > 0 {
		ws := &config.Worksheet{Problems: make([]config.Block, 0, len(req.Problems))}
		for _, b := range req.Problems {
			ws.Problems = append(ws.Problems, b.block())
		}
		if err := config.Apply(r.Context(), s.gen, ws); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		for _, b := range ws.Problems {
			s.generated.WithLabelValues(b.Kind).Add(float64(b.Count))
		}
	}

	problems, err := s.gen.Store().List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	opts := []worksheet.Option{
		worksheet.WithAuthor(req.Author),
		worksheet.WithMessage(req.Message),
	}
	if req.Title != "" {
		opts = append(opts, worksheet.WithTitle(req.Title))
	}
	builder := worksheet.New(opts...)
	var doc string
	switch req.Format {
	case "", "latex":
		doc = builder.LaTeX(problems)
	case "markdown":
		doc = builder.Markdown(problems)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", req.Format))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"document": doc, "count": len(problems)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrBadParams), errors.Is(err, config.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, generator.ErrExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
