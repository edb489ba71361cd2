// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Alias1177/MatchPredictor/internal/analyzer"
	"github.com/Alias1177/MatchPredictor/internal/last5"
	"github.com/Alias1177/MatchPredictor/models"
)

const requestTimeout = 30 * time.Second

// TeamStore persists tier assignments beyond the in-memory registry. It is
// optional; without one, tier edits live only for the process lifetime.
type TeamStore interface {
	SaveTeam(tier, name string) error
}

// Server bundles the router with its collaborators.
type Server struct {
	analyzer *analyzer.Analyzer
	store    TeamStore
	limiter  *rate.Limiter
	logger   zerolog.Logger
	router   chi.Router
}

// New builds the HTTP surface. perSec and burst bound the request rate
// across all clients; zero or negative values disable limiting.
func New(a *analyzer.Analyzer, store TeamStore, perSec, burst int) *Server {
	s := &Server{
		analyzer: a,
		store:    store,
		logger:   log.With().Str("component", "http").Logger(),
	}
	if perSec > 0 {
		if burst < 1 {
			burst = perSec
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.rateLimit)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/last5", s.handleLast5)
		r.Get("/tiers", s.handleListTiers)
		r.Post("/tiers/{tier}", s.handleAddTeam)
	})
	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	analysis, err := s.analyzer.Analyze(req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// last5Request carries the two loosely-typed side records; validation happens
// inside the classifier, which reports problems in its own result envelope.
type last5Request struct {
	Home map[string]any `json:"home"`
	Away map[string]any `json:"away"`
}

func (s *Server) handleLast5(w http.ResponseWriter, r *http.Request) {
	var req last5Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	result := last5.ClassifyRaw(req.Home, req.Away)
	status := http.StatusOK
	if result.ClassificationError {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

func (s *Server) handleListTiers(w http.ResponseWriter, _ *http.Request) {
	registry := s.analyzer.Registry()
	out := map[string][]string{}
	for _, tier := range []string{models.TierElite, models.TierStrong, models.TierAverage, models.TierWeak} {
		out[tier] = registry.Members(tier)
	}
	writeJSON(w, http.StatusOK, out)
}

type addTeamRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAddTeam(w http.ResponseWriter, r *http.Request) {
	tier := chi.URLParam(r, "tier")

	var req addTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := s.analyzer.Registry().AddTeam(tier, req.Name); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if s.store != nil {
		if err := s.store.SaveTeam(tier, req.Name); err != nil {
			s.logger.Error().Err(err).Str("team", req.Name).Msg("persisting team failed")
		}
	}
	writeJSON(w, http.StatusCreated, map[string]string{"tier": tier, "name": req.Name})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// NewHTTPServer wraps the handler in an http.Server with sane timeouts.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
		IdleTimeout:  2 * requestTimeout,
	}
}
