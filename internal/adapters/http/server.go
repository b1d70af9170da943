// Package http is the HTTP transport adapter. It parses inbound requests
// into typed domain events at the boundary and renders response
// descriptors back as JSON; no ordering logic lives here.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/samovar"
	"github.com/aretw0/samovar/internal/logging"
	"github.com/aretw0/samovar/pkg/domain"
)

// Server exposes the ordering flow over HTTP.
type Server struct {
	flow   *samovar.Flow
	logger *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets a structured logger for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the HTTP handler. When gatherer is non-nil, its
// metrics are served on /metrics.
func NewHandler(flow *samovar.Flow, gatherer prometheus.Gatherer, opts ...Option) http.Handler {
	s := &Server{
		flow:   flow,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)

	r.Post("/sessions/{userID}/events", s.handleEvent)
	r.Get("/menu", s.handleMenu)
	r.Get("/orders", s.handleOrders)
	r.Get("/healthz", s.handleHealth)

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// requestID tags every request with a correlation ID for the logs.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	var ev domain.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid event body", http.StatusBadRequest)
		return
	}

	resp, err := s.flow.HandleEvent(r.Context(), userID, ev)
	if err != nil {
		s.logger.Error("event handling failed",
			"request_id", w.Header().Get("X-Request-ID"),
			"user_id", userID,
			"kind", ev.Kind,
			"error", err,
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.flow.Catalog().Root())
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.flow.Orders())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}
