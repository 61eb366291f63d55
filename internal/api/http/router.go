// Package http exposes the consultation REST API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"opd-extraction-service/internal/events"
	"opd-extraction-service/internal/session"
)

// NewRouter constructs the HTTP router for the service.
func NewRouter(sessions *session.Manager, publisher *events.Publisher) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health endpoints
	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	h := &ConsultationHandler{sessions: sessions, publisher: publisher}

	// API routes
	r.Route("/v1/consultations", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Route("/{consultationId}", func(r chi.Router) {
			r.Post("/utterances", h.Ingest)
			r.Post("/report", h.Finalize)
			r.Delete("/", h.Discard)
		})
	})

	return r
}
