// Package api exposes the engine's four host-facing operations over a
// small chi router. This is the boundary the host web application
// plugs into; the engine itself stays free of HTTP concerns.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"moodprobe/app"
	"moodprobe/internal"
)

// Server wraps the assessment service behind HTTP handlers.
type Server struct {
	router  *chi.Mux
	service *app.AssessmentService
	logger  *internal.Logger
}

// NewServer builds the router with standard middleware.
func NewServer(service *app.AssessmentService, logger *internal.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		logger:  logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(15 * time.Second))

	s.router.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Get("/question", s.handleNextQuestion)
			r.Post("/responses", s.handleSubmitResponse)
			r.Post("/profile", s.handleResolve)
		})
	})
	s.router.Get("/healthz", s.handleHealth)

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
