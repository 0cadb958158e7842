// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c-xld1/ne-yesek-matching/internal/api/handlers"
	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. Handlers stay unaware of concrete store implementations.
func NewRouter(engine handlers.Matcher, postgres, redis handlers.Pinger, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	matchHandler := &handlers.MatchHandler{Engine: engine, Logger: log}
	healthHandler := &handlers.HealthHandler{Postgres: postgres, Redis: redis}

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/match", matchHandler.Match)
	})

	return r
}
