package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds and returns the Chi router with all routes configured.
// Only catalog refresh requires bearer auth. Rate limiting is applied per IP
// to the /api/v1 routes; /metrics is not limited.
func NewRouter(handlers *Handlers, token string, ratePerMin int, db, redis Pinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(Instrument(log))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(ratePerMin, time.Minute))

		r.Get("/health", HealthHandlerFunc(db, redis, log))
		r.Get("/states", handlers.ListStates)
		r.Get("/destinations", handlers.ListDestinations)
		r.Get("/destinations/{id}", handlers.GetDestination)
		r.Get("/destinations/{id}/score", handlers.ScoreDestination)
		r.Post("/recommendations", handlers.Recommend)
		r.Post("/readiness", handlers.EvaluateReadiness)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(token))
			r.Post("/catalog/refresh", handlers.RefreshCatalog)
		})
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
