package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"fitness-tracker/internal/handlers"
	"fitness-tracker/internal/observability"
	"fitness-tracker/internal/training"
)

// NewRouter builds the API router. A nil limiter disables rate limiting.
func NewRouter(limiter *rate.Limiter) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(RateLimitMiddleware(limiter))
		}
		training.RegisterRoutes(r)
	})

	return r
}
