package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"memberpulse/internal/config"
	"memberpulse/internal/middleware"
	"memberpulse/internal/services"
)

// NewRouter assembles the full middleware chain and mounts the API routes
// and the Prometheus endpoint.
func NewRouter(cfg *config.Config, service *services.DashboardService, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.Compress(5))

	handler := NewDashboardHandler(service, logger)

	r.Route("/api", func(r chi.Router) {
		if cfg.Server.RateLimit.Enabled {
			limiter := middleware.NewRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, logger)
			r.Use(limiter.Handler)
		}
		r.Mount("/", handler.Routes())
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
