package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds the transport-level settings of the API.
type RouterConfig struct {
	AllowedOrigins        []string
	MaxConcurrentRequests int
	RequestTimeout        time.Duration
}

// Routes builds the HTTP router.
func (h *Handler) Routes(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.MaxConcurrentRequests > 0 {
			r.Use(middleware.Throttle(cfg.MaxConcurrentRequests))
		}
		if cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
		}

		r.Post("/proxy", h.Proxy)
		r.Get("/players/{name}/{tag}", h.GetPlayer)
		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/leaderboard/{region}", h.GetLeaderboard)
		r.Get("/regions", h.GetRegions)
		r.Get("/modes", h.GetModes)
	})

	return r
}
