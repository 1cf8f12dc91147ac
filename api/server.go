// ABOUTME: API server configuration and route wiring
// ABOUTME: Builds the chi router with CORS, logging and rate-limit middleware

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"realify-news-api/api/middleware"
	"realify-news-api/core/interfaces"
)

// Config holds configuration for the API layer
type Config struct {
	Logger    interfaces.Logger
	RateLimit int // requests per client per minute, 0 disables
}

// RouteRegistrar registers endpoint routes on the router
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// NewServer builds the HTTP handler stack: CORS, request logging, rate
// limiting, then the registered handlers.
func NewServer(cfg Config, handlers ...RouteRegistrar) http.Handler {
	router := chi.NewRouter()

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler(router)
}
