// ABOUTME: Health handler reports service liveness
// ABOUTME: Used by load balancers and deployment checks

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"realify-news-api/api/dto/responses"
)

// HealthHandler serves the liveness endpoint
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health routes on the router
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"})
}
