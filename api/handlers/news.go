// ABOUTME: News handler serves previously persisted headlines
// ABOUTME: Reads recent records from storage without triggering any scraping

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"realify-news-api/core/interfaces"
)

// defaultLimit is used when the limit parameter is absent or invalid.
const defaultLimit = 50

// NewsHandler serves the stored-headline listing endpoint
type NewsHandler struct {
	storage interfaces.HeadlineStorage
	logger  interfaces.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(storage interfaces.HeadlineStorage, logger interfaces.Logger) *NewsHandler {
	return &NewsHandler{
		storage: storage,
		logger:  logger,
	}
}

// RegisterRoutes registers the news routes on the router
func (h *NewsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/news", h.ListRecent)
}

// ListRecent returns the most recently persisted headlines. The optional
// limit parameter defaults to 50 when absent or invalid.
func (h *NewsHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	headlines, err := h.storage.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list headlines", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, headlines)
}
