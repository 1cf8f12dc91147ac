// ABOUTME: Search handler runs the live retrieval-extraction-summarization pipeline
// ABOUTME: Validates query and source selector before any adapter is invoked

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"realify-news-api/api/dto/responses"
	"realify-news-api/core/domain"
	coreerrors "realify-news-api/core/errors"
	"realify-news-api/core/interfaces"
)

// sourceAll selects every source.
const sourceAll = "all"

// SearchHandler serves the live-search endpoint
type SearchHandler struct {
	service interfaces.SearchService
	logger  interfaces.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service interfaces.SearchService, logger interfaces.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the search routes on the router
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/search", h.Search)
}

// Search scrapes the selected sources live and persists every result. A
// missing query or unknown source selector is a client error; partial
// pipeline failures only shrink the result count.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	selector := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("source")))
	if selector == "" {
		selector = sourceAll
	}

	if query == "" {
		writeError(w, &coreerrors.ValidationError{Field: "query", Message: "query parameter is required"})
		return
	}

	var results []domain.Headline
	var err error

	if selector == sourceAll {
		results, err = h.service.SearchAll(r.Context(), query)
	} else {
		var source domain.Source
		source, err = domain.ParseSource(selector)
		if err != nil {
			writeError(w, &coreerrors.ValidationError{Field: "source", Message: err.Error()})
			return
		}
		results, err = h.service.SearchSource(r.Context(), query, source)
	}

	if err != nil {
		h.logger.Error("Search failed", map[string]interface{}{
			"query":  query,
			"source": selector,
			"error":  err.Error(),
		})
		writeError(w, err)
		return
	}

	if results == nil {
		results = []domain.Headline{}
	}

	writeJSON(w, http.StatusOK, responses.SearchResponse{
		Status:  "success",
		Query:   query,
		Source:  selector,
		Count:   len(results),
		Results: results,
	})
}
