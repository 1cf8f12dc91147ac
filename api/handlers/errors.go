// ABOUTME: Error handling and JSON encoding utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"realify-news-api/api/dto/responses"
	coreerrors "realify-news-api/core/errors"
)

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body, mapping validation errors to 400 and
// everything else to 500 with the error message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if coreerrors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, responses.ErrorResponse{Error: err.Error()})
}
