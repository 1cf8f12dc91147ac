// ABOUTME: Response DTOs for the news and search endpoints
// ABOUTME: Defines the JSON shapes returned to API clients

package responses

import "realify-news-api/core/domain"

// SearchResponse is returned by the live-search endpoint
type SearchResponse struct {
	// Status is "success" for completed searches
	Status string `json:"status"`

	// Query echoes the search query
	Query string `json:"query"`

	// Source echoes the source selector ("all" or one source id)
	Source string `json:"source"`

	// Count is the number of results
	Count int `json:"count"`

	// Results are the collected records in fixed source order
	Results []domain.Headline `json:"results"`
}

// ErrorResponse carries an error message to the client
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status"`
}
