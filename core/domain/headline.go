// ABOUTME: Headline domain model represents a normalized news article record
// ABOUTME: Provides the canonical source-agnostic output shape of the scraping pipeline

package domain

import "time"

// NoHeading is the sentinel used when no title could be extracted.
const NoHeading = "No Heading"

// Headline represents one normalized news article produced by a source adapter.
type Headline struct {
	// Source identifies the news source the article came from
	Source Source `json:"source"`

	// URL is the canonical article URL and the deduplication key
	URL string `json:"url"`

	// Picture is an optional image URL for the article
	Picture string `json:"picture,omitempty"`

	// Heading is the best-effort article title, NoHeading when absent
	Heading string `json:"heading"`

	// Summary is the condensed article body
	Summary string `json:"summary"`

	// CreatedAt is set by the store at persistence time, not by adapters
	CreatedAt time.Time `json:"created_at,omitempty"`
}
