// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"realify-news-api/core/domain"
)

// SearchService runs live searches across news sources
type SearchService interface {
	// SearchAll searches every source and persists the collected records.
	SearchAll(ctx context.Context, query string) ([]domain.Headline, error)

	// SearchSource searches one named source and persists the collected
	// records. An unknown source is a validation error.
	SearchSource(ctx context.Context, query string, source domain.Source) ([]domain.Headline, error)
}
