// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"realify-news-api/core/domain"
)

// HeadlineStorage defines the interface for headline persistence
type HeadlineStorage interface {
	// Upsert persists a headline, replacing any stored record with the
	// same URL and refreshing its persistence timestamp.
	Upsert(ctx context.Context, headline *domain.Headline) error

	// ListRecent retrieves up to limit headlines, most recently
	// persisted first.
	ListRecent(ctx context.Context, limit int) ([]domain.Headline, error)
}
