// ABOUTME: Search orchestrator fans a query out across source adapters
// ABOUTME: Isolates per-source failures and hands collected records to persistence

package scraper

import (
	"context"
	"strings"

	"realify-news-api/core/domain"
	coreerrors "realify-news-api/core/errors"
	"realify-news-api/core/interfaces"
)

// Service orchestrates live searches across the source adapters. Adapters run
// sequentially in the order given at construction; one adapter's failure
// never aborts the rest.
type Service struct {
	adapters []Adapter
	storage  interfaces.HeadlineStorage
	logger   interfaces.Logger
}

// NewService creates a search orchestrator over the given adapters, in fixed
// search order.
func NewService(adapters []Adapter, storage interfaces.HeadlineStorage, logger interfaces.Logger) *Service {
	return &Service{
		adapters: adapters,
		storage:  storage,
		logger:   logger,
	}
}

// validateQuery rejects empty search queries.
func (s *Service) validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &coreerrors.ValidationError{Field: "query", Message: "query is required"}
	}
	return nil
}

// SearchAll searches every source sequentially and concatenates the results
// in fixed source order. Collected records are persisted before returning.
func (s *Service) SearchAll(ctx context.Context, query string) ([]domain.Headline, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	s.logger.Info("Searching all sources", map[string]interface{}{
		"query": query,
	})

	var results []domain.Headline
	for _, adapter := range s.adapters {
		results = append(results, s.searchAdapter(ctx, adapter, query)...)
	}

	s.persist(ctx, results)
	return results, nil
}

// SearchSource searches one named source. An unknown source is a validation
// error raised before any adapter runs.
func (s *Service) SearchSource(ctx context.Context, query string, source domain.Source) ([]domain.Headline, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	for _, adapter := range s.adapters {
		if adapter.Source() != source {
			continue
		}
		results := s.searchAdapter(ctx, adapter, query)
		s.persist(ctx, results)
		return results, nil
	}

	return nil, &coreerrors.ValidationError{Field: "source", Message: "unknown source '" + string(source) + "'"}
}

// searchAdapter runs one adapter's discovery and extraction. Discovery
// failure yields zero results for that source; a single extraction failure is
// logged and skipped, never aborting the remaining candidates.
func (s *Service) searchAdapter(ctx context.Context, adapter Adapter, query string) []domain.Headline {
	source := string(adapter.Source())

	urls, err := adapter.Discover(ctx, query)
	if err != nil {
		s.logger.Error("Search discovery failed", map[string]interface{}{
			"source": source,
			"query":  query,
			"error":  err.Error(),
		})
		return nil
	}

	if len(urls) > maxCandidates {
		urls = urls[:maxCandidates]
	}

	var results []domain.Headline
	for _, url := range urls {
		headline, err := adapter.Extract(ctx, url)
		if err != nil {
			s.logger.Warn("Skipping article", map[string]interface{}{
				"source": source,
				"url":    url,
				"error":  err.Error(),
			})
			continue
		}
		results = append(results, *headline)
	}

	s.logger.Info("Source search complete", map[string]interface{}{
		"source":  source,
		"query":   query,
		"results": len(results),
	})
	return results
}

// persist upserts each record sequentially. Upsert errors are logged, never
// fatal to the search.
func (s *Service) persist(ctx context.Context, results []domain.Headline) {
	if s.storage == nil {
		return
	}
	for i := range results {
		if err := s.storage.Upsert(ctx, &results[i]); err != nil {
			s.logger.Error("Failed to persist headline", map[string]interface{}{
				"url":   results[i].URL,
				"error": err.Error(),
			})
		}
	}
}
