package handlers

import (
	"context"

	"realify-news-api/core/domain"
)

// mockSearchService is a mock implementation of the SearchService interface
type mockSearchService struct {
	searchAllFunc    func(ctx context.Context, query string) ([]domain.Headline, error)
	searchSourceFunc func(ctx context.Context, query string, source domain.Source) ([]domain.Headline, error)
}

func (m *mockSearchService) SearchAll(ctx context.Context, query string) ([]domain.Headline, error) {
	if m.searchAllFunc != nil {
		return m.searchAllFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockSearchService) SearchSource(ctx context.Context, query string, source domain.Source) ([]domain.Headline, error) {
	if m.searchSourceFunc != nil {
		return m.searchSourceFunc(ctx, query, source)
	}
	return nil, nil
}

// mockStorage is a mock implementation of the HeadlineStorage interface
type mockStorage struct {
	upsertFunc     func(ctx context.Context, headline *domain.Headline) error
	listRecentFunc func(ctx context.Context, limit int) ([]domain.Headline, error)
}

func (m *mockStorage) Upsert(ctx context.Context, headline *domain.Headline) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, headline)
	}
	return nil
}

func (m *mockStorage) ListRecent(ctx context.Context, limit int) ([]domain.Headline, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, limit)
	}
	return nil, nil
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
