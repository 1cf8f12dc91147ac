package scraper

import (
	"context"
	"io"
	"strings"

	"realify-news-api/core/domain"
	"realify-news-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockRenderer is a mock implementation of the PageRenderer interface
type mockRenderer struct {
	renderFunc func(ctx context.Context, url string) (string, error)
}

func (m *mockRenderer) RenderHTML(ctx context.Context, url string) (string, error) {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, url)
	}
	return "", nil
}

// mockStorage is a mock implementation of the HeadlineStorage interface
type mockStorage struct {
	upsertFunc     func(ctx context.Context, headline *domain.Headline) error
	listRecentFunc func(ctx context.Context, limit int) ([]domain.Headline, error)
	upserted       []domain.Headline
}

func (m *mockStorage) Upsert(ctx context.Context, headline *domain.Headline) error {
	m.upserted = append(m.upserted, *headline)
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

// mockAdapter is a mock implementation of the Adapter interface
type mockAdapter struct {
	source       domain.Source
	discoverFunc func(ctx context.Context, query string) ([]string, error)
	extractFunc  func(ctx context.Context, url string) (*domain.Headline, error)
}

func (m *mockAdapter) Source() domain.Source {
	return m.source
}

func (m *mockAdapter) Discover(ctx context.Context, query string) ([]string, error) {
	if m.discoverFunc != nil {
		return m.discoverFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockAdapter) Extract(ctx context.Context, url string) (*domain.Headline, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return &domain.Headline{Source: m.source, URL: url}, nil
}

// passthroughSummarizer returns body text unchanged
type passthroughSummarizer struct{}

func (passthroughSummarizer) Summarize(_ context.Context, text string) string {
	return text
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// htmlClient serves a fixed HTML body for every URL
func htmlClient(html string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(_ context.Context, _ string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: html}, nil
		},
	}
}

func testFetcher(client interfaces.HTTPClient) *DocumentFetcher {
	return NewDocumentFetcher(client, nopLogger{})
}
