// ABOUTME: Document fetcher retrieves raw article HTML over plain HTTP
// ABOUTME: Treats anything but status 200 as a logged, non-propagating failure

package scraper

import (
	"context"
	"io"

	coreerrors "realify-news-api/core/errors"
	"realify-news-api/core/interfaces"
)

// DocumentFetcher performs plain HTTP GETs for search and article pages.
// Success is exactly status 200; every other outcome is a FetchError that
// callers treat as "no document".
type DocumentFetcher struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewDocumentFetcher creates a fetcher on top of the shared HTTP client.
func NewDocumentFetcher(client interfaces.HTTPClient, logger interfaces.Logger) *DocumentFetcher {
	return &DocumentFetcher{
		client: client,
		logger: logger,
	}
}

// FetchHTML retrieves the document at url and returns its body.
func (f *DocumentFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		f.logger.Error("Request error", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return "", &coreerrors.FetchError{URL: url, Cause: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		f.logger.Warn("Non-200 status for document", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return "", &coreerrors.FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		f.logger.Error("Failed to read document body", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return "", &coreerrors.FetchError{URL: url, Cause: err}
	}

	return string(body), nil
}
