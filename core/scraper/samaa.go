// ABOUTME: Samaa News adapter matching its news, pakistan and latest-news sections
// ABOUTME: Article bodies live in story-content or news-detail containers

package scraper

import (
	"context"
	"strings"

	"realify-news-api/core/domain"
	"realify-news-api/core/interfaces"
)

const samaaOrigin = "https://www.samaa.tv"

var samaaRules = extractRules{
	bodySelectors: []string{
		"div.story-content p",
		"div.news-detail p",
	},
}

// SamaaAdapter scrapes Samaa News via its static search page.
type SamaaAdapter struct {
	fetcher   *DocumentFetcher
	extractor *articleExtractor
	logger    interfaces.Logger
}

// NewSamaaAdapter creates the Samaa News adapter.
func NewSamaaAdapter(fetcher *DocumentFetcher, summarizer Summarizer, logger interfaces.Logger) *SamaaAdapter {
	return &SamaaAdapter{
		fetcher:   fetcher,
		extractor: newArticleExtractor(fetcher, summarizer, logger),
		logger:    logger,
	}
}

// Source returns the adapter's source identity.
func (a *SamaaAdapter) Source() domain.Source {
	return domain.SourceSamaa
}

// Discover fetches the Samaa search page and scans it for article links.
func (a *SamaaAdapter) Discover(ctx context.Context, query string) ([]string, error) {
	searchURL := samaaOrigin + "/search/" + strings.ReplaceAll(query, " ", "%20")

	html, err := a.fetcher.FetchHTML(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	links := collectLinks(doc, samaaOrigin, maxCandidates, func(href string) bool {
		return strings.HasPrefix(href, samaaOrigin) &&
			containsAny(href, "/news/", "/pakistan/", "/latest-news/")
	}, nil)

	a.logger.Info("Samaa search results found", map[string]interface{}{
		"query": query,
		"count": len(links),
	})
	return links, nil
}

// Extract produces a normalized record from a Samaa article page.
func (a *SamaaAdapter) Extract(ctx context.Context, url string) (*domain.Headline, error) {
	return a.extractor.extract(ctx, domain.SourceSamaa, url, samaaRules)
}
