// ABOUTME: Dawn News adapter searching through Dawn's Google CSE results page
// ABOUTME: Article bodies live in story__content or story__body containers

package scraper

import (
	"context"
	"strings"

	"realify-news-api/core/domain"
	"realify-news-api/core/interfaces"
)

const (
	dawnOrigin = "https://www.dawn.com"

	// dawnSearchPrefix is Dawn's hosted custom-search results page.
	dawnSearchPrefix = dawnOrigin + "/search?cx=partner-pub-2646044137506720%3A7244554279&cof=FORID%3A10&ie=UTF-8&q="
)

var dawnRules = extractRules{
	bodySelectors: []string{
		"div.story__content p",
		"div.story__body p",
	},
}

// DawnAdapter scrapes Dawn News via its static search page.
type DawnAdapter struct {
	fetcher   *DocumentFetcher
	extractor *articleExtractor
	logger    interfaces.Logger
}

// NewDawnAdapter creates the Dawn News adapter.
func NewDawnAdapter(fetcher *DocumentFetcher, summarizer Summarizer, logger interfaces.Logger) *DawnAdapter {
	return &DawnAdapter{
		fetcher:   fetcher,
		extractor: newArticleExtractor(fetcher, summarizer, logger),
		logger:    logger,
	}
}

// Source returns the adapter's source identity.
func (a *DawnAdapter) Source() domain.Source {
	return domain.SourceDawn
}

// Discover fetches the Dawn search results page and scans it for article links.
func (a *DawnAdapter) Discover(ctx context.Context, query string) ([]string, error) {
	searchURL := dawnSearchPrefix + strings.ReplaceAll(query, " ", "+")

	html, err := a.fetcher.FetchHTML(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	links := collectLinks(doc, dawnOrigin, maxCandidates, func(href string) bool {
		return strings.HasPrefix(href, dawnOrigin) &&
			containsAny(href, "/news/", "/latest-news/")
	}, nil)

	a.logger.Info("Dawn search results found", map[string]interface{}{
		"query": query,
		"count": len(links),
	})
	return links, nil
}

// Extract produces a normalized record from a Dawn article page.
func (a *DawnAdapter) Extract(ctx context.Context, url string) (*domain.Headline, error) {
	return a.extractor.extract(ctx, domain.SourceDawn, url, dawnRules)
}
