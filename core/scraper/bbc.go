// ABOUTME: BBC News adapter searching bbc.co.uk and canonicalizing to bbc.com
// ABOUTME: Article bodies live in data-component text blocks

package scraper

import (
	"context"
	"strings"

	"realify-news-api/core/domain"
	"realify-news-api/core/interfaces"
)

const (
	bbcSearchOrigin  = "https://www.bbc.co.uk"
	bbcArticleOrigin = "https://www.bbc.com"
)

// Each text block is taken whole, so list items and other non-paragraph text
// inside a block survive.
var bbcRules = extractRules{
	bodySelectors: []string{
		`[data-component="text-block"]`,
	},
}

// BBCAdapter scrapes BBC News via its static search page.
type BBCAdapter struct {
	fetcher   *DocumentFetcher
	extractor *articleExtractor
	logger    interfaces.Logger
}

// NewBBCAdapter creates the BBC News adapter.
func NewBBCAdapter(fetcher *DocumentFetcher, summarizer Summarizer, logger interfaces.Logger) *BBCAdapter {
	return &BBCAdapter{
		fetcher:   fetcher,
		extractor: newArticleExtractor(fetcher, summarizer, logger),
		logger:    logger,
	}
}

// Source returns the adapter's source identity.
func (a *BBCAdapter) Source() domain.Source {
	return domain.SourceBBC
}

// Discover fetches the BBC search page and scans it for news links. Search
// runs against bbc.co.uk but articles are canonicalized to bbc.com.
func (a *BBCAdapter) Discover(ctx context.Context, query string) ([]string, error) {
	searchURL := bbcSearchOrigin + "/search?q=" + strings.ReplaceAll(query, " ", "+") + "&filter=news"

	html, err := a.fetcher.FetchHTML(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	links := collectLinks(doc, bbcSearchOrigin, maxCandidates, func(href string) bool {
		return strings.HasPrefix(href, bbcSearchOrigin) && strings.Contains(href, "/news/")
	}, func(href string) string {
		return strings.Replace(href, bbcSearchOrigin, bbcArticleOrigin, 1)
	})

	a.logger.Info("BBC search results found", map[string]interface{}{
		"query": query,
		"count": len(links),
	})
	return links, nil
}

// Extract produces a normalized record from a BBC article page.
func (a *BBCAdapter) Extract(ctx context.Context, url string) (*domain.Headline, error) {
	return a.extractor.extract(ctx, domain.SourceBBC, url, bbcRules)
}
