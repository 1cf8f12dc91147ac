// ABOUTME: ARY News adapter with a legacy WordPress search fallback
// ABOUTME: Filters out known non-article sections instead of matching a path marker

package scraper

import (
	"context"
	"strings"

	"realify-news-api/core/domain"
	"realify-news-api/core/interfaces"
)

const aryOrigin = "https://arynews.tv"

// aryExcludedPaths are sections whose links never lead to articles.
var aryExcludedPaths = []string{
	"/category/",
	"/tag/",
	"/videos",
	"/video",
	"/live",
	"/author/",
	"/elections",
}

var aryRules = extractRules{
	bodySelectors: []string{
		"div.td-post-content p",
	},
}

// ARYAdapter scrapes ARY News via its static search page.
type ARYAdapter struct {
	fetcher   *DocumentFetcher
	extractor *articleExtractor
	logger    interfaces.Logger
}

// NewARYAdapter creates the ARY News adapter.
func NewARYAdapter(fetcher *DocumentFetcher, summarizer Summarizer, logger interfaces.Logger) *ARYAdapter {
	return &ARYAdapter{
		fetcher:   fetcher,
		extractor: newArticleExtractor(fetcher, summarizer, logger),
		logger:    logger,
	}
}

// Source returns the adapter's source identity.
func (a *ARYAdapter) Source() domain.Source {
	return domain.SourceARY
}

// Discover fetches the ARY search page, falling back to the older WordPress
// search URL when the primary page yields no document.
func (a *ARYAdapter) Discover(ctx context.Context, query string) ([]string, error) {
	searchURL := aryOrigin + "/search/" + strings.ReplaceAll(query, " ", "%20")

	html, err := a.fetcher.FetchHTML(ctx, searchURL)
	if err != nil {
		fallbackURL := aryOrigin + "/?s=" + strings.ReplaceAll(query, " ", "+")
		a.logger.Info("Trying ARY fallback search", map[string]interface{}{
			"url": fallbackURL,
		})
		html, err = a.fetcher.FetchHTML(ctx, fallbackURL)
	}
	if err != nil {
		a.logger.Error("ARY search failed on primary and fallback URLs", map[string]interface{}{
			"query": query,
		})
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	links := collectLinks(doc, aryOrigin, maxCandidates, func(href string) bool {
		return strings.HasPrefix(href, aryOrigin) && !containsAny(href, aryExcludedPaths...)
	}, nil)

	a.logger.Info("ARY search results found", map[string]interface{}{
		"query": query,
		"count": len(links),
	})
	return links, nil
}

// Extract produces a normalized record from an ARY article page.
func (a *ARYAdapter) Extract(ctx context.Context, url string) (*domain.Headline, error) {
	return a.extractor.extract(ctx, domain.SourceARY, url, aryRules)
}
