// ABOUTME: Geo News adapter with rendered search discovery
// ABOUTME: Geo's search results are script-populated, so discovery needs a browser

package scraper

import (
	"context"
	"strings"

	"realify-news-api/core/domain"
	"realify-news-api/core/interfaces"
)

const geoOrigin = "https://www.geo.tv"

var geoRules = extractRules{
	headingSelectors: []string{"div.heading_H h1"},
	imageSelectors:   []string{"div.content-area img"},
	bodySelectors: []string{
		"div.content-area p",
		"article p",
		"div.story-detail p",
	},
}

// GeoAdapter scrapes Geo News. Unlike the other sources its search page is
// populated by client-side scripting, so discovery goes through the renderer;
// article pages are static and fetched directly.
type GeoAdapter struct {
	renderer  interfaces.PageRenderer
	extractor *articleExtractor
	logger    interfaces.Logger
}

// NewGeoAdapter creates the Geo News adapter.
func NewGeoAdapter(renderer interfaces.PageRenderer, fetcher *DocumentFetcher, summarizer Summarizer, logger interfaces.Logger) *GeoAdapter {
	return &GeoAdapter{
		renderer:  renderer,
		extractor: newArticleExtractor(fetcher, summarizer, logger),
		logger:    logger,
	}
}

// Source returns the adapter's source identity.
func (a *GeoAdapter) Source() domain.Source {
	return domain.SourceGeo
}

// Discover renders the Geo search page and scans it for article links.
func (a *GeoAdapter) Discover(ctx context.Context, query string) ([]string, error) {
	searchURL := geoOrigin + "/search/" + strings.ReplaceAll(query, " ", "+")

	html, err := a.renderer.RenderHTML(ctx, searchURL)
	if err != nil {
		a.logger.Error("Failed to render Geo search page", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	links := collectLinks(doc, geoOrigin, maxCandidates, func(href string) bool {
		return strings.HasPrefix(href, geoOrigin) && strings.Contains(href, "/latest/")
	}, nil)

	a.logger.Info("Geo search results found", map[string]interface{}{
		"query": query,
		"count": len(links),
	})
	return links, nil
}

// Extract produces a normalized record from a Geo article page.
func (a *GeoAdapter) Extract(ctx context.Context, url string) (*domain.Headline, error) {
	return a.extractor.extract(ctx, domain.SourceGeo, url, geoRules)
}
