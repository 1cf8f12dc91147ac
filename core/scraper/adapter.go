// ABOUTME: Source adapter contract and shared link-discovery helpers
// ABOUTME: One adapter per news source encapsulates its search and extraction rules

package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"realify-news-api/core/domain"
)

// maxCandidates caps how many discovered article URLs one search processes
// per source.
const maxCandidates = 10

// Adapter encapsulates one news source's search-discovery and
// article-extraction rules.
type Adapter interface {
	// Source returns the adapter's source identity.
	Source() domain.Source

	// Discover returns candidate article URLs for a query, capped at
	// maxCandidates distinct URLs after filtering.
	Discover(ctx context.Context, query string) ([]string, error)

	// Extract produces a normalized record from an article URL, or an
	// error when the document has no usable content.
	Extract(ctx context.Context, url string) (*domain.Headline, error)
}

// parseDocument parses an HTML document for scanning.
func parseDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// collectLinks scans anchor elements for candidate article URLs. Relative
// hrefs are resolved against origin, match filters by the source's
// article-URL shape, rewrite optionally canonicalizes the URL. Document order
// is preserved and duplicates are dropped.
func collectLinks(doc *goquery.Document, origin string, max int, match func(string) bool, rewrite func(string) string) []string {
	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if len(links) >= max {
			return
		}

		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = origin + href
		}
		if !match(href) {
			return
		}
		if rewrite != nil {
			href = rewrite(href)
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})

	return links
}

// containsAny reports whether href contains any of the given path markers.
func containsAny(href string, markers ...string) bool {
	for _, marker := range markers {
		if strings.Contains(href, marker) {
			return true
		}
	}
	return false
}
