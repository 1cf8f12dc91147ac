// ABOUTME: Shared ordered-fallback field extraction for article documents
// ABOUTME: Each field tries source-specific strategies first, generic ones last

package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"realify-news-api/core/domain"
	coreerrors "realify-news-api/core/errors"
	"realify-news-api/core/interfaces"
)

// minBodyChars is the minimum body length below which extraction fails and
// the URL is skipped.
const minBodyChars = 50

// Summarizer condenses article body text. Implemented by summary.Service.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// extractRules holds the per-source selectors tried before the generic
// fallbacks. Selectors are adapter policy and expected to drift with each
// site's markup.
type extractRules struct {
	// headingSelectors are tried before the document's first h1.
	headingSelectors []string

	// imageSelectors are tried before the og:image meta tag.
	imageSelectors []string

	// bodySelectors are ordered paragraph selectors, first non-empty wins,
	// tried before all paragraphs in the document.
	bodySelectors []string
}

// articleExtractor turns a fetched article document into a normalized record.
type articleExtractor struct {
	fetcher    *DocumentFetcher
	summarizer Summarizer
	logger     interfaces.Logger
}

func newArticleExtractor(fetcher *DocumentFetcher, summarizer Summarizer, logger interfaces.Logger) *articleExtractor {
	return &articleExtractor{
		fetcher:    fetcher,
		summarizer: summarizer,
		logger:     logger,
	}
}

// extract fetches articleURL and applies the per-field strategy chain. It
// returns an ExtractionError when no usable body text is found.
func (x *articleExtractor) extract(ctx context.Context, source domain.Source, articleURL string, rules extractRules) (*domain.Headline, error) {
	html, err := x.fetcher.FetchHTML(ctx, articleURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, coreerrors.WrapError(err, "parse article document")
	}

	body := extractBody(doc, rules.bodySelectors)
	if len(body) < minBodyChars {
		body = readabilityBody(html, articleURL)
	}
	if len(body) < minBodyChars {
		x.logger.Warn("Not enough text content", map[string]interface{}{
			"source": string(source),
			"url":    articleURL,
		})
		return nil, &coreerrors.ExtractionError{URL: articleURL, Reason: "insufficient content"}
	}

	return &domain.Headline{
		Source:  source,
		URL:     articleURL,
		Picture: extractImage(doc, rules.imageSelectors),
		Heading: extractHeading(doc, rules.headingSelectors),
		Summary: x.summarizer.Summarize(ctx, body),
	}, nil
}

// extractHeading tries the source selectors, then the document's first h1,
// then the sentinel.
func extractHeading(doc *goquery.Document, selectors []string) string {
	for _, sel := range append(append([]string{}, selectors...), "h1") {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return domain.NoHeading
}

// extractImage tries the source selectors, then the Open Graph image tag.
func extractImage(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if src, ok := doc.Find(sel).First().Attr("src"); ok && strings.TrimSpace(src) != "" {
			return strings.TrimSpace(src)
		}
	}
	if content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}

// extractBody tries each paragraph selector in order, then every paragraph in
// the document.
func extractBody(doc *goquery.Document, selectors []string) string {
	for _, sel := range append(append([]string{}, selectors...), "p") {
		if text := joinParagraphs(doc.Find(sel)); text != "" {
			return text
		}
	}
	return ""
}

// joinParagraphs space-joins the trimmed text of every non-empty element.
func joinParagraphs(sel *goquery.Selection) string {
	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// readabilityBody is the last-resort body strategy for markup where no
// paragraph selector yields usable text.
func readabilityBody(html, articleURL string) string {
	parsed, err := url.Parse(articleURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(article.TextContent), " ")
}
