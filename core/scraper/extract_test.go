package scraper

import (
	"context"
	"strings"
	"testing"

	"realify-news-api/core/domain"
	coreerrors "realify-news-api/core/errors"
	"realify-news-api/core/interfaces"
)

const articleBody = "The provincial government announced a new infrastructure package on Monday, " +
	"with officials promising work would begin before the end of the fiscal year."

func extractWith(t *testing.T, html string, rules extractRules) (*domain.Headline, error) {
	t.Helper()
	x := newArticleExtractor(testFetcher(htmlClient(html)), passthroughSummarizer{}, nopLogger{})
	return x.extract(context.Background(), domain.SourceGeo, "https://www.geo.tv/latest/1-story", rules)
}

func TestExtract_UsesSourceSelectors(t *testing.T) {
	html := `<html><body>
		<div class="heading_H"><h1>Package Announced</h1></div>
		<div class="content-area">
			<img src="https://cdn.example.com/pic.jpg">
			<p>` + articleBody + `</p>
		</div>
	</body></html>`

	headline, err := extractWith(t, html, geoRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if headline.Heading != "Package Announced" {
		t.Errorf("Heading = %q", headline.Heading)
	}
	if headline.Picture != "https://cdn.example.com/pic.jpg" {
		t.Errorf("Picture = %q", headline.Picture)
	}
	if !strings.Contains(headline.Summary, "infrastructure package") {
		t.Errorf("Summary = %q", headline.Summary)
	}
	if headline.Source != domain.SourceGeo {
		t.Errorf("Source = %q", headline.Source)
	}
}

func TestExtract_HeadingFallsBackToFirstH1(t *testing.T) {
	html := `<html><body>
		<h1>Generic Title</h1>
		<p>` + articleBody + `</p>
	</body></html>`

	headline, err := extractWith(t, html, geoRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if headline.Heading != "Generic Title" {
		t.Errorf("Heading = %q", headline.Heading)
	}
}

func TestExtract_MissingHeadingUsesSentinel(t *testing.T) {
	html := `<html><body><p>` + articleBody + `</p></body></html>`

	headline, err := extractWith(t, html, geoRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if headline.Heading != domain.NoHeading {
		t.Errorf("Heading = %q, want sentinel", headline.Heading)
	}
}

func TestExtract_ImageFallsBackToOpenGraph(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="https://cdn.example.com/og.jpg">
	</head><body><p>` + articleBody + `</p></body></html>`

	headline, err := extractWith(t, html, geoRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if headline.Picture != "https://cdn.example.com/og.jpg" {
		t.Errorf("Picture = %q", headline.Picture)
	}
}

func TestExtract_MissingImageIsEmpty(t *testing.T) {
	html := `<html><body><p>` + articleBody + `</p></body></html>`

	headline, err := extractWith(t, html, geoRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if headline.Picture != "" {
		t.Errorf("Picture = %q, want empty", headline.Picture)
	}
}

func TestExtract_BodySelectorsTriedInOrder(t *testing.T) {
	html := `<html><body>
		<article><p>Article fallback text that should not be selected here at all.</p></article>
		<div class="content-area"><p>` + articleBody + `</p></div>
	</body></html>`

	headline, err := extractWith(t, html, geoRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if !strings.Contains(headline.Summary, "infrastructure package") {
		t.Errorf("Summary came from the wrong container: %q", headline.Summary)
	}
	if strings.Contains(headline.Summary, "fallback text") {
		t.Errorf("Summary mixed in later-selector text: %q", headline.Summary)
	}
}

func TestExtract_GenericParagraphFallback(t *testing.T) {
	html := `<html><body>
		<div class="unstyled"><p>` + articleBody + `</p></div>
	</body></html>`

	headline, err := extractWith(t, html, geoRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if !strings.Contains(headline.Summary, "infrastructure package") {
		t.Errorf("Summary = %q", headline.Summary)
	}
}

func TestExtract_BBCTextBlocksKeepNonParagraphText(t *testing.T) {
	html := `<html><body>
		<div data-component="text-block">
			<p>` + articleBody + `</p>
			<ul><li>Bridges and bypass roads</li><li>Two new water schemes</li></ul>
		</div>
	</body></html>`
	x := newArticleExtractor(testFetcher(htmlClient(html)), passthroughSummarizer{}, nopLogger{})

	headline, err := x.extract(context.Background(), domain.SourceBBC, "https://www.bbc.com/news/1", bbcRules)

	if err != nil {
		t.Fatalf("extract returned error: %v", err)
	}
	if !strings.Contains(headline.Summary, "infrastructure package") {
		t.Errorf("Summary dropped paragraph text: %q", headline.Summary)
	}
	if !strings.Contains(headline.Summary, "bypass roads") || !strings.Contains(headline.Summary, "water schemes") {
		t.Errorf("Summary dropped list text inside the block: %q", headline.Summary)
	}
}

func TestExtract_InsufficientContentFails(t *testing.T) {
	html := `<html><body><h1>Title Only</h1><p>Too short.</p></body></html>`

	_, err := extractWith(t, html, geoRules)

	if err == nil {
		t.Fatal("extract should fail on insufficient content")
	}
	if !coreerrors.IsExtraction(err) {
		t.Errorf("error is not an ExtractionError: %v", err)
	}
}

func TestExtract_FetchFailurePropagates(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(_ context.Context, _ string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 500, body: ""}, nil
		},
	}
	x := newArticleExtractor(testFetcher(client), passthroughSummarizer{}, nopLogger{})

	_, err := x.extract(context.Background(), domain.SourceGeo, "https://www.geo.tv/latest/1", geoRules)

	if !coreerrors.IsFetch(err) {
		t.Errorf("error is not a FetchError: %v", err)
	}
}
