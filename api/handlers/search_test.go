package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"realify-news-api/api/dto/responses"
	"realify-news-api/core/domain"
)

func doSearch(service *mockSearchService, target string) *httptest.ResponseRecorder {
	handler := NewSearchHandler(service, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)
	return rec
}

func TestSearch_MissingQueryReturns400(t *testing.T) {
	invoked := false
	service := &mockSearchService{
		searchAllFunc: func(_ context.Context, _ string) ([]domain.Headline, error) {
			invoked = true
			return nil, nil
		},
	}

	rec := doSearch(service, "/search")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if invoked {
		t.Error("service was invoked without a query")
	}
}

func TestSearch_BlankQueryReturns400(t *testing.T) {
	rec := doSearch(&mockSearchService{}, "/search?query=%20%20")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSearch_UnknownSourceReturns400(t *testing.T) {
	invoked := false
	service := &mockSearchService{
		searchSourceFunc: func(_ context.Context, _ string, _ domain.Source) ([]domain.Headline, error) {
			invoked = true
			return nil, nil
		},
	}

	rec := doSearch(service, "/search?query=budget&source=reuters")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if invoked {
		t.Error("service was invoked for an unknown source")
	}
}

func TestSearch_DefaultsToAllSources(t *testing.T) {
	var gotQuery string
	service := &mockSearchService{
		searchAllFunc: func(_ context.Context, query string) ([]domain.Headline, error) {
			gotQuery = query
			return []domain.Headline{{Source: domain.SourceGeo, URL: "https://www.geo.tv/latest/1"}}, nil
		},
	}

	rec := doSearch(service, "/search?query=budget+deficit")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gotQuery != "budget deficit" {
		t.Errorf("query = %q", gotQuery)
	}

	var resp responses.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "success" || resp.Source != "all" || resp.Count != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestSearch_SingleSourceSelectorRoutesToSource(t *testing.T) {
	var gotSource domain.Source
	service := &mockSearchService{
		searchSourceFunc: func(_ context.Context, _ string, source domain.Source) ([]domain.Headline, error) {
			gotSource = source
			return nil, nil
		},
	}

	rec := doSearch(service, "/search?query=budget&source=dawn")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotSource != domain.SourceDawn {
		t.Errorf("source = %q", gotSource)
	}
}

func TestSearch_NoResultsReturnsEmptyArray(t *testing.T) {
	rec := doSearch(&mockSearchService{}, "/search?query=nothing")

	var resp responses.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Results == nil {
		t.Error("Results should be an empty array, not null")
	}
	if resp.Count != 0 {
		t.Errorf("Count = %d", resp.Count)
	}
}

func TestSearch_ServiceErrorReturns500(t *testing.T) {
	service := &mockSearchService{
		searchAllFunc: func(_ context.Context, _ string) ([]domain.Headline, error) {
			return nil, errors.New("pipeline blew up")
		},
	}

	rec := doSearch(service, "/search?query=budget")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
