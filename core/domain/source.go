// ABOUTME: Source enum identifies the closed set of supported news sources
// ABOUTME: Provides parsing and validation for source selectors from API requests

package domain

import "fmt"

// Source identifies one of the supported news sources.
type Source string

const (
	SourceGeo   Source = "geo"
	SourceBBC   Source = "bbc"
	SourceARY   Source = "ary"
	SourceSamaa Source = "samaa"
	SourceDawn  Source = "dawn"
)

// AllSources returns the supported sources in the fixed search order.
func AllSources() []Source {
	return []Source{SourceGeo, SourceBBC, SourceARY, SourceSamaa, SourceDawn}
}

// ParseSource validates a source selector from a request.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceGeo, SourceBBC, SourceARY, SourceSamaa, SourceDawn:
		return Source(s), nil
	}
	return "", fmt.Errorf("unknown source %q", s)
}
