// ABOUTME: Summarizer service condenses article bodies via hierarchical chunking
// ABOUTME: Lazily constructs a shared engine and degrades to truncation on any failure

package summary

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"realify-news-api/core/interfaces"
)

const (
	// displayLimit is the length under which text is already short enough
	// to show without condensation.
	displayLimit = 400

	// truncateLimit bounds the truncation fallback output.
	truncateLimit = 800

	// chunkSize keeps each engine call under the model's input ceiling.
	chunkSize = 700

	// combinedLimit is the length under which joined partial summaries
	// need no final compression pass.
	combinedLimit = 500

	// degradedChunkLimit is how much of a chunk survives when the engine
	// fails on it.
	degradedChunkLimit = 300

	chunkMinTokens = 40
	chunkMaxTokens = 120
	finalMinTokens = 50
	finalMaxTokens = 150
)

// EngineFactory constructs the shared summarization engine. It is invoked at
// most once per process; a construction failure is permanent and routes every
// call to the truncation fallback.
type EngineFactory func() (interfaces.SummaryEngine, error)

// Service condenses text into short summaries. It is safe for concurrent use.
type Service struct {
	newEngine EngineFactory
	logger    interfaces.Logger

	once   sync.Once
	engine interfaces.SummaryEngine
}

// NewService creates a summarizer service. The factory may be nil, in which
// case every call uses the truncation fallback.
func NewService(factory EngineFactory, logger interfaces.Logger) *Service {
	return &Service{
		newEngine: factory,
		logger:    logger,
	}
}

// getEngine lazily constructs the shared engine. All callers after the first
// read the same immutable handle; construction is never retried.
func (s *Service) getEngine() interfaces.SummaryEngine {
	s.once.Do(func() {
		if s.newEngine == nil {
			return
		}
		engine, err := s.newEngine()
		if err != nil {
			s.logger.Error("Failed to initialize summarization engine", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		s.engine = engine
		s.logger.Info("Summarization engine initialized", nil)
	})
	return s.engine
}

// Summarize condenses text into a display-short summary. It always returns a
// string and never returns an error: engine failures degrade to truncation.
func (s *Service) Summarize(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}

	text = Normalize(text)
	if len(text) <= displayLimit {
		return text
	}

	engine := s.getEngine()
	if engine == nil {
		s.logger.Warn("Summarization engine unavailable, using truncation fallback", nil)
		return truncate(text)
	}

	chunks := Chunk(text, chunkSize)
	partials := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		partial, err := engine.Condense(ctx, chunk, chunkMinTokens, chunkMaxTokens)
		if err != nil {
			s.logger.Warn("Summarization error on chunk", map[string]interface{}{
				"error": err.Error(),
			})
			partial = head(chunk, degradedChunkLimit)
		}
		partials = append(partials, strings.TrimSpace(partial))
	}

	combined := Normalize(strings.Join(partials, " "))
	if len(combined) <= combinedLimit {
		return combined
	}

	final, err := engine.Condense(ctx, combined, finalMinTokens, finalMaxTokens)
	if err != nil {
		s.logger.Warn("Final summarization pass failed", map[string]interface{}{
			"error": err.Error(),
		})
		return truncate(combined)
	}

	return strings.TrimSpace(final)
}

// truncate bounds text to truncateLimit characters with an ellipsis marker.
func truncate(text string) string {
	if utf8.RuneCountInString(text) > truncateLimit {
		return head(text, truncateLimit) + "..."
	}
	return text
}

// head returns at most n leading characters of text. Cuts land on rune
// boundaries so a fallback never emits invalid UTF-8.
func head(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}
