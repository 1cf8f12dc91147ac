package summary

import (
	"context"

	"realify-news-api/core/interfaces"
)

// mockEngine is a mock implementation of the SummaryEngine interface
type mockEngine struct {
	condenseFunc func(ctx context.Context, text string, minTokens, maxTokens int) (string, error)
	calls        []engineCall
}

type engineCall struct {
	text      string
	minTokens int
	maxTokens int
}

func (m *mockEngine) Condense(ctx context.Context, text string, minTokens, maxTokens int) (string, error) {
	m.calls = append(m.calls, engineCall{text: text, minTokens: minTokens, maxTokens: maxTokens})
	if m.condenseFunc != nil {
		return m.condenseFunc(ctx, text, minTokens, maxTokens)
	}
	return "", nil
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func engineFactory(engine *mockEngine) EngineFactory {
	return func() (interfaces.SummaryEngine, error) {
		return engine, nil
	}
}
