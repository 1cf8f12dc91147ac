// ABOUTME: Summarization engine backed by an OpenAI-compatible chat completion API
// ABOUTME: Deterministic condensation with token bounds supplied per call

package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds engine configuration. BaseURL may point at any
// OpenAI-compatible backend, including a local one.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Engine implements interfaces.SummaryEngine over chat completions.
type Engine struct {
	client *openai.Client
	model  string
}

// NewEngine creates a summarization engine. It fails when no API key is
// configured, which routes the summarizer to its truncation fallback.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("summarization API key not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Engine{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

// Condense summarizes text to between minTokens and maxTokens. Temperature
// zero keeps the output deterministic.
func (e *Engine) Condense(ctx context.Context, text string, minTokens, maxTokens int) (string, error) {
	instruction := fmt.Sprintf(
		"Summarize the following news article text in plain prose, at least %d tokens long. Output only the summary.",
		minTokens,
	)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("summarization returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("summarization returned empty content")
	}
	return summary, nil
}
