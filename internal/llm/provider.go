package llm

import (
	"context"
	"errors"
	"fmt"
)

// Fixed sampling parameters for rebuttal generation
const (
	DefaultTemperature = 0.8
	DefaultMaxTokens   = 500
)

// ErrMissingAPIKey is returned when the selected provider has no credential configured
var ErrMissingAPIKey = errors.New("llm API key not configured")

// Provider defines the interface for chat-completion providers
type Provider interface {
	// Complete sends the prompt as a single user message and returns the text of the first choice
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)

	// DefaultModel returns the model identifier used when the request leaves Model empty
	DefaultModel() string

	// Name returns the provider name (e.g., "openrouter", "gemini")
	Name() string
}

// CompletionRequest contains all parameters needed for a single completion
type CompletionRequest struct {
	Model       string
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// Usage holds token counts reported by the upstream
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// AsMap returns the usage in the shape the logger and tracing helpers expect
func (u Usage) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"input_tokens":  u.InputTokens,
		"output_tokens": u.OutputTokens,
		"total_tokens":  u.TotalTokens,
	}
}

// CompletionResponse contains the result from the LLM
type CompletionResponse struct {
	// Content is the text of the first choice; empty when the upstream returned none
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
}

// UpstreamStatusError reports a non-success HTTP status from the upstream API
type UpstreamStatusError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s upstream returned status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *UpstreamStatusError) Unwrap() error {
	return e.Err
}
