package services

import (
	"github.com/Conceptual-Machines/retort-api/internal/llm"
)

// LLMParameters contains the sampling configuration for a rebuttal completion
type LLMParameters struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

// GetLLMParameters returns the fixed parameters used with the given provider
func GetLLMParameters(provider llm.Provider) LLMParameters {
	return LLMParameters{
		Model:       provider.DefaultModel(),
		Temperature: llm.DefaultTemperature,
		MaxTokens:   llm.DefaultMaxTokens,
	}
}

// CompletionRequest builds the provider request for a prompt
func (p LLMParameters) CompletionRequest(prompt string) *llm.CompletionRequest {
	return &llm.CompletionRequest{
		Model:       p.Model,
		Prompt:      prompt,
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	}
}
