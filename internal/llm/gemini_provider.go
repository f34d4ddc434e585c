package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"

	// DefaultGeminiModel is the model requested from the Gemini API directly
	DefaultGeminiModel = "gemini-2.5-flash"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// DefaultModel returns the Gemini model identifier
func (p *GeminiProvider) DefaultModel() string {
	return DefaultGeminiModel
}

// Complete implements a single non-streaming generation using Gemini's API
func (p *GeminiProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	model := request.Model
	if model == "" {
		model = p.DefaultModel()
	}
	log.Printf("💬 GEMINI GENERATION REQUEST STARTED (Model: %s)", model)

	// Start Sentry transaction
	transaction := sentry.StartTransaction(ctx, "gemini.complete")
	defer transaction.Finish()

	transaction.SetTag("model", model)
	transaction.SetTag("provider", providerNameGemini)

	span := transaction.StartChild("gemini.api_call")
	apiStartTime := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, model, buildGeminiContents(request.Prompt), buildGeminiConfig(request))
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		if status := geminiStatusCode(err); status != 0 {
			return nil, &UpstreamStatusError{
				Provider:   providerNameGemini,
				StatusCode: status,
				Err:        err,
			}
		}
		sentry.CaptureException(err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	log.Printf("⏱️  GEMINI API CALL COMPLETED in %v", apiDuration)
	transaction.SetTag("success", "true")

	return processGeminiResponse(result, model), nil
}

// buildGeminiContents wraps the prompt as a single user turn
func buildGeminiContents(prompt string) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
}

func buildGeminiConfig(request *CompletionRequest) *genai.GenerateContentConfig {
	temperature := request.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	maxTokens := request.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(temperature)),
		MaxOutputTokens: int32(maxTokens),
	}
}

// processGeminiResponse converts a Gemini response to our CompletionResponse
func processGeminiResponse(result *genai.GenerateContentResponse, model string) *CompletionResponse {
	response := &CompletionResponse{Model: model}

	if result.UsageMetadata != nil {
		response.Usage = Usage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		log.Printf("⚠️  Gemini response has no candidates")
		return response
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	response.Content = sb.String()
	log.Printf("📥 GEMINI RESPONSE: output_length=%d", len(response.Content))

	return response
}

// geminiStatusCode returns the HTTP status carried by a Gemini API error, or 0
func geminiStatusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}
