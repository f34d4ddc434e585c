package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// Provider name
	providerNameOpenRouter = "openrouter"

	// DefaultOpenRouterModel is the model requested through OpenRouter
	DefaultOpenRouterModel = "google/gemini-2.5-flash-preview-09-2025"

	// DefaultOpenRouterBaseURL is the OpenAI-compatible API root of OpenRouter
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1/"

	headerReferer = "HTTP-Referer"
	headerTitle   = "X-Title"

	// Logging limits
	maxPreviewChars = 200
)

// OpenAIOptions configures an OpenAI-compatible chat completion endpoint
type OpenAIOptions struct {
	APIKey  string
	BaseURL string
	Referer string
	Title   string
}

// OpenAIProvider implements the Provider interface using the OpenAI Chat Completions API.
// It targets OpenRouter by default, which speaks the same protocol.
type OpenAIProvider struct {
	client  *openai.Client
	baseURL string
}

// NewOpenAIProvider creates a new chat completion provider
func NewOpenAIProvider(opts OpenAIOptions) *OpenAIProvider {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenRouterBaseURL
	}

	requestOptions := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(baseURL),
		// Every failure is terminal for the request
		option.WithMaxRetries(0),
	}
	if opts.Referer != "" {
		requestOptions = append(requestOptions, option.WithHeader(headerReferer, opts.Referer))
	}
	if opts.Title != "" {
		requestOptions = append(requestOptions, option.WithHeader(headerTitle, opts.Title))
	}

	client := openai.NewClient(requestOptions...)
	return &OpenAIProvider{
		client:  &client,
		baseURL: baseURL,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenRouter
}

// DefaultModel returns the OpenRouter model identifier
func (p *OpenAIProvider) DefaultModel() string {
	return DefaultOpenRouterModel
}

// Complete implements a single non-streaming chat completion
func (p *OpenAIProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	model := request.Model
	if model == "" {
		model = p.DefaultModel()
	}
	log.Printf("💬 CHAT COMPLETION REQUEST STARTED (Model: %s, Base: %s)", model, p.baseURL)

	// Start Sentry transaction
	transaction := sentry.StartTransaction(ctx, "openrouter.complete")
	defer transaction.Finish()

	transaction.SetTag("model", model)
	transaction.SetTag("provider", providerNameOpenRouter)

	params := p.buildRequestParams(request, model)

	span := transaction.StartChild("openrouter.api_call")
	apiStartTime := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ CHAT COMPLETION FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")

		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &UpstreamStatusError{
				Provider:   providerNameOpenRouter,
				StatusCode: apiErr.StatusCode,
				Err:        err,
			}
		}
		sentry.CaptureException(err)
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	log.Printf("⏱️  CHAT COMPLETION COMPLETED in %v", apiDuration)
	transaction.SetTag("success", "true")

	return p.processResponse(resp, model), nil
}

// buildRequestParams builds the Chat Completions payload: one user message plus sampling settings
func (p *OpenAIProvider) buildRequestParams(request *CompletionRequest, model string) openai.ChatCompletionNewParams {
	temperature := request.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	maxTokens := request.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(request.Prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	}
}

// processResponse extracts the first choice's text and the token usage
func (p *OpenAIProvider) processResponse(resp *openai.ChatCompletion, model string) *CompletionResponse {
	result := &CompletionResponse{
		Model: model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if resp.Model != "" {
		result.Model = resp.Model
	}

	if len(resp.Choices) == 0 {
		log.Printf("⚠️  Chat completion returned no choices")
		return result
	}

	result.Content = resp.Choices[0].Message.Content
	log.Printf("📥 CHAT COMPLETION RESPONSE: output_length=%d preview=%q",
		len(result.Content), truncate(result.Content, maxPreviewChars))

	return result
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
