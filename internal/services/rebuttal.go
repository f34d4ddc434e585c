package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Conceptual-Machines/retort-api/internal/llm"
	"github.com/Conceptual-Machines/retort-api/internal/logger"
	"github.com/Conceptual-Machines/retort-api/internal/metrics"
	"github.com/Conceptual-Machines/retort-api/internal/models"
	"github.com/Conceptual-Machines/retort-api/internal/observability"
	"github.com/Conceptual-Machines/retort-api/internal/prompt"
	"github.com/getsentry/sentry-go"
)

// ProviderSource resolves the chat-completion provider for a request
type ProviderSource interface {
	GetProvider(ctx context.Context, providerName string) (llm.Provider, error)
}

// RebuttalService turns a phrase and an intensity into up to three rebuttal lines
type RebuttalService struct {
	providers ProviderSource
	prompts   *prompt.Builder
	tracer    *observability.LangfuseClient
	recorder  metrics.Recorder
}

// NewRebuttalService creates a rebuttal service. tracer and recorder may be nil.
func NewRebuttalService(
	providers ProviderSource,
	tracer *observability.LangfuseClient,
	recorder metrics.Recorder,
) *RebuttalService {
	if tracer == nil {
		tracer = observability.NewDisabledLangfuse()
	}
	if recorder == nil {
		recorder = metrics.NewMulti()
	}
	return &RebuttalService{
		providers: providers,
		prompts:   prompt.NewPromptBuilder(),
		tracer:    tracer,
		recorder:  recorder,
	}
}

// ValidateRequest checks the input text and the intensity range
func ValidateRequest(req models.GenerationRequest) error {
	if strings.TrimSpace(req.Input) == "" {
		return NewValidationError(MsgInputRequired)
	}
	if !models.IsValidIntensity(req.Intensity) {
		return NewValidationError(MsgIntensityRange)
	}
	return nil
}

// Generate runs one generation round trip. Every returned error is a *GenerationError.
func (s *RebuttalService) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	provider, err := s.providers.GetProvider(ctx, "")
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			logger.Warn("LLM provider not configured", logger.Fields{"error": err.Error()})
			return nil, newServerError(MsgConfiguration, err)
		}
		return nil, newServerError(MsgServerError, err)
	}

	startTime := time.Now()
	result, err := s.generate(ctx, provider, req)
	genErr := AsGenerationError(err)

	statusCode := http.StatusOK
	if genErr != nil {
		statusCode = genErr.StatusCode
	}
	s.recorder.RecordGeneration(ctx, provider.Name(), time.Since(startTime), statusCode)

	if genErr != nil {
		return nil, genErr
	}
	return result, nil
}

func (s *RebuttalService) generate(
	ctx context.Context,
	provider llm.Provider,
	req models.GenerationRequest,
) (*models.GenerationResult, error) {
	span := sentry.StartSpan(ctx, "rebuttal.generate")
	defer span.Finish()
	span.SetTag("provider", provider.Name())
	span.SetData("intensity", req.Intensity)

	promptText, err := s.prompts.BuildRebuttalPrompt(req.Input, req.Intensity)
	if err != nil {
		return nil, newServerError(MsgServerError, err)
	}

	params := GetLLMParameters(provider)
	fields := logger.Fields{
		"provider":  provider.Name(),
		"model":     params.Model,
		"intensity": req.Intensity,
	}

	trace := s.tracer.StartTrace(ctx, "rebuttal", map[string]interface{}{
		"intensity": req.Intensity,
		"label":     models.IntensityLabel(req.Intensity),
	})
	defer trace.Finish()
	generation := trace.Generation("rebuttal-completion", map[string]interface{}{
		"provider":    provider.Name(),
		"temperature": params.Temperature,
		"max_tokens":  params.MaxTokens,
	})
	defer generation.Finish()

	startTime := time.Now()
	resp, err := provider.Complete(ctx, params.CompletionRequest(promptText))
	if err != nil {
		generation.Fail(err)

		var upstreamErr *llm.UpstreamStatusError
		if errors.As(err, &upstreamErr) {
			logger.Warn("Upstream returned non-success status", fields.Merge(logger.Fields{
				"status_code": upstreamErr.StatusCode,
			}))
			return nil, &GenerationError{
				StatusCode: upstreamErr.StatusCode,
				Message:    MsgUpstreamFailed,
				Err:        err,
			}
		}

		logger.Warn("Rebuttal generation failed", fields.Merge(logger.Fields{"error": err.Error()}))
		return nil, newServerError(MsgServerError, fmt.Errorf("completion failed: %w", err))
	}

	generation.RecordCompletion(promptText, resp)
	logger.LogGenerationRequest(ctx, resp.Model, time.Since(startTime), resp.Usage.AsMap(), fields)
	s.recorder.RecordTokenUsage(ctx, resp.Model, resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)

	if resp.Content == "" {
		logger.Warn("Upstream returned empty content", fields)
		return nil, newServerError(MsgEmptyContent, nil)
	}

	lines := SplitResponseLines(resp.Content, models.MaxResponses)
	if len(lines) == 0 {
		logger.Warn("Upstream content had no usable lines", fields)
		return nil, newServerError(MsgNoValidResponse, nil)
	}

	span.SetData("lines", len(lines))
	return &models.GenerationResult{Responses: lines}, nil
}
