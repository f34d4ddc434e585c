package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics records request and generation metrics as Sentry spans
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Spans are dropped by the SDK when Sentry is not configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	span.Status = spanStatus(statusCode)
	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordGeneration records the outcome of one rebuttal generation
func (m *SentryMetrics) RecordGeneration(ctx context.Context, provider string, duration time.Duration, statusCode int) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "generation.request")
	defer span.Finish()

	success := statusCode < successStatusCodeThreshold
	span.SetTag("provider", provider)
	span.SetTag("success", fmt.Sprintf("%t", success))
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("success", success)

	span.Status = spanStatus(statusCode)
	span.Description = fmt.Sprintf("Generation Request: %s", provider)
}

// RecordTokenUsage records upstream token usage on the current transaction and a child span
func (m *SentryMetrics) RecordTokenUsage(ctx context.Context, model string, inputTokens, outputTokens, totalTokens int64) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("llm.model", model)
		transaction.SetData("llm.total_tokens", totalTokens)
		transaction.SetData("llm.input_tokens", inputTokens)
		transaction.SetData("llm.output_tokens", outputTokens)
	}

	span := sentry.StartSpan(ctx, "llm.token_usage")
	defer span.Finish()

	span.SetTag("model", model)
	span.SetData("total_tokens", totalTokens)
	span.SetData("input_tokens", inputTokens)
	span.SetData("output_tokens", outputTokens)

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Token Usage: %s", model)
}

func spanStatus(statusCode int) sentry.SpanStatus {
	switch {
	case statusCode < successStatusCodeThreshold:
		return sentry.SpanStatusOK
	case statusCode == http.StatusTooManyRequests:
		return sentry.SpanStatusResourceExhausted
	case statusCode < http.StatusInternalServerError:
		return sentry.SpanStatusInvalidArgument
	case statusCode == http.StatusServiceUnavailable:
		return sentry.SpanStatusUnavailable
	default:
		return sentry.SpanStatusInternalError
	}
}
