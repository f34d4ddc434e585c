package metrics

import (
	"context"
	"time"
)

// Recorder receives request and generation metrics
type Recorder interface {
	RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration)
	RecordGeneration(ctx context.Context, provider string, duration time.Duration, statusCode int)
	RecordTokenUsage(ctx context.Context, model string, inputTokens, outputTokens, totalTokens int64)
}

// Multi fans every call out to each recorder in order
type Multi []Recorder

// NewMulti builds a Multi, skipping nil recorders
func NewMulti(recorders ...Recorder) Multi {
	multi := make(Multi, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			multi = append(multi, r)
		}
	}
	return multi
}

func (m Multi) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	for _, r := range m {
		r.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	}
}

func (m Multi) RecordGeneration(ctx context.Context, provider string, duration time.Duration, statusCode int) {
	for _, r := range m {
		r.RecordGeneration(ctx, provider, duration, statusCode)
	}
}

func (m Multi) RecordTokenUsage(ctx context.Context, model string, inputTokens, outputTokens, totalTokens int64) {
	for _, r := range m {
		r.RecordTokenUsage(ctx, model, inputTokens, outputTokens, totalTokens)
	}
}

var (
	_ Recorder = (*SentryMetrics)(nil)
	_ Recorder = (*Client)(nil)
	_ Recorder = Multi(nil)
)
