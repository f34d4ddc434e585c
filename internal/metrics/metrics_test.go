package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	mu     sync.Mutex
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (f *fakePutter) PutMetricData(
	_ context.Context, params *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options),
) (*cloudwatch.PutMetricDataOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, params)
	return &cloudwatch.PutMetricDataOutput{}, f.err
}

type recordingRecorder struct {
	requests    int
	generations []int
	tokens      int64
}

func (r *recordingRecorder) RecordAPIRequest(context.Context, string, int, time.Duration) {
	r.requests++
}

func (r *recordingRecorder) RecordGeneration(_ context.Context, _ string, _ time.Duration, statusCode int) {
	r.generations = append(r.generations, statusCode)
}

func (r *recordingRecorder) RecordTokenUsage(_ context.Context, _ string, _, _, total int64) {
	r.tokens += total
}

func TestNewClientDisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development")
	require.NoError(t, err)
	assert.False(t, client.enabled)

	assert.NotPanics(t, func() {
		client.RecordAPIRequest(context.Background(), "/api/generate", http.StatusOK, time.Second)
		client.RecordGeneration(context.Background(), "openrouter", time.Second, http.StatusOK)
		client.RecordTokenUsage(context.Background(), "model", 1, 2, 3)
	})
}

func TestPutMetric(t *testing.T) {
	putter := &fakePutter{}
	client := &Client{client: putter, enabled: true, environment: "production"}

	dimensions := []types.Dimension{{Name: aws.String("Provider"), Value: aws.String("openrouter")}}
	err := client.putMetric("GenerationDuration", 42, types.StandardUnitMilliseconds, dimensions)
	require.NoError(t, err)

	require.Len(t, putter.inputs, 1)
	input := putter.inputs[0]
	assert.Equal(t, namespace, aws.ToString(input.Namespace))
	require.Len(t, input.MetricData, 1)
	assert.Equal(t, "GenerationDuration", aws.ToString(input.MetricData[0].MetricName))
	assert.Equal(t, 42.0, aws.ToFloat64(input.MetricData[0].Value))
	assert.Equal(t, types.StandardUnitMilliseconds, input.MetricData[0].Unit)
}

func TestPutMetricError(t *testing.T) {
	putter := &fakePutter{err: errors.New("throttled")}
	client := &Client{client: putter, enabled: true, environment: "production"}

	err := client.putMetric("APIRequests", 1, types.StandardUnitCount, nil)
	assert.EqualError(t, err, "throttled")
}

func TestPutMetricDisabled(t *testing.T) {
	putter := &fakePutter{}
	client := &Client{client: putter, enabled: false}

	require.NoError(t, client.putMetric("APIRequests", 1, types.StandardUnitCount, nil))
	assert.Empty(t, putter.inputs)
}

func TestMultiFansOut(t *testing.T) {
	first := &recordingRecorder{}
	second := &recordingRecorder{}
	multi := NewMulti(first, nil, second)

	require.Len(t, multi, 2)

	ctx := context.Background()
	multi.RecordAPIRequest(ctx, "/api/generate", http.StatusOK, time.Millisecond)
	multi.RecordGeneration(ctx, "openrouter", time.Millisecond, http.StatusServiceUnavailable)
	multi.RecordTokenUsage(ctx, "model", 10, 20, 30)

	for _, r := range []*recordingRecorder{first, second} {
		assert.Equal(t, 1, r.requests)
		assert.Equal(t, []int{http.StatusServiceUnavailable}, r.generations)
		assert.Equal(t, int64(30), r.tokens)
	}
}

func TestSentryMetricsWithoutClient(t *testing.T) {
	m := NewSentryMetrics()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordAPIRequest(ctx, "/health", http.StatusOK, time.Millisecond)
		m.RecordGeneration(ctx, "gemini", time.Millisecond, http.StatusInternalServerError)
		m.RecordTokenUsage(ctx, "model", 1, 2, 3)
	})
}

func TestSpanStatus(t *testing.T) {
	tests := []struct {
		status int
		want   sentry.SpanStatus
	}{
		{http.StatusOK, sentry.SpanStatusOK},
		{http.StatusBadRequest, sentry.SpanStatusInvalidArgument},
		{http.StatusTooManyRequests, sentry.SpanStatusResourceExhausted},
		{http.StatusInternalServerError, sentry.SpanStatusInternalError},
		{http.StatusServiceUnavailable, sentry.SpanStatusUnavailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, spanStatus(tt.status), "status %d", tt.status)
	}
}
