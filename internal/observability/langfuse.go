package observability

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Conceptual-Machines/retort-api/internal/config"
	"github.com/Conceptual-Machines/retort-api/internal/llm"
	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

// LangfuseClient wraps the Langfuse client with our configuration
type LangfuseClient struct {
	client  *langfuse.Langfuse
	enabled bool
}

// InitializeLangfuse creates the Langfuse client, or a disabled one when not configured
func InitializeLangfuse(ctx context.Context, cfg *config.Config) *LangfuseClient {
	if !cfg.LangfuseEnabled || cfg.LangfuseSecretKey == "" || cfg.LangfusePublicKey == "" {
		log.Println("⚠️  Langfuse not configured (LANGFUSE_ENABLED=false or keys not set)")
		return NewDisabledLangfuse()
	}

	// The SDK reads its credentials from the environment
	setEnvDefault("LANGFUSE_HOST", cfg.LangfuseHost)
	setEnvDefault("LANGFUSE_PUBLIC_KEY", cfg.LangfusePublicKey)
	setEnvDefault("LANGFUSE_SECRET_KEY", cfg.LangfuseSecretKey)

	log.Printf("✅ Langfuse initialized (host: %s)", cfg.LangfuseHost)
	return &LangfuseClient{
		client:  langfuse.New(ctx),
		enabled: true,
	}
}

// NewDisabledLangfuse returns a client whose traces are no-ops
func NewDisabledLangfuse() *LangfuseClient {
	return &LangfuseClient{enabled: false}
}

func setEnvDefault(key, value string) {
	if os.Getenv(key) == "" && value != "" {
		_ = os.Setenv(key, value)
	}
}

// IsEnabled returns whether Langfuse is enabled
func (c *LangfuseClient) IsEnabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Flush sends all queued events; called on shutdown
func (c *LangfuseClient) Flush(ctx context.Context) {
	if c.IsEnabled() {
		c.client.Flush(ctx)
	}
}

// StartTrace starts a new trace in Langfuse
func (c *LangfuseClient) StartTrace(ctx context.Context, name string, metadata map[string]interface{}) *Trace {
	if !c.IsEnabled() {
		return &Trace{enabled: false, ctx: ctx}
	}

	trace, err := c.client.Trace(&model.Trace{
		Name:     name,
		Metadata: metadata,
	})
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse trace: %v", err)
		return &Trace{enabled: false, ctx: ctx}
	}

	return &Trace{
		trace:   trace,
		enabled: true,
		ctx:     ctx,
		client:  c.client,
	}
}

// Trace represents a Langfuse trace
type Trace struct {
	trace   *model.Trace
	enabled bool
	ctx     context.Context
	client  *langfuse.Langfuse
}

// Generation creates a new generation span within the trace
func (t *Trace) Generation(name string, metadata map[string]interface{}) *Generation {
	if !t.enabled {
		return &Generation{enabled: false}
	}

	now := time.Now()
	gen, err := t.client.Generation(&model.Generation{
		TraceID:   t.trace.ID,
		Name:      name,
		StartTime: &now,
		Metadata:  metadata,
	}, nil)
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse generation: %v", err)
		return &Generation{enabled: false}
	}

	return &Generation{
		generation: gen,
		enabled:    true,
		client:     t.client,
	}
}

// Finish completes the trace and flushes data to Langfuse
func (t *Trace) Finish() {
	if t.enabled && t.client != nil {
		t.client.Flush(t.ctx)
	}
}

// Generation represents a Langfuse generation span
type Generation struct {
	generation *model.Generation
	enabled    bool
	client     *langfuse.Langfuse
}

// RecordCompletion stores prompt, output, usage and cost of a completion on the generation
func (g *Generation) RecordCompletion(prompt string, resp *llm.CompletionResponse) {
	if !g.enabled || g.generation == nil || resp == nil {
		return
	}

	cost := CalculateCost(resp.Model, resp.Usage)
	g.generation.Model = resp.Model
	g.generation.Input = []map[string]interface{}{{"role": "user", "content": prompt}}
	if resp.Content != "" {
		g.generation.Output = resp.Content
	}
	g.generation.Usage = model.Usage{
		Input:     int(resp.Usage.InputTokens),
		Output:    int(resp.Usage.OutputTokens),
		Total:     int(resp.Usage.TotalTokens),
		Unit:      model.ModelUsageUnitTokens,
		TotalCost: cost,
	}
	g.Metadata(map[string]interface{}{
		"cost_usd": FormatCost(cost),
	})
}

// Metadata adds metadata to the generation
func (g *Generation) Metadata(metadata map[string]interface{}) {
	if !g.enabled || g.generation == nil {
		return
	}
	md, ok := g.generation.Metadata.(map[string]interface{})
	if !ok || md == nil {
		md = make(map[string]interface{}, len(metadata))
	}
	for k, v := range metadata {
		md[k] = v
	}
	g.generation.Metadata = md
}

// Fail marks the generation as errored with a status message
func (g *Generation) Fail(err error) {
	if !g.enabled || g.generation == nil || err == nil {
		return
	}
	g.generation.Level = model.ObservationLevel("ERROR")
	g.generation.StatusMessage = err.Error()
}

// Finish completes the generation and sends it to Langfuse
func (g *Generation) Finish() {
	if g.enabled && g.generation != nil && g.client != nil {
		now := time.Now()
		g.generation.EndTime = &now
		if _, err := g.client.GenerationEnd(g.generation); err != nil {
			log.Printf("⚠️  Failed to end Langfuse generation: %v", err)
		}
	}
}
