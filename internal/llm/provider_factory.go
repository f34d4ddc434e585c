package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Conceptual-Machines/retort-api/internal/config"
)

// ProviderFactory creates providers based on the configured provider name and
// reuses each one after it is first built
type ProviderFactory struct {
	cfg *config.Config

	mu        sync.Mutex
	providers map[string]Provider
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(cfg *config.Config) *ProviderFactory {
	return &ProviderFactory{
		cfg:       cfg,
		providers: make(map[string]Provider),
	}
}

// GetProvider returns the provider for the given name, or the configured one when name is empty.
// The credential is checked until a provider is built, so the server can start without one.
func (f *ProviderFactory) GetProvider(ctx context.Context, providerName string) (Provider, error) {
	if providerName == "" {
		providerName = f.cfg.Provider
	}
	name := strings.ToLower(providerName)
	if name == "" {
		name = config.ProviderOpenRouter
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if provider, ok := f.providers[name]; ok {
		return provider, nil
	}

	provider, err := f.newProvider(ctx, name, providerName)
	if err != nil {
		return nil, err
	}
	f.providers[name] = provider
	return provider, nil
}

func (f *ProviderFactory) newProvider(ctx context.Context, name, requested string) (Provider, error) {
	switch name {
	case config.ProviderOpenRouter:
		if f.cfg.OpenRouterAPIKey == "" {
			return nil, fmt.Errorf("%s: %w", config.ProviderOpenRouter, ErrMissingAPIKey)
		}
		return NewOpenAIProvider(OpenAIOptions{
			APIKey:  f.cfg.OpenRouterAPIKey,
			BaseURL: f.cfg.OpenRouterBaseURL,
			Referer: f.cfg.SiteURL,
			Title:   f.cfg.AppTitle,
		}), nil

	case config.ProviderGemini:
		if f.cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%s: %w", config.ProviderGemini, ErrMissingAPIKey)
		}
		return NewGeminiProvider(ctx, f.cfg.GeminiAPIKey)

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: openrouter, gemini)", requested)
	}
}

// DefaultModelFor returns the model a provider name resolves to, without building the provider
func DefaultModelFor(providerName string) string {
	if strings.EqualFold(providerName, config.ProviderGemini) {
		return DefaultGeminiModel
	}
	return DefaultOpenRouterModel
}
