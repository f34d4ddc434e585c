package config

import (
	"os"
	"strings"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// Config holds the application configuration
// Note: This is a stateless service - nothing is persisted between requests
type Config struct {
	// Environment
	Environment string
	Port        string

	// Upstream LLM
	Provider          string // "openrouter" (default) or "gemini"
	OpenRouterAPIKey  string // Required for the default provider
	OpenRouterBaseURL string // OpenAI-compatible chat completions base URL
	GeminiAPIKey      string // Google Gemini API key (LLM_PROVIDER=gemini)

	// Sent upstream as HTTP-Referer and X-Title
	SiteURL  string
	AppTitle string

	// CORS
	AllowedOrigins []string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		Provider:          strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenRouter)),
		OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1/"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		SiteURL:           getEnv("NEXT_PUBLIC_SITE_URL", getEnv("SITE_URL", "http://localhost:3000")),
		AppTitle:          getEnv("APP_TITLE", "吵架包赢"),
		AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// APIKey returns the credential of the selected provider
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenRouterAPIKey
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
