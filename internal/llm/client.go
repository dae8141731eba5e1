package llm

import (
	"context"
	"fmt"
)

// Analysis is the raw result of one upstream analysis call.
type Analysis struct {
	// Text is the free-form analysis the model produced
	Text string
	// TokensUsed is the total token count reported by the provider (0 when unreported)
	TokensUsed int
	// Model is the model that produced the analysis
	Model string
}

// Client is an abstraction over analysis providers
type Client interface {
	// Analyze sends a prompt to the provider and returns the raw analysis text
	// plus usage metadata. Retries, if any, belong to the provider's own SDK.
	Analyze(ctx context.Context, prompt string) (*Analysis, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new analysis client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderPerplexity:
		return NewPerplexityClient(config, apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", config.Provider)
	}
}
