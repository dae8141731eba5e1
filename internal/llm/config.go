// Package llm provides centralized LLM configuration and client abstractions
// for the upstream analysis providers the evaluator can delegate to.
package llm

// Provider represents an upstream analysis provider
type Provider string

// Provider constants define supported analysis providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderPerplexity is the Perplexity chat-completions provider
	ProviderPerplexity Provider = "perplexity"
)

// Config holds the provider and generation settings for the application
type Config struct {
	Provider     Provider
	Model        string
	SystemPrompt string
	Temperature  float32
	MaxTokens    int
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.2,
		MaxTokens:   2000,
	}
}

// DefaultPerplexityConfig returns the default Perplexity configuration
func DefaultPerplexityConfig() *Config {
	return &Config{
		Provider:    ProviderPerplexity,
		Model:       "sonar",
		Temperature: 0.2,
		MaxTokens:   2000,
	}
}

// WithModel returns a copy of the config with a specific model
func (c *Config) WithModel(model string) *Config {
	cfg := *c
	cfg.Model = model
	return &cfg
}

// WithSystemPrompt returns a copy of the config with a system prompt set
func (c *Config) WithSystemPrompt(prompt string) *Config {
	cfg := *c
	cfg.SystemPrompt = prompt
	return &cfg
}
