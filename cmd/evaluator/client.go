package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-evaluator/internal/config"
	"github.com/jonathan/project-evaluator/internal/evaluation"
	"github.com/jonathan/project-evaluator/internal/llm"
)

// providerFlags are the flags shared by every command that talks to the
// analysis provider. Each command registers them against its own variables.
type providerFlags struct {
	configPath    string
	provider      string
	model         string
	apiKey        string
	maxConcurrent int
	maxTokens     int
	verbose       bool
}

func (f *providerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVar(&f.provider, "provider", "", "Analysis provider: gemini or perplexity (default gemini)")
	cmd.Flags().StringVar(&f.model, "model", "", "Provider model name (defaults to the provider's standard model)")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Provider API key (optional, defaults to GEMINI_API_KEY or PERPLEXITY_API_KEY)")
	cmd.Flags().IntVar(&f.maxConcurrent, "max-concurrent", 0, "Maximum in-flight provider calls for batch and compare")
	cmd.Flags().IntVar(&f.maxTokens, "max-tokens", 0, "Maximum tokens requested per analysis")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed output")
}

// resolveConfig loads the optional config file, applies CLI overrides and
// defaults, and validates the result. Flags only override when explicitly set.
func (f *providerFlags) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if f.verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", f.configPath)
		}
	}

	if cmd.Flags().Changed("provider") {
		cfg.Provider = f.provider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = f.model
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("max-concurrent") {
		cfg.MaxConcurrent = f.maxConcurrent
	}
	if cmd.Flags().Changed("max-tokens") {
		cfg.MaxTokens = f.maxTokens
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	defaults := config.Config{
		Provider:      string(llm.ProviderGemini),
		MaxConcurrent: evaluation.DefaultMaxInFlight,
		Port:          8080,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.APIKey == "" {
		cfg.APIKey = config.APIKeyFromEnv(cfg.Provider)
	}
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("an API key is required: set --api-key, the config file, or the provider's environment variable")
	}

	return cfg, nil
}

// newEvaluator builds the analysis client and evaluator from resolved config.
// The caller owns the returned client and must Close it.
func newEvaluator(ctx context.Context, cfg config.Config) (*evaluation.Evaluator, llm.Client, error) {
	llmCfg := llm.DefaultConfig()
	if cfg.Provider == string(llm.ProviderPerplexity) {
		llmCfg = llm.DefaultPerplexityConfig()
	}
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(cfg.Model)
	}
	if cfg.MaxTokens > 0 {
		llmCfg.MaxTokens = cfg.MaxTokens
	}
	llmCfg = llmCfg.WithSystemPrompt(evaluation.SystemPrompt())

	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create analysis client: %w", err)
	}

	return evaluation.New(client, cfg.MaxConcurrent), client, nil
}

// writeOutput writes the report to the output file, or stdout when no file
// was requested.
func writeOutput(outputPath, content string) error {
	if outputPath == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report written to: %s\n", outputPath)
	return nil
}
