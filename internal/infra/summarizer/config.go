// Package summarizer provides AI-powered text summarization implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns, plus a deterministic NoOp fallback for development and tests.
// Every adapter implements the same length-bounded contract: summarize the
// given text to between minLength and maxLength characters.
package summarizer

import (
	"fmt"
	"os"
	"time"

	"docdigest/pkg/config"
)

// Provider identifiers accepted by New.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNoOp   = "noop"
)

// Input length guard. Providers truncate longer inputs before the API call
// to stay clear of model token limits; the pipeline's chunker keeps chunks
// far below this in normal operation.
const maxInputChars = 10000

// Config holds configuration parameters shared by all summarizer providers.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// Provider selects the implementation: "openai", "claude" or "noop".
	Provider string

	// Model is the API model identifier, passed through to the provider
	// unchanged. A request-level model override takes precedence.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// LoadConfig loads summarizer configuration from environment variables.
//
// Environment variables:
//   - SUMMARIZER_PROVIDER: openai, claude or noop (default: noop)
//   - SUMMARIZER_MODEL: model identifier (default: provider-specific)
//   - SUMMARIZER_MAX_TOKENS: response token cap (default: 1024)
//   - SUMMARIZER_TIMEOUT: per-call timeout (default: 60s)
func LoadConfig() Config {
	cfg := Config{
		Provider:  config.GetEnvString("SUMMARIZER_PROVIDER", ProviderNoOp),
		Model:     config.GetEnvString("SUMMARIZER_MODEL", ""),
		MaxTokens: config.GetEnvInt("SUMMARIZER_MAX_TOKENS", 1024),
		Timeout:   config.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel(cfg.Provider)
	}
	return cfg
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderClaude, ProviderNoOp:
	default:
		return fmt.Errorf("unknown summarizer provider %q", c.Provider)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// New creates the configured summarizer provider. API keys are read from
// OPENAI_API_KEY and ANTHROPIC_API_KEY respectively; a missing key for a
// remote provider is a configuration error, not a runtime fallback.
func New(cfg Config) (Summarizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return NewOpenAI(apiKey, cfg), nil
	case ProviderClaude:
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the claude provider")
		}
		return NewClaude(apiKey, cfg), nil
	default:
		return NewNoOp(), nil
	}
}

// ValidateLengthBounds checks a (maxLength, minLength) pair handed to a
// provider. The pipeline computes these from detail-level budgets, so a
// violation here indicates a caller bug rather than bad user input.
func ValidateLengthBounds(maxLength, minLength int) error {
	if maxLength <= 0 {
		return fmt.Errorf("max length must be positive, got %d", maxLength)
	}
	if minLength < 0 {
		return fmt.Errorf("min length must not be negative, got %d", minLength)
	}
	if minLength > maxLength {
		return fmt.Errorf("min length %d exceeds max length %d", minLength, maxLength)
	}
	return nil
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderClaude:
		return "claude-3-5-haiku-latest"
	default:
		return "noop"
	}
}
