// Package llm provides centralized LLM configuration and tool-calling client
// abstractions. This package enables switching between providers without the
// orchestrator knowing any vendor wire format.
package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over tool-calling LLM providers
type Client interface {
	// Generate sends one request (system prompt + tool catalog + transcript)
	// and returns the model's content blocks and stop reason
	Generate(ctx context.Context, req Request) (*Response, error)
	// GetModel returns the underlying provider model for a tier (for direct access if needed)
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}
