package providers

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates no backend credential was supplied.
var ErrMissingAPIKey = errors.New("anthropic api key is required")

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
}

// DefaultAnthropicConfig returns the provider defaults. The model pin is
// deliberate: analyses feed a legal record, so model drift matters.
func DefaultAnthropicConfig() AnthropicConfig {
	return AnthropicConfig{
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 8192,
	}
}

// Validate checks that the configuration can produce a working client.
func (c AnthropicConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	return nil
}
