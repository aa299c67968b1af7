package llm

import (
	"context"
	"fmt"
	"log"
)

// NewProvider builds the configured provider wrapped as
// caller -> retry -> logging -> vendor, so every attempt is logged.
func NewProvider(ctx context.Context, cfg Config, logger *log.Logger) (Provider, error) {
	var (
		vendor Provider
		err    error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		vendor, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		vendor, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		vendor, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(vendor, logger), cfg.Retry), nil
}
