package llm

import (
	"context"
	"fmt"

	"github.com/trisha-agni/flashcard-cong-app/internal/store"
)

// NewProvider builds a Provider from config, wrapped with a request
// deadline, retry, and event logging. The middleware order is
// caller -> timeout -> retry -> logging -> base provider, so the
// deadline caps all attempts and each attempt is logged as its own
// event.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if repo != nil {
		base = WithLogging(base, cfg.Provider, repo)
	}
	return WithTimeout(WithRetry(base, cfg.Retry), cfg.Timeout), nil
}

// NewProviderFromEnv builds a Provider from CONG_* environment variables.
// If the configured provider has no API key set, it falls back to probing
// the bare provider key variables via DiscoverConfig.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	return NewProvider(ctx, cfg, repo)
}
