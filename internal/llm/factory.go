package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/store"
)

// ErrDisabled is returned by NewProvider when no provider is configured.
var ErrDisabled = errors.New("no LLM provider configured")

// NewProvider builds the configured provider wrapped as
// retry(recording(base)). events may be nil, in which case calls are only
// logged.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger, events store.EventRepo) (Provider, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.provider())
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.provider())
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.provider())
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.provider())
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	rec := WithRecording(base, cfg.Provider, log, events)
	return WithRetry(rec, cfg.Retry, log), nil
}
