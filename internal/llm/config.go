package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

// Providers lists the supported provider names.
var Providers = []string{ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter, ProviderGemini, ProviderMock}

// defaultModels is the model used when Config.Model is empty.
var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-mini",
	ProviderOpenRouter: "gpt-mini",
	ProviderGemini:     "gemini-flash",
}

// apiKeyVars lists, per provider, the variables holding its API key in
// lookup order.
var apiKeyVars = map[string][]string{
	ProviderAnthropic:  {"KS2MATHS_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
	ProviderOpenAI:     {"KS2MATHS_OPENAI_API_KEY", "OPENAI_API_KEY"},
	ProviderOpenRouter: {"KS2MATHS_OPENROUTER_API_KEY", "OPENROUTER_API_KEY"},
	ProviderGemini:     {"KS2MATHS_GEMINI_API_KEY", "GEMINI_API_KEY"},
}

// Config selects and configures the single provider used for rewording.
// An empty Provider disables LLM features.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string

	Retry RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// ProviderConfig is the part of Config a provider adapter needs.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig controls the backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads KS2MATHS_LLM_PROVIDER, KS2MATHS_LLM_MODEL,
// KS2MATHS_LLM_BASE_URL and KS2MATHS_LLM_TIMEOUT, plus the API key of the
// chosen provider. When no provider is named, the first provider with an
// API key in the environment is used, in the order of Providers.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Provider = strings.ToLower(os.Getenv("KS2MATHS_LLM_PROVIDER"))
	cfg.Model = os.Getenv("KS2MATHS_LLM_MODEL")
	cfg.BaseURL = os.Getenv("KS2MATHS_LLM_BASE_URL")
	if d, err := time.ParseDuration(os.Getenv("KS2MATHS_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}

	if cfg.Provider == "" {
		for _, p := range Providers {
			if key := firstEnv(apiKeyVars[p]); key != "" {
				cfg.Provider = p
				cfg.APIKey = key
				break
			}
		}
	} else {
		cfg.APIKey = firstEnv(apiKeyVars[cfg.Provider])
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}
	return cfg
}

func firstEnv(names []string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// Enabled reports whether a provider is configured.
func (c Config) Enabled() bool { return c.Provider != "" }

// Validate checks that the provider is known and has an API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "", ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter, ProviderGemini:
		if c.APIKey == "" {
			return fmt.Errorf("%s is required for the %s provider", apiKeyVars[c.Provider][0], c.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM provider %q (want one of %s)", c.Provider, strings.Join(Providers, ", "))
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

func (c Config) provider() ProviderConfig {
	return ProviderConfig{APIKey: c.APIKey, Model: c.Model, BaseURL: c.BaseURL}
}
