package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vars = []string{
	"KS2MATHS_DB", "KS2MATHS_LOG_LEVEL", "KS2MATHS_LOG_FORMAT",
	"KS2MATHS_QUESTIONS_PER_SESSION", "KS2MATHS_HISTORY_COOLDOWN",
	"KS2MATHS_ADDR", "KS2MATHS_SEED", "KS2MATHS_LLM_PROVIDER",
	"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "OPENROUTER_API_KEY", "GEMINI_API_KEY",
	"KS2MATHS_ANTHROPIC_API_KEY", "KS2MATHS_OPENAI_API_KEY",
	"KS2MATHS_OPENROUTER_API_KEY", "KS2MATHS_GEMINI_API_KEY",
}

func unset(t *testing.T) {
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10, cfg.QuestionsPerSession)
	assert.Equal(t, 24*time.Hour, cfg.HistoryCooldown)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	unset(t)
	t.Setenv("KS2MATHS_DB", "/tmp/k.db")
	t.Setenv("KS2MATHS_LOG_LEVEL", "debug")
	t.Setenv("KS2MATHS_LOG_FORMAT", "json")
	t.Setenv("KS2MATHS_QUESTIONS_PER_SESSION", "15")
	t.Setenv("KS2MATHS_HISTORY_COOLDOWN", "2h")
	t.Setenv("KS2MATHS_ADDR", "127.0.0.1:9000")
	t.Setenv("KS2MATHS_SEED", "42")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/k.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 15, cfg.QuestionsPerSession)
	assert.Equal(t, 2*time.Hour, cfg.HistoryCooldown)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.LLM.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_Malformed(t *testing.T) {
	unset(t)
	t.Setenv("KS2MATHS_QUESTIONS_PER_SESSION", "ten")
	t.Setenv("KS2MATHS_SEED", "-1")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KS2MATHS_QUESTIONS_PER_SESSION")
	assert.Contains(t, err.Error(), "KS2MATHS_SEED")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"too many questions", func(c *Config) { c.QuestionsPerSession = 51 }, "between 1 and 50"},
		{"zero questions", func(c *Config) { c.QuestionsPerSession = 0 }, "between 1 and 50"},
		{"negative cooldown", func(c *Config) { c.HistoryCooldown = -time.Second }, "cooldown"},
		{"empty addr", func(c *Config) { c.Addr = "" }, "address"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"llm without key", func(c *Config) { c.LLM.Provider = "anthropic" }, "KS2MATHS_ANTHROPIC_API_KEY"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
