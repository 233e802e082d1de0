// Package config reads the ks2maths runtime settings from KS2MATHS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abhisek/ks2maths/internal/llm"
	"github.com/abhisek/ks2maths/internal/logging"
	"github.com/abhisek/ks2maths/internal/session"
)

// Config holds every runtime setting.
type Config struct {
	// DBPath is the sqlite file. Empty means store.DefaultDBPath.
	DBPath string

	LogLevel  string
	LogFormat string

	QuestionsPerSession int

	// HistoryCooldown is how long a served question stays excluded from
	// new batches.
	HistoryCooldown time.Duration

	// Addr is the listen address for serve.
	Addr string

	// Seed fixes the question generator. Zero seeds from the clock.
	Seed uint64

	LLM llm.Config
}

func DefaultConfig() Config {
	return Config{
		LogLevel:            "warn",
		LogFormat:           logging.FormatConsole,
		QuestionsPerSession: session.DefaultQuestionsPerSession,
		HistoryCooldown:     24 * time.Hour,
		Addr:                ":8080",
		LLM:                 llm.DefaultConfig(),
	}
}

// ConfigFromEnv starts from DefaultConfig and applies the KS2MATHS_*
// variables that are set. Malformed values are reported together.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v := os.Getenv("KS2MATHS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("KS2MATHS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KS2MATHS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("KS2MATHS_QUESTIONS_PER_SESSION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("KS2MATHS_QUESTIONS_PER_SESSION: %w", err))
		}
		cfg.QuestionsPerSession = n
	}
	if v := os.Getenv("KS2MATHS_HISTORY_COOLDOWN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("KS2MATHS_HISTORY_COOLDOWN: %w", err))
		}
		cfg.HistoryCooldown = d
	}
	if v := os.Getenv("KS2MATHS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("KS2MATHS_SEED"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("KS2MATHS_SEED: %w", err))
		}
		cfg.Seed = s
	}
	cfg.LLM = llm.ConfigFromEnv()

	return cfg, errors.Join(errs...)
}

// Validate checks ranges and the LLM settings.
func (c Config) Validate() error {
	var errs []error
	if c.QuestionsPerSession < 1 || c.QuestionsPerSession > 50 {
		errs = append(errs, fmt.Errorf("questions per session must be between 1 and 50, got %d", c.QuestionsPerSession))
	}
	if c.HistoryCooldown < 0 {
		errs = append(errs, fmt.Errorf("history cooldown must not be negative, got %s", c.HistoryCooldown))
	}
	if c.Addr == "" {
		errs = append(errs, errors.New("listen address is empty"))
	}
	if _, err := logging.New(c.LogLevel, c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
