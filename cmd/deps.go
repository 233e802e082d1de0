package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/config"
	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/llm"
	"github.com/abhisek/ks2maths/internal/logging"
	"github.com/abhisek/ks2maths/internal/problemgen"
	"github.com/abhisek/ks2maths/internal/store"
)

var _ problemgen.History = (*store.HistoryRepo)(nil)

// loadConfig reads the environment and applies the persistent flags on
// top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	flags := cmd.Flags()
	if v, _ := flags.GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path from config or the XDG default,
// creating its directory.
func resolveDBPath(cfg config.Config) (string, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return "", err
		}
	}
	if err := store.EnsureDir(path); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return path, nil
}

func openStore(cfg config.Config) (*store.Store, error) {
	path, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogLevel, cfg.LogFormat)
}

// newFileLogger logs next to the database, for commands that own the
// terminal.
func newFileLogger(cfg config.Config) (*zap.Logger, error) {
	path, err := resolveDBPath(cfg)
	if err != nil {
		return nil, err
	}
	return logging.NewFile(cfg.LogLevel, cfg.LogFormat, filepath.Join(filepath.Dir(path), "ks2maths.log"))
}

// newEngine builds the question engine. hist may be nil to disable
// cross-batch deduplication.
func newEngine(cfg config.Config, log *zap.Logger, hist problemgen.History) (*problemgen.Engine, error) {
	opts := []problemgen.Option{
		problemgen.WithLogger(log),
		problemgen.WithRand(problemgen.NewRand(cfg.Seed)),
	}
	if hist != nil {
		opts = append(opts, problemgen.WithHistory(hist))
	}
	return curriculum.NewEngine(opts...)
}

// newRewriter returns nil when no LLM provider is configured. events may
// be nil.
func newRewriter(ctx context.Context, cfg config.Config, log *zap.Logger, events store.EventRepo) (*problemgen.Rewriter, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLM, log, events)
	if errors.Is(err, llm.ErrDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return problemgen.NewRewriter(provider), nil
}

// engineTopics returns the catalogue topics that have a registered
// generator.
func engineTopics(e *problemgen.Engine) []curriculum.Topic {
	var out []curriculum.Topic
	for _, t := range curriculum.AllTopics() {
		if _, ok := e.Generator(t.ID); ok {
			out = append(out, t)
		}
	}
	return out
}
