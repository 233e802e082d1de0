package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ks2maths/internal/app"
	"github.com/abhisek/ks2maths/internal/screens/practice"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the practice TUI",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newFileLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	engine, err := newEngine(cfg, log, st.HistoryRepo(cfg.HistoryCooldown))
	if err != nil {
		return err
	}

	deps := practice.Deps{
		Generator: engine,
		Sessions:  st.SessionRepo(),
		Logger:    log,
		Count:     cfg.QuestionsPerSession,
	}
	rw, err := newRewriter(ctx, cfg, log, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	if rw != nil {
		deps.Rewriter = rw
	}

	return app.Run(app.Options{
		Practice: deps,
		Topics:   engineTopics(engine),
		Logger:   log,
	})
}
