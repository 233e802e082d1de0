package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		engine, err := newEngine(cfg, log, nil)
		if err != nil {
			return err
		}

		log.Info("starting server", zap.String("addr", cfg.Addr), zap.Strings("modules", engine.Modules()))
		return server.New(engine, engineTopics(engine), log).Run(cmd.Context(), cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides KS2MATHS_ADDR)")
}
