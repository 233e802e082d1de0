package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/problemgen"
	"github.com/abhisek/ks2maths/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a batch of questions",
	Example: `  ks2maths generate --module M01_Y4_MEAS --level 2 --count 5
  ks2maths generate --module C09_Y6_CALC --level 4 --json`,
	RunE: runGenerate,
}

func init() {
	addBatchFlags(generateCmd, 5)
	generateCmd.Flags().Bool("json", false, "Print questions as JSON")
	generateCmd.Flags().Bool("reword", false, "Retell questions as word problems with the configured LLM")
	generateCmd.Flags().Bool("history", false, "Skip questions served recently and record this batch")
}

// addBatchFlags registers --module, --level and --count.
func addBatchFlags(cmd *cobra.Command, count int) {
	cmd.Flags().StringP("module", "m", "", "Module id, e.g. M06_Y5_MEAS (required)")
	cmd.Flags().IntP("level", "l", 1, "Difficulty level 1-4")
	cmd.Flags().IntP("count", "n", count, "Number of questions")
	_ = cmd.MarkFlagRequired("module")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	module, _ := cmd.Flags().GetString("module")
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	asJSON, _ := cmd.Flags().GetBool("json")
	reword, _ := cmd.Flags().GetBool("reword")
	useHistory, _ := cmd.Flags().GetBool("history")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	var (
		hist   problemgen.History
		events store.EventRepo
	)
	if useHistory || reword {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		events = st.EventRepo()
		if useHistory {
			hist = st.HistoryRepo(cfg.HistoryCooldown)
		}
	}

	engine, err := newEngine(cfg, log, hist)
	if err != nil {
		return err
	}
	qs, err := engine.Generate(ctx, module, level, count)
	var short *problemgen.ShortBatchError
	if errors.As(err, &short) && len(qs) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	} else if err != nil {
		return err
	}

	if reword {
		rw, err := newRewriter(ctx, cfg, log, events)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		if rw == nil {
			return errors.New("--reword needs an LLM provider; set KS2MATHS_LLM_PROVIDER and its API key")
		}
		for i, q := range qs {
			rq, err := rw.Reword(ctx, q)
			if err != nil {
				log.Warn("keeping original question", zap.Int("index", i), zap.Error(err))
				continue
			}
			qs[i] = rq
		}
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(qs)
	}
	printQuestions(cmd.OutOrStdout(), qs)
	return nil
}

func printQuestions(w io.Writer, qs []*problemgen.Question) {
	for i, q := range qs {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Text)
		for j, c := range q.Choices {
			fmt.Fprintf(w, "   %c) %s\n", 'A'+j, c)
		}
		fmt.Fprintf(w, "   Answer: %s\n", q.Answer)
		if q.Hint != "" {
			fmt.Fprintf(w, "   Hint: %s\n", q.Hint)
		}
		fmt.Fprintln(w)
	}
}
