package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished practice sessions and per-topic totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.SessionRepo()
		recs, err := repo.Recent(ctx, limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No practice sessions yet.")
			return nil
		}

		fmt.Fprintln(out, "Recent Sessions")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		fmt.Fprintf(out, "%-16s  %-12s  %5s  %7s  %5s  %s\n", "Date", "Module", "Level", "Score", "%", "Time")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range recs {
			sum := session.Summary{
				Score:          session.Score{Correct: r.Correct, Incorrect: r.Incorrect},
				TotalQuestions: r.TotalQuestions,
				TimeSpent:      r.TimeSpent,
			}
			fmt.Fprintf(out, "%-16s  %-12s  %5d  %7s  %4d%%  %s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04"),
				r.Module, r.Level,
				fmt.Sprintf("%d/%d", r.Correct, r.TotalQuestions),
				sum.Percentage(),
				session.FormatTimeSpent(r.TimeSpent))
		}

		stats, err := repo.StatsByModule(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "By Topic")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		fmt.Fprintf(out, "%-28s  %8s  %9s  %8s  %s\n", "Topic", "Sessions", "Questions", "Accuracy", "Last played")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, m := range stats {
			name := m.Module
			if t, err := curriculum.GetTopic(m.Module); err == nil {
				name = t.Name
			}
			fmt.Fprintf(out, "%-28s  %8d  %9d  %7.0f%%  %s\n",
				truncate(name, 28), m.Sessions, m.TotalQuestions, m.Accuracy()*100,
				m.LastPlayed.Local().Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
