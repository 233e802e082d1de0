package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ks2maths/internal/problemgen"
	"github.com/abhisek/ks2maths/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer a few questions in the terminal (no database)",
	Long: `Generate and interactively answer questions for one module.

This is a stateless developer tool: nothing is saved. Type "hint" to see the
hint for the current question.`,
	RunE: runPreview,
}

func init() {
	addBatchFlags(previewCmd, 5)
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	module, _ := cmd.Flags().GetString("module")
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
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
	qs, err := engine.Generate(ctx, module, level, count)
	if len(qs) == 0 {
		return err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	s, err := session.New(module, level, qs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprintf(out, "%s level %d: %d questions\n\n", module, level, len(qs))

	for q := s.Current(); q != nil; q = s.Current() {
		fmt.Fprintf(out, "── Question %d/%d ──\n", s.Index+1, len(qs))
		fmt.Fprintln(out, q.Text)
		if q.Format == problemgen.FormatMultipleChoice {
			for j, c := range q.Choices {
				fmt.Fprintf(out, "  %d) %s\n", j+1, c)
			}
		}

		answer, ok := readAnswer(out, scanner, s)
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		correct, _ := s.Answer(answer)
		if correct {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		fmt.Fprintln(out)
		s.Next()
	}

	sum := s.Summary()
	band := session.Performance(sum.Percentage())
	fmt.Fprintf(out, "── %s %d/%d correct (%d%%) in %s ──\n",
		band.Title, sum.Score.Correct, sum.TotalQuestions, sum.Percentage(),
		session.FormatTimeSpent(sum.TimeSpent))
	return nil
}

// readAnswer prompts until a non-hint line is entered.
func readAnswer(out io.Writer, scanner *bufio.Scanner, s *session.Session) (string, bool) {
	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			return "", false
		}
		answer := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(answer, "hint") {
			if h := s.ShowHint(); h != "" {
				fmt.Fprintf(out, "Hint: %s\n", h)
			} else {
				fmt.Fprintln(out, "No hint for this one.")
			}
			continue
		}
		return answer, true
	}
}
