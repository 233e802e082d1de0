package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/ks2maths/internal/session"
	"github.com/abhisek/ks2maths/internal/ui/components"
	"github.com/abhisek/ks2maths/internal/ui/theme"
)

func sessionStatus(index, total, correct, level int) string {
	n := min(index+1, total)
	return fmt.Sprintf("L%d  Q %d/%d  ✓ %d  ", level, n, total, correct)
}

func (s *Screen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return centered(width, theme.Incorrect.Render("Could not start practice")+"\n\n"+
			theme.Subtitle.Render(s.errMsg)+"\n\n"+theme.Subtitle.Render("Press Esc to go back."))
	case s.state == nil:
		return centered(width, theme.Subtitle.Render("Preparing questions..."))
	case s.confirmQuit:
		return centered(width, theme.Body.Bold(true).Render("End this practice?")+"\n\n"+
			theme.Subtitle.Render("Your answers so far will not be saved."))
	}
	return s.renderQuestion(width)
}

func centered(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render("\n\n" + content)
}

func (s *Screen) renderQuestion(width int) string {
	q := s.state.Current()
	if q == nil {
		return centered(width, theme.Subtitle.Render("All done!"))
	}

	var b strings.Builder
	total := len(s.state.Questions)
	results := make([]bool, len(s.state.Answers))
	for i, a := range s.state.Answers {
		results[i] = a.Correct
	}
	bar := components.NewQuestionTrack(
		fmt.Sprintf("Question %d of %d", s.state.Index+1, total),
		results, total, min(width-4, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	textWidth := min(width-8, 70)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Bold(true).Width(textWidth).Render(q.Text)))
	b.WriteString("\n\n")

	var answer string
	if s.mcActive {
		answer = s.mc.View()
	} else {
		answer = s.input.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(textWidth).Render(answer)))
	b.WriteString("\n")

	if s.hint != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Width(textWidth).Render("Hint: "+s.hint)))
		b.WriteString("\n")
	}

	if s.state.Phase == sess.PhaseFeedback {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.feedback(textWidth)))
	}
	return b.String()
}

func (s *Screen) feedback(width int) string {
	if s.lastCorrect {
		return theme.Correct.Width(width).Render("✓ Correct! Well done.")
	}
	q := s.state.Current()
	return theme.Incorrect.Width(width).Render("✗ Not quite. The answer is " + q.Answer + ".")
}
