// Package results is the screen shown at the end of a practice run.
package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ks2maths/internal/screen"
	"github.com/abhisek/ks2maths/internal/session"
	"github.com/abhisek/ks2maths/internal/ui/components"
	"github.com/abhisek/ks2maths/internal/ui/layout"
	"github.com/abhisek/ks2maths/internal/ui/theme"
)

// PracticeAgainMsg asks the host to restart the same topic and level.
type PracticeAgainMsg struct{}

// ChangeTopicMsg asks the host to go back to the topic picker.
type ChangeTopicMsg struct{}

// Screen renders a session.Summary.
type Screen struct {
	summary session.Summary
	topic   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a results screen. topic is shown under the title and may be
// empty.
func New(summary session.Summary, topic string) *Screen {
	return &Screen{summary: summary, topic: topic}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Results" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "P/Enter", Description: "Practise again"},
		{Key: "T/Esc", Description: "Change topic"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "p", "P", "enter":
		return s, func() tea.Msg { return PracticeAgainMsg{} }
	case "t", "T", "esc":
		return s, func() tea.Msg { return ChangeTopicMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sum := s.summary
	pct := sum.Percentage()
	band := session.Performance(pct)
	center := func(str string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, str) }

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Title.Render("Practice Complete!")))
	b.WriteString("\n")
	if s.topic != "" {
		b.WriteString(center(theme.Subtitle.Render(s.topic)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(bandColor(band.Level)).Bold(true).
		Render(band.Icon + "  " + band.Title)))
	b.WriteString("\n")
	b.WriteString(center(theme.Subtitle.Render(band.Message)))
	b.WriteString("\n\n")

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Score", fmt.Sprintf("%d/%d", sum.Score.Correct, sum.TotalQuestions)),
		stat("Accuracy", fmt.Sprintf("%d%%", pct)),
		stat("Time", session.FormatTimeSpent(sum.TimeSpent)),
	)
	b.WriteString(center(stats))
	b.WriteString("\n\n")

	details := fmt.Sprintf("%s  %s  %s",
		theme.Correct.Render(fmt.Sprintf("✓ Correct: %d", sum.Score.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("✗ Incorrect: %d", sum.Score.Incorrect)),
		theme.Body.Render(fmt.Sprintf("Completed: %d", sum.TotalQuestions)),
	)
	b.WriteString(center(details))
	b.WriteString("\n\n")

	b.WriteString(center(components.NewButton("Practise again", "P", true).View() + "   " +
		components.NewButton("Change topic", "T", false).View()))
	return b.String()
}

func stat(label, value string) string {
	return theme.Card.Width(18).Align(lipgloss.Center).Render(
		theme.Body.Bold(true).Render(value) + "\n" + theme.Subtitle.Render(label))
}

func bandColor(l session.BandLevel) color.Color {
	switch l {
	case session.BandExcellent:
		return theme.Accent
	case session.BandGood:
		return theme.Success
	case session.BandOkay:
		return theme.Secondary
	default:
		return theme.Primary
	}
}
