// Package topics is the topic and level picker shown when the TUI starts.
package topics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/screen"
	"github.com/abhisek/ks2maths/internal/ui/components"
	"github.com/abhisek/ks2maths/internal/ui/layout"
	"github.com/abhisek/ks2maths/internal/ui/theme"
)

// SelectedMsg is emitted when the learner starts a topic.
type SelectedMsg struct {
	Topic curriculum.Topic
	Level int
}

// HistoryMsg asks for the session history screen.
type HistoryMsg struct{}

// Screen lists topics grouped by school year.
type Screen struct {
	topics []curriculum.Topic
	menu   components.Menu
	level  int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates the picker over ts, which should be ordered by year.
func New(ts []curriculum.Topic) *Screen {
	s := &Screen{topics: ts, level: params.MinLevel}
	var items []components.MenuItem
	year := 0
	for _, t := range ts {
		if t.Year != year {
			year = t.Year
			items = append(items, components.MenuItem{Label: t.YearLabel(), Header: true})
		}
		items = append(items, components.MenuItem{
			Label:  t.Name,
			Detail: t.Description,
			Action: s.start(t),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) start(t curriculum.Topic) func() tea.Cmd {
	return func() tea.Cmd {
		level := s.level
		return func() tea.Msg { return SelectedMsg{Topic: t, Level: level} }
	}
}

// Level returns the selected difficulty.
func (s *Screen) Level() int { return s.level }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Choose a topic" }

func (s *Screen) Status() string { return fmt.Sprintf("Level %d  ", s.level) }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "←→/1-4", Description: "Level"},
		{Key: "Enter", Description: "Start"},
		{Key: "R", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch key := kmsg.String(); key {
		case "left", "h", "-":
			s.level = max(s.level-1, params.MinLevel)
			return s, nil
		case "right", "l", "+":
			s.level = min(s.level+1, params.MaxLevel)
			return s, nil
		case "1", "2", "3", "4":
			s.level = int(key[0] - '0')
			return s, nil
		case "r", "R":
			return s, func() tea.Msg { return HistoryMsg{} }
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	if len(s.topics) == 0 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Render("\n\nNo topics available.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.levelSelector(width))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if item, ok := s.menu.Current(); ok && item.Detail != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width-4).PaddingLeft(4).
			Foreground(theme.TextDim).Italic(true).Render(item.Detail))
	}
	return b.String()
}

func (s *Screen) levelSelector(width int) string {
	var parts []string
	for l := params.MinLevel; l <= params.MaxLevel; l++ {
		label := fmt.Sprintf(" %d ", l)
		if l == s.level {
			parts = append(parts, theme.ButtonActive.Render(label))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(label))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Level ")+strings.Join(parts, " "))
}
