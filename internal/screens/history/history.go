// Package history lists finished practice sessions in the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/router"
	"github.com/abhisek/ks2maths/internal/screen"
	"github.com/abhisek/ks2maths/internal/session"
	"github.com/abhisek/ks2maths/internal/store"
	"github.com/abhisek/ks2maths/internal/ui/layout"
	"github.com/abhisek/ks2maths/internal/ui/theme"
)

// recentLimit caps the sessions loaded.
const recentLimit = 50

type historyLoadedMsg struct {
	sessions []store.SessionRecord
	stats    map[string]store.ModuleStats
	err      error
}

// Screen shows recent sessions, newest first. Enter expands a row with the
// totals for its topic.
type Screen struct {
	repo     store.SessionRepo
	sessions []store.SessionRecord
	stats    map[string]store.ModuleStats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a history screen reading from repo.
func New(repo store.SessionRepo) *Screen {
	return &Screen{repo: repo, expanded: make(map[int]bool)}
}

func (s *Screen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		ctx := context.Background()
		recs, err := repo.Recent(ctx, recentLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		stats, err := repo.StatsByModule(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		byModule := make(map[string]store.ModuleStats, len(stats))
		for _, m := range stats {
			byModule[m.Module] = m
		}
		return historyLoadedMsg{sessions: recs, stats: byModule}
	}
}

func (s *Screen) Title() string { return "History" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Topic totals"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.sessions = msg.sessions
			s.stats = msg.stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}
	switch {
	case s.errMsg != "":
		return center(theme.Incorrect, "\n\nError: "+s.errMsg)
	case !s.loaded:
		return center(theme.Subtitle, "\n\nLoading history...")
	case len(s.sessions) == 0:
		return center(theme.Hint, "\n\nNo sessions yet. Start practising!")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, rec := range s.sessions {
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+sessionLine(rec))))
		b.WriteString("\n")

		if s.expanded[i] {
			if m, ok := s.stats[rec.Module]; ok {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Hint.Render(statsLine(m))))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func topicName(module string) string {
	if t, err := curriculum.GetTopic(module); err == nil {
		return t.Name
	}
	return module
}

func sessionLine(rec store.SessionRecord) string {
	sum := session.Summary{
		Score:          session.Score{Correct: rec.Correct, Incorrect: rec.Incorrect},
		TotalQuestions: rec.TotalQuestions,
		TimeSpent:      rec.TimeSpent,
	}
	return fmt.Sprintf("%s  %-24s L%d  %d/%d  %3d%%  %s",
		rec.StartedAt.Local().Format("Jan 02 15:04"),
		topicName(rec.Module), rec.Level,
		rec.Correct, rec.TotalQuestions, sum.Percentage(),
		session.FormatTimeSpent(rec.TimeSpent))
}

func statsLine(m store.ModuleStats) string {
	return fmt.Sprintf("    %d sessions, %d questions, %.0f%% overall, %s practised",
		m.Sessions, m.TotalQuestions, m.Accuracy()*100, session.FormatTimeSpent(m.TimeSpent))
}
