// Package app is the root Bubble Tea model of the practice TUI.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/router"
	"github.com/abhisek/ks2maths/internal/screen"
	"github.com/abhisek/ks2maths/internal/screens/history"
	"github.com/abhisek/ks2maths/internal/screens/practice"
	"github.com/abhisek/ks2maths/internal/screens/results"
	"github.com/abhisek/ks2maths/internal/screens/topics"
	"github.com/abhisek/ks2maths/internal/ui/layout"
)

// Options wires the TUI to its collaborators.
type Options struct {
	Practice practice.Deps
	Topics   []curriculum.Topic
	Logger   *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	// last is the topic and level of the most recent practice run.
	last *topics.SelectedMsg
}

func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Practice.Logger == nil {
		opts.Practice.Logger = opts.Logger
	}
	return AppModel{
		opts:   opts,
		router: router.New(topics.New(opts.Topics)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case topics.SelectedMsg:
		m.last = &msg
		m.opts.Logger.Debug("practice started",
			zap.String("module", msg.Topic.ID), zap.Int("level", msg.Level))
		return m, m.router.Push(practice.New(m.opts.Practice, msg.Topic, msg.Level))

	case topics.HistoryMsg:
		if m.opts.Practice.Sessions == nil {
			return m, nil
		}
		return m, m.router.Push(history.New(m.opts.Practice.Sessions))

	case results.PracticeAgainMsg:
		if m.last == nil {
			return m, m.router.PopToRoot()
		}
		return m, m.router.Replace(practice.New(m.opts.Practice, m.last.Topic, m.last.Level))

	case results.ChangeTopicMsg:
		return m, m.router.PopToRoot()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, status string
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
