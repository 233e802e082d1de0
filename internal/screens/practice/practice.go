// Package practice runs one practice session in the TUI.
package practice

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/problemgen"
	"github.com/abhisek/ks2maths/internal/router"
	"github.com/abhisek/ks2maths/internal/screen"
	"github.com/abhisek/ks2maths/internal/screens/results"
	sess "github.com/abhisek/ks2maths/internal/session"
	"github.com/abhisek/ks2maths/internal/store"
	"github.com/abhisek/ks2maths/internal/ui/components"
	"github.com/abhisek/ks2maths/internal/ui/layout"
)

// Generator produces a batch of questions.
type Generator interface {
	Generate(ctx context.Context, module string, level, count int) ([]*problemgen.Question, error)
}

// Rewriter rewords a question. A failed rewording keeps the original.
type Rewriter interface {
	Reword(ctx context.Context, q *problemgen.Question) (*problemgen.Question, error)
}

// Deps are the collaborators of a practice screen. Sessions and Rewriter
// may be nil.
type Deps struct {
	Generator Generator
	Sessions  store.SessionRepo
	Rewriter  Rewriter
	Logger    *zap.Logger
	Count     int
	Now       func() time.Time
}

// Screen asks the questions of one session.
type Screen struct {
	deps  Deps
	topic curriculum.Topic
	level int

	state       *sess.Session
	input       components.TextInput
	mc          components.MultiChoice
	mcActive    bool
	hint        string
	lastCorrect bool
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates a practice screen for topic at level.
func New(deps Deps, topic curriculum.Topic, level int) *Screen {
	if deps.Count <= 0 {
		deps.Count = sess.DefaultQuestionsPerSession
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Screen{
		deps:  deps,
		topic: topic,
		level: level,
		input: newInput(),
	}
}

func newInput() components.TextInput {
	return components.NewTextInput("Type your answer...", true, 20)
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.load(), s.input.Init())
}

func (s *Screen) Title() string { return s.topic.Name }

func (s *Screen) Status() string {
	if s.state == nil {
		return ""
	}
	sum := s.state.Summary()
	return sessionStatus(s.state.Index, len(s.state.Questions), sum.Score.Correct, s.level)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.state == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End practice"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Phase == sess.PhaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.mcActive:
		return []layout.KeyHint{
			{Key: "↑↓/A-D", Description: "Choose"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

// load generates the batch, rewording each question when a Rewriter is
// set.
func (s *Screen) load() tea.Cmd {
	deps, module, level := s.deps, s.topic.ID, s.level
	return func() tea.Msg {
		ctx := context.Background()
		qs, err := deps.Generator.Generate(ctx, module, level, deps.Count)
		var short *problemgen.ShortBatchError
		if errors.As(err, &short) && len(qs) > 0 {
			deps.Logger.Warn("practice with a short batch",
				zap.String("module", module), zap.Int("got", short.Got), zap.Int("want", short.Want))
			err = nil
		}
		if err != nil {
			return batchMsg{err: err}
		}
		if deps.Rewriter != nil {
			for i, q := range qs {
				rq, rerr := deps.Rewriter.Reword(ctx, q)
				if rerr != nil {
					deps.Logger.Debug("keeping original question", zap.String("module", module), zap.Error(rerr))
					continue
				}
				qs[i] = rq
			}
		}
		return batchMsg{questions: qs}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchMsg:
		return s.handleBatch(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingText() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleBatch(msg batchMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		s.errMsg = msg.err.Error()
		return s, nil
	}
	state, err := sess.New(s.topic.ID, s.level, msg.questions, sess.WithClock(s.deps.Now))
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.state = state
	return s, s.prepareQuestion()
}

// prepareQuestion resets the answer widgets for the current question.
func (s *Screen) prepareQuestion() tea.Cmd {
	q := s.state.Current()
	s.hint = ""
	s.mcActive = q != nil && q.Format == problemgen.FormatMultipleChoice
	if s.mcActive {
		s.mc = components.NewMultiChoice(q.Choices, q.Answer)
		return nil
	}
	s.input = newInput()
	return s.input.Init()
}

func (s *Screen) acceptingText() bool {
	return s.state != nil && s.state.Phase == sess.PhaseActive && !s.confirmQuit && !s.mcActive
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.state == nil {
		if key == "esc" {
			return s, popScreen
		}
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, popScreen
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.state.Phase == sess.PhaseFeedback {
		if s.state.Next() {
			return s, s.prepareQuestion()
		}
		return s, s.finish()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "tab":
		s.hint = s.state.ShowHint()
		if s.hint == "" {
			s.hint = "No hint for this one."
		}
		return s, nil
	}

	if s.mcActive {
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			s.submit(s.mc.Chosen())
		}
		return s, nil
	}

	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		s.submit(s.input.Value())
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submit(answer string) {
	correct, err := s.state.Answer(answer)
	if err != nil {
		return
	}
	s.lastCorrect = correct
	if !s.mcActive {
		s.input.Submit(correct)
	}
}

// finish records the session and replaces this screen with the results.
func (s *Screen) finish() tea.Cmd {
	summary := s.state.Summary()
	rec := store.SessionRecord{
		ID:             s.state.ID,
		Module:         s.state.Module,
		Level:          s.state.Level,
		Correct:        summary.Score.Correct,
		Incorrect:      summary.Score.Incorrect,
		TotalQuestions: summary.TotalQuestions,
		TimeSpent:      summary.TimeSpent,
		StartedAt:      s.state.StartedAt,
		EndedAt:        s.state.EndedAt,
	}
	repo, log, topic := s.deps.Sessions, s.deps.Logger, s.topic.Name
	return func() tea.Msg {
		if repo != nil {
			if err := repo.Save(context.Background(), rec); err != nil {
				log.Warn("save session", zap.String("session", rec.ID), zap.Error(err))
			}
		}
		log.Info("practice finished",
			zap.String("module", rec.Module),
			zap.Int("level", rec.Level),
			zap.Int("correct", rec.Correct),
			zap.Int("total", rec.TotalQuestions),
			zap.Int("time_spent", rec.TimeSpent),
		)
		return router.ReplaceScreenMsg{Screen: results.New(summary, topic)}
	}
}

func popScreen() tea.Msg { return router.PopScreenMsg{} }
