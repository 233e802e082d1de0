package practice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/problemgen"
	"github.com/abhisek/ks2maths/internal/router"
	"github.com/abhisek/ks2maths/internal/screen"
	"github.com/abhisek/ks2maths/internal/screens/results"
	sess "github.com/abhisek/ks2maths/internal/session"
	"github.com/abhisek/ks2maths/internal/store"
)

type fakeGenerator struct {
	questions []*problemgen.Question
	err       error
	calls     int
}

func (f *fakeGenerator) Generate(_ context.Context, module string, level, count int) ([]*problemgen.Question, error) {
	f.calls++
	return f.questions, f.err
}

type fakeSessions struct {
	saved []store.SessionRecord
}

func (f *fakeSessions) Save(_ context.Context, rec store.SessionRecord) error {
	f.saved = append(f.saved, rec)
	return nil
}
func (f *fakeSessions) Get(context.Context, string) (*store.SessionRecord, error) {
	return nil, store.ErrNotFound
}
func (f *fakeSessions) Recent(context.Context, int) ([]store.SessionRecord, error) { return nil, nil }
func (f *fakeSessions) StatsByModule(context.Context) ([]store.ModuleStats, error) { return nil, nil }

type upperRewriter struct{ fail bool }

func (r upperRewriter) Reword(_ context.Context, q *problemgen.Question) (*problemgen.Question, error) {
	if r.fail {
		return nil, errors.New("provider down")
	}
	c := *q
	c.Text = strings.ToUpper(q.Text)
	return &c, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []*problemgen.Question {
	return []*problemgen.Question{
		problemgen.TextInput("Convert 3 km to m.", 3000, "1 km = 1000 m"),
		problemgen.MultipleChoice("Which is more, £2.50 or 200p?", "£2.50", []string{"£2.50", "200p"}, ""),
	}
}

// clock advances by a second per call.
func clock() func() time.Time {
	t := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func testScreen(gen *fakeGenerator, rw Rewriter) (*Screen, *fakeSessions) {
	repo := &fakeSessions{}
	s := New(Deps{Generator: gen, Sessions: repo, Rewriter: rw, Count: 2, Now: clock()},
		curriculum.Topic{ID: "M06_Y4_MEAS", Name: "Converting units"}, 2)
	return s, repo
}

// start delivers the generated batch to the screen.
func start(t *testing.T, s *Screen) {
	t.Helper()
	s.Update(s.load()())
	if s.state == nil {
		t.Fatalf("session did not start: %s", s.errMsg)
	}
}

func TestScreen_Title(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{}, nil)
	if s.Title() != "Converting units" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestScreen_Loading(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{}, nil)
	if !strings.Contains(s.View(80, 24), "Preparing questions") {
		t.Error("expected loading view")
	}
	if s.Status() != "" {
		t.Errorf("Status = %q before start", s.Status())
	}
}

func TestScreen_GenerateError(t *testing.T) {
	gen := &fakeGenerator{err: &problemgen.UnknownModuleError{Module: "M06_Y4_MEAS"}}
	s, _ := testScreen(gen, nil)
	s.Update(s.load()())

	if s.state != nil {
		t.Fatal("expected no session")
	}
	if !strings.Contains(s.View(80, 24), "Could not start practice") {
		t.Error("expected error view")
	}
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected pop on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("got %T, want PopScreenMsg", cmd())
	}
}

func TestScreen_ShortBatchStillStarts(t *testing.T) {
	gen := &fakeGenerator{
		questions: testQuestions()[:1],
		err:       &problemgen.ShortBatchError{Module: "M06_Y4_MEAS", Level: 2, Want: 2, Got: 1},
	}
	s, _ := testScreen(gen, nil)
	start(t, s)
	if len(s.state.Questions) != 1 {
		t.Errorf("questions = %d, want 1", len(s.state.Questions))
	}
}

func TestScreen_TextAnswer(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{questions: testQuestions()}, nil)
	start(t, s)

	if s.mcActive {
		t.Fatal("first question should use text input")
	}
	s.input.Model.SetValue("3,000")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*Screen)

	if ps.state.Phase != sess.PhaseFeedback {
		t.Fatal("expected feedback after submit")
	}
	if !ps.lastCorrect {
		t.Error("expected 3,000 to be accepted")
	}
	if !strings.Contains(ps.View(80, 24), "Correct!") {
		t.Error("expected correct feedback in view")
	}
}

func TestScreen_EmptyEnterIgnored(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{questions: testQuestions()}, nil)
	start(t, s)

	s.Update(specialKey(tea.KeyEnter))
	if s.state.Phase != sess.PhaseActive {
		t.Error("empty answer should not be submitted")
	}
}

func TestScreen_WrongAnswerShowsAnswer(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{questions: testQuestions()}, nil)
	start(t, s)

	s.input.Model.SetValue("300")
	s.Update(specialKey(tea.KeyEnter))

	if s.lastCorrect {
		t.Fatal("300 should be wrong")
	}
	if !strings.Contains(s.View(80, 24), "The answer is 3000") {
		t.Error("expected the correct answer in feedback")
	}
}

func TestScreen_Hint(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{questions: testQuestions()}, nil)
	start(t, s)

	s.Update(specialKey(tea.KeyTab))
	if s.hint != "1 km = 1000 m" {
		t.Errorf("hint = %q", s.hint)
	}
	if !s.state.HintShown {
		t.Error("expected the session to record the hint")
	}
}

func TestScreen_FullRun(t *testing.T) {
	s, repo := testScreen(&fakeGenerator{questions: testQuestions()}, nil)
	start(t, s)

	s.input.Model.SetValue("3000")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress(' '))

	if !s.mcActive {
		t.Fatal("second question should be multiple choice")
	}
	if got := s.Status(); !strings.Contains(got, "Q 2/2") || !strings.Contains(got, "✓ 1") {
		t.Errorf("Status = %q", got)
	}

	// B is 200p, the wrong option.
	s.Update(keyPress('b'))
	if s.state.Phase != sess.PhaseFeedback || s.lastCorrect {
		t.Fatal("expected incorrect feedback for B")
	}

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected finish command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*results.Screen); !ok {
		t.Errorf("replacement is %T, want *results.Screen", msg.Screen)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(repo.saved))
	}
	rec := repo.saved[0]
	if rec.Module != "M06_Y4_MEAS" || rec.Level != 2 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Correct != 1 || rec.Incorrect != 1 || rec.TotalQuestions != 2 {
		t.Errorf("score = %d/%d of %d", rec.Correct, rec.Incorrect, rec.TotalQuestions)
	}
	if rec.TimeSpent <= 0 {
		t.Errorf("TimeSpent = %d, want positive", rec.TimeSpent)
	}
}

func TestScreen_QuitConfirm(t *testing.T) {
	s, repo := testScreen(&fakeGenerator{questions: testQuestions()}, nil)
	start(t, s)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Fatal("expected confirmation dismissed")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("got %T, want PopScreenMsg", cmd())
	}
	if len(repo.saved) != 0 {
		t.Error("abandoned session should not be saved")
	}
}

func TestScreen_Rewriter(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{questions: testQuestions()}, upperRewriter{})
	start(t, s)
	if got := s.state.Current().Text; got != "CONVERT 3 KM TO M." {
		t.Errorf("Text = %q, want reworded", got)
	}

	s, _ = testScreen(&fakeGenerator{questions: testQuestions()}, upperRewriter{fail: true})
	start(t, s)
	if got := s.state.Current().Text; got != "Convert 3 km to m." {
		t.Errorf("Text = %q, want original on failure", got)
	}
}

func TestScreen_KeyHints(t *testing.T) {
	s, _ := testScreen(&fakeGenerator{questions: testQuestions()}, nil)
	if len(s.KeyHints()) == 0 {
		t.Error("expected hints while loading")
	}
	start(t, s)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints = %d, want 3", len(s.KeyHints()))
	}
}
