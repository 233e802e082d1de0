package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/ks2maths/internal/problemgen"
)

// DefaultQuestionsPerSession is the length of a practice run.
const DefaultQuestionsPerSession = 10

// ErrFinished is returned when answering after the last question.
var ErrFinished = errors.New("session finished")

// Option configures a Session.
type Option func(*Session)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session over questions.
func New(module string, level int, questions []*problemgen.Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, problemgen.ErrNoQuestions
	}
	s := &Session{
		ID:        uuid.NewString(),
		Module:    module,
		Level:     level,
		Questions: questions,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.StartedAt = s.now()
	s.questionStart = s.StartedAt
	return s, nil
}

// Current returns the question awaiting an answer, or nil when finished.
func (s *Session) Current() *problemgen.Question {
	if s.Index >= len(s.Questions) {
		return nil
	}
	return s.Questions[s.Index]
}

// ShowHint marks the current question's hint as revealed and returns it.
func (s *Session) ShowHint() string {
	q := s.Current()
	if q == nil {
		return ""
	}
	s.HintShown = true
	return q.Hint
}

// Answer grades input against the current question and moves to the
// feedback phase.
func (s *Session) Answer(input string) (bool, error) {
	q := s.Current()
	if q == nil || s.Phase != PhaseActive {
		return false, ErrFinished
	}
	now := s.now()
	correct := problemgen.CheckAnswer(input, q)
	s.Answers = append(s.Answers, AnswerRecord{
		Question: q,
		Given:    input,
		Correct:  correct,
		HintUsed: s.HintShown,
		Elapsed:  now.Sub(s.questionStart),
	})
	s.Phase = PhaseFeedback
	return correct, nil
}

// Next leaves the feedback phase. It reports false once every question has
// been answered, and the session is then in the summary phase.
func (s *Session) Next() bool {
	if s.Phase == PhaseSummary {
		return false
	}
	s.Index++
	s.HintShown = false
	s.questionStart = s.now()
	if s.Index >= len(s.Questions) {
		s.Phase = PhaseSummary
		s.EndedAt = s.questionStart
		return false
	}
	s.Phase = PhaseActive
	return true
}

// Done reports whether the session has ended.
func (s *Session) Done() bool { return s.Phase == PhaseSummary }

// Summary returns the results so far.
func (s *Session) Summary() Summary {
	var sum Summary
	for _, a := range s.Answers {
		if a.Correct {
			sum.Score.Correct++
		} else {
			sum.Score.Incorrect++
		}
	}
	sum.TotalQuestions = len(s.Answers)
	end := s.EndedAt
	if end.IsZero() {
		end = s.now()
	}
	sum.TimeSpent = int(end.Sub(s.StartedAt) / time.Second)
	return sum
}
