package session

import (
	"time"

	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing answer feedback
	PhaseSummary               // All questions answered
)

// AnswerRecord is one answered question.
type AnswerRecord struct {
	Question *problemgen.Question
	Given    string
	Correct  bool
	HintUsed bool
	Elapsed  time.Duration
}

// Session tracks one practice run over a fixed queue of questions.
type Session struct {
	ID        string
	Module    string
	Level     int
	Questions []*problemgen.Question
	Index     int
	Answers   []AnswerRecord
	StartedAt time.Time
	EndedAt   time.Time
	Phase     Phase

	// HintShown is set when the hint for the current question was revealed.
	HintShown bool

	questionStart time.Time
	now           func() time.Time
}
