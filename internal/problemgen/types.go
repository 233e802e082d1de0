package problemgen

import "github.com/abhisek/ks2maths/internal/params"

// Question represents a generated practice question ready for display.
type Question struct {
	// ID uniquely identifies this question instance. Assigned by the Engine.
	ID string `json:"id,omitempty"`

	// Text is the prompt displayed to the learner, with operands and units
	// already substituted, e.g. "Convert 3 kilometres to metres."
	Text string `json:"text"`

	// Format indicates how the learner answers this question.
	Format AnswerFormat `json:"type"`

	// Answer is the canonical correct answer as a string.
	// For text input: a plain number without units, e.g. "3000" or "2.5".
	// For multiple choice: the text of the correct option.
	Answer string `json:"answer"`

	// AnswerType describes the representation of Answer for validation and
	// grading.
	AnswerType AnswerType `json:"answer_type"`

	// Choices is populated only when Format is FormatMultipleChoice.
	Choices []string `json:"options,omitempty"`

	// Hint is an optional short hint the learner can request.
	Hint string `json:"hint,omitempty"`

	// Module is the topic id the question was generated for.
	Module string `json:"module"`

	// Operation is the operation tag that produced the question.
	Operation string `json:"operation"`

	// Level is the difficulty level (1-4).
	Level int `json:"level"`

	// TolerancePercent is the relative tolerance the grader applies to
	// numeric answers. Zero means exact (within rounding).
	TolerancePercent float64 `json:"tolerance_percent,omitempty"`
}

// AnswerType describes the representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger AnswerType = "integer" // e.g. "623", "-15"
	AnswerTypeDecimal AnswerType = "decimal" // e.g. "3.75", "0.5"
	AnswerTypeText    AnswerType = "text"    // e.g. "£2.50", ">", "Tom"
)

// AnswerFormat describes how the learner provides their answer.
type AnswerFormat string

const (
	// FormatTextInput means the learner types the answer.
	FormatTextInput AnswerFormat = "text_input"

	// FormatMultipleChoice means the learner picks from the options.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// Generator produces questions for one topic module.
// Implementations must be pure apart from the supplied random source.
type Generator interface {
	// Module returns the topic id, e.g. "M05_Y5_MEAS".
	Module() string

	// Operations returns the operation tags this generator implements, sorted.
	Operations() []string

	// Generate produces a single question for the level's parameters.
	Generate(p params.Level, level int, rng *Rand) (*Question, error)
}

// TextInput builds a typed-answer question with a numeric answer.
func TextInput(text string, answer float64, hint string) *Question {
	return &Question{
		Text:       text,
		Format:     FormatTextInput,
		Answer:     FormatNumber(answer),
		AnswerType: NumericType(answer),
		Hint:       hint,
	}
}

// MultipleChoice builds a select-one question. The answer type is numeric
// when every option is a plain number.
func MultipleChoice(text, answer string, options []string, hint string) *Question {
	at := AnswerTypeText
	if allNumeric(options) {
		at = AnswerTypeInteger
		for _, o := range options {
			if NumericTypeOf(o) == AnswerTypeDecimal {
				at = AnswerTypeDecimal
				break
			}
		}
	}
	return &Question{
		Text:       text,
		Format:     FormatMultipleChoice,
		Answer:     answer,
		AnswerType: at,
		Choices:    options,
		Hint:       hint,
	}
}
