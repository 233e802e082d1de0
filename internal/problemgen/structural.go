package problemgen

import "unicode/utf8"

// MaxTextLength bounds the display text of a question, in characters.
const MaxTextLength = 500

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}
	if q.Text == "" {
		return fail("text is empty")
	}
	if utf8.RuneCountInString(q.Text) > MaxTextLength {
		return fail("text exceeds 500 characters")
	}
	if q.Answer == "" {
		return fail("answer is empty")
	}
	if q.Format != FormatTextInput && q.Format != FormatMultipleChoice {
		return fail("type must be \"text_input\" or \"multiple_choice\"")
	}
	if q.AnswerType != AnswerTypeInteger && q.AnswerType != AnswerTypeDecimal && q.AnswerType != AnswerTypeText {
		return fail("answer_type must be \"integer\", \"decimal\", or \"text\"")
	}
	if q.AnswerType == AnswerTypeText && q.Format != FormatMultipleChoice {
		return fail("answer_type \"text\" must use \"multiple_choice\" format")
	}
	if q.Module == "" {
		return &ValidationError{Validator: v.Name(), Message: "module is empty"}
	}
	if q.Level < 1 || q.Level > 4 {
		return &ValidationError{Validator: v.Name(), Message: "level must be between 1 and 4"}
	}
	if q.TolerancePercent < 0 {
		return &ValidationError{Validator: v.Name(), Message: "tolerance_percent must not be negative"}
	}
	return nil
}
