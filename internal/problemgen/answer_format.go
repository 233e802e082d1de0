package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Multiple choice questions carry between minChoices and maxChoices options.
const (
	minChoices = 2
	maxChoices = 4
)

// AnswerFormatValidator checks that Answer is written canonically for its
// AnswerType and that the options agree with the question's Format.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(q *Question) *ValidationError {
	for _, rule := range []func(*Question) string{canonicalAnswer, choicesMatchFormat} {
		if msg := rule(q); msg != "" {
			return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
		}
	}
	return nil
}

// canonicalAnswer requires integers without leading zeros and decimals in
// their shortest form, so "3.50" and "042" are rejected.
func canonicalAnswer(q *Question) string {
	switch q.AnswerType {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(q.Answer, 10, 64)
		if err != nil || strconv.FormatInt(n, 10) != q.Answer {
			return fmt.Sprintf("answer %q is not a canonical integer", q.Answer)
		}
	case AnswerTypeDecimal:
		f, err := strconv.ParseFloat(q.Answer, 64)
		if err != nil {
			return fmt.Sprintf("answer %q is not a decimal", q.Answer)
		}
		if want := strconv.FormatFloat(f, 'f', -1, 64); want != q.Answer {
			return fmt.Sprintf("answer %q should be written %q", q.Answer, want)
		}
	}
	return ""
}

func choicesMatchFormat(q *Question) string {
	if q.Format != FormatMultipleChoice {
		if len(q.Choices) > 0 {
			return "text_input format must have no options"
		}
		return ""
	}
	if n := len(q.Choices); n < minChoices || n > maxChoices {
		return fmt.Sprintf("multiple choice needs %d to %d options, got %d", minChoices, maxChoices, n)
	}
	seen := make(map[string]bool, len(q.Choices))
	for i, c := range q.Choices {
		key := strings.ToLower(strings.TrimSpace(c))
		switch {
		case key == "":
			return fmt.Sprintf("option %d is empty", i+1)
		case seen[key]:
			return fmt.Sprintf("duplicate option %q", c)
		}
		seen[key] = true
	}
	if !seen[strings.ToLower(strings.TrimSpace(q.Answer))] {
		return fmt.Sprintf("answer %q is not one of the options", q.Answer)
	}
	return ""
}
