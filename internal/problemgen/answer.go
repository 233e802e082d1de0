package problemgen

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// DefaultAbsTolerance is the absolute tolerance for numeric answers when the
// question carries no percentage tolerance.
const DefaultAbsTolerance = 0.01

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed and removed, comparison is case-insensitive
// - For multiple choice with text options: the 1-based option index is accepted
// - Thousands separators, a leading £ and a trailing unit are ignored for
//   numeric comparison (e.g. "3,000 m" matches "3000")
// - Numeric answers match within TolerancePercent of the answer, or within
//   0.01 when the question has no tolerance
func CheckAnswer(learnerAnswer string, question *Question) bool {
	learner := normalize(learnerAnswer)
	if learner == "" {
		return false
	}
	correct := normalize(question.Answer)

	if question.Format == FormatMultipleChoice && question.AnswerType == AnswerTypeText {
		if idx, err := strconv.Atoi(learner); err == nil && idx >= 1 && idx <= len(question.Choices) {
			return normalize(question.Choices[idx-1]) == correct
		}
	}

	if learner == correct {
		return true
	}

	if question.AnswerType == AnswerTypeText {
		return false
	}
	got, ok := parseNumeric(learner)
	if !ok {
		return false
	}
	want, ok := parseNumeric(correct)
	if !ok {
		return false
	}
	return withinTolerance(got, want, question.TolerancePercent)
}

// normalize trims, lowercases and removes all whitespace.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, strings.TrimSpace(s))
}

// parseNumeric parses a normalized answer, ignoring thousands separators,
// a leading pound sign and any trailing unit.
func parseNumeric(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "£")
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func withinTolerance(got, want, tolerancePercent float64) bool {
	diff := math.Abs(got - want)
	if tolerancePercent > 0 {
		return diff <= math.Abs(want)*tolerancePercent/100+1e-9
	}
	return diff <= DefaultAbsTolerance+1e-9
}
