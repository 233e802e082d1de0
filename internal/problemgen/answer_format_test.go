package problemgen

import "testing"

func TestAnswerFormat_Numeric(t *testing.T) {
	tests := []struct {
		answer string
		typ    AnswerType
		ok     bool
	}{
		{"42", AnswerTypeInteger, true},
		{"-15", AnswerTypeInteger, true},
		{"042", AnswerTypeInteger, false},
		{"4.0", AnswerTypeInteger, false},
		{"3.75", AnswerTypeDecimal, true},
		{"0.5", AnswerTypeDecimal, true},
		{"12", AnswerTypeDecimal, true},
		{"3.50", AnswerTypeDecimal, false},
		{"abc", AnswerTypeDecimal, false},
	}

	v := &AnswerFormatValidator{}
	for _, tc := range tests {
		q := validQuestion()
		q.Answer = tc.answer
		q.AnswerType = tc.typ
		err := v.Validate(q)
		if (err == nil) != tc.ok {
			t.Errorf("Validate(%q/%s) = %v, want ok=%v", tc.answer, tc.typ, err, tc.ok)
		}
	}
}

func mcQuestion() *Question {
	return &Question{
		Text:       "Which is more: £3 or 250p?",
		Format:     FormatMultipleChoice,
		Answer:     "£3",
		AnswerType: AnswerTypeText,
		Choices:    []string{"£3", "250p", "They are the same"},
		Module:     "M01_Y4_MEAS",
		Level:      1,
	}
}

func TestAnswerFormat_MultipleChoice(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		ok     bool
	}{
		{"valid", func(q *Question) {}, true},
		{"two options", func(q *Question) { q.Choices = q.Choices[:2] }, true},
		{"one option", func(q *Question) { q.Choices = q.Choices[:1] }, false},
		{"five options", func(q *Question) { q.Choices = append(q.Choices, "£4", "£5") }, false},
		{"empty option", func(q *Question) { q.Choices[1] = " " }, false},
		{"duplicate option", func(q *Question) { q.Choices[1] = "£3" }, false},
		{"duplicate ignoring case", func(q *Question) { q.Choices[2] = "THEY ARE THE SAME"; q.Choices[1] = "they are the same" }, false},
		{"answer missing", func(q *Question) { q.Answer = "£4" }, false},
	}

	v := &AnswerFormatValidator{}
	for _, tc := range tests {
		q := mcQuestion()
		tc.mutate(q)
		err := v.Validate(q)
		if (err == nil) != tc.ok {
			t.Errorf("%s: Validate = %v, want ok=%v", tc.name, err, tc.ok)
		}
	}
}

func TestAnswerFormat_TextInputHasNoOptions(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validQuestion()
	q.Choices = []string{"3000", "300"}
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected error for text_input with options")
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}
