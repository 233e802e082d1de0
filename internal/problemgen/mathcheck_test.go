package problemgen

import "testing"

func TestMathCheck(t *testing.T) {
	tests := []struct {
		text   string
		answer string
		ok     bool
	}{
		{"Calculate: 3 + 4 × 2", "11", true},
		{"Calculate: 3 + 4 × 2", "14", false},
		{"Calculate: (3 + 4) × 2", "14", true},
		{"Calculate: 20 - 6 ÷ 3 + 4 × 2", "26", true},
		{"Calculate: ((15 - 3) ÷ 4 + 2) × 3", "15", true},
		{"Calculate: 7 ÷ 2", "3", false},
		{"Calculate: 3 +", "3", false},
		// Not an expression question: skipped.
		{"Convert 3 kilometres to metres.", "1", true},
	}

	v := &MathCheckValidator{}
	for _, tc := range tests {
		q := validQuestion()
		q.Text = tc.text
		q.Answer = tc.answer
		err := v.Validate(q)
		if (err == nil) != tc.ok {
			t.Errorf("Validate(%q = %s) = %v, want ok=%v", tc.text, tc.answer, err, tc.ok)
		}
	}
}

func TestMathCheck_ParseFailureNotRetryable(t *testing.T) {
	v := &MathCheckValidator{}
	q := validQuestion()
	q.Text = "Calculate: 3 + + 4"
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Retryable {
		t.Error("parse failures should not be retryable")
	}
}

func TestRunValidators_StopsAtFirstFailure(t *testing.T) {
	q := validQuestion()
	q.Text = ""
	q.Choices = []string{"a", "b"}
	err := RunValidators(q, DefaultValidators())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Validator != "structural" {
		t.Errorf("first failure = %q, want structural", err.Validator)
	}
	if RunValidators(validQuestion(), DefaultValidators()) != nil {
		t.Error("valid question should pass the default chain")
	}
}
