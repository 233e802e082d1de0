package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/ks2maths/internal/llm"
)

func TestRewriter_Reword(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text":"Priya walks 3 kilometres to the park. How many metres is that?","hint":""}`),
	})
	r := NewRewriter(mock)

	orig := validQuestion()
	got, err := r.Reword(context.Background(), orig)
	if err != nil {
		t.Fatalf("Reword: %v", err)
	}
	if !strings.HasPrefix(got.Text, "Priya") {
		t.Errorf("Text = %q", got.Text)
	}
	if got.Answer != orig.Answer || got.Module != orig.Module {
		t.Error("answer and provenance must be kept")
	}
	if got.Hint != orig.Hint {
		t.Errorf("empty hint should keep the original, got %q", got.Hint)
	}
	if orig.Text != "Convert 3 kilometres to metres." {
		t.Error("original question was modified")
	}

	req := mock.Calls()[0]
	if req.Schema != RewordSchema {
		t.Error("request should carry RewordSchema")
	}
	if !strings.Contains(req.Messages[0].Content, "Answer: 3000") {
		t.Errorf("user message = %q", req.Messages[0].Content)
	}
}

func TestRewriter_RejectsDroppedNumber(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text":"Priya walks a few kilometres. How many metres?","hint":""}`),
	})
	_, err := NewRewriter(mock).Reword(context.Background(), validQuestion())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestRewriter_AcceptsGroupedNumbers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text":"A tank holds 1,500 ml of water. How many cm³ is that?","hint":"1 ml = 1 cm³"}`),
	})
	q := validQuestion()
	q.Text = "A tank holds 1500 ml. How many cm³ is this?"
	got, err := NewRewriter(mock).Reword(context.Background(), q)
	if err != nil {
		t.Fatalf("Reword: %v", err)
	}
	if got.Hint != "1 ml = 1 cm³" {
		t.Errorf("Hint = %q", got.Hint)
	}
}

func TestRewriter_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	if _, err := NewRewriter(mock).Reword(context.Background(), validQuestion()); err == nil {
		t.Fatal("expected error")
	}
}
