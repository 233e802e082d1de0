package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chatServer(t *testing.T, status int, body map[string]any, seen *map[string]any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/v1"
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var seen map[string]any
	url := chatServer(t, http.StatusOK, chatCompletion(`{"text":"A tank holds 2 litres.","hint":""}`, "stop"), &seen)
	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), Request{
		System:   "Reword the question.",
		Messages: []Message{{Role: RoleUser, Content: "How many ml?"}},
		Schema:   rewordSchemaForTest(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Usage.TotalTokens != 65 || resp.StopReason != StopEnd {
		t.Errorf("resp = %+v", resp)
	}

	if seen["model"] != "gpt-4o-mini" {
		t.Errorf("request model = %v", seen["model"])
	}
	msgs, _ := seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	rf, _ := seen["response_format"].(map[string]any)
	if rf["type"] != "json_schema" {
		t.Errorf("response_format = %v", seen["response_format"])
	}
	if got := seen["max_completion_tokens"]; got != float64(defaultMaxTokens) {
		t.Errorf("max_completion_tokens = %v, want %d", got, defaultMaxTokens)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	errBody := map[string]any{"error": map[string]any{"message": "nope", "type": "server_error"}}
	tests := []struct {
		name   string
		status int
		body   map[string]any
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, errBody, func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{"server error", http.StatusBadGateway, errBody, func(err error) bool {
			var e *ErrProviderUnavailable
			return errors.As(err, &e)
		}},
		{"truncated", http.StatusOK, chatCompletion(`{"text":`, "length"), func(err error) bool {
			var e *ErrMaxTokensExceeded
			return errors.As(err, &e)
		}},
		{"no choices", http.StatusOK, map[string]any{"id": "x", "choices": []any{}}, func(err error) bool {
			var e *ErrInvalidResponse
			return errors.As(err, &e)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: chatServer(t, tc.status, tc.body, nil)})
			if err != nil {
				t.Fatal(err)
			}
			_, err = p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			if !tc.check(err) {
				t.Errorf("got %T (%v)", err, err)
			}
		})
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "sk-or", Model: "claude-haiku"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "anthropic/claude-haiku-4.5" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	p, err = NewOpenRouterProvider(ProviderConfig{APIKey: "sk-or", Model: "meta-llama/llama-3-8b"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "meta-llama/llama-3-8b" {
		t.Errorf("slug should pass through, got %q", p.ModelID())
	}

	if _, err := NewOpenRouterProvider(ProviderConfig{Model: "gpt-mini"}); err == nil {
		t.Error("expected an error without an API key")
	}
}

func TestOpenRouterProvider_UsesBaseURL(t *testing.T) {
	url := chatServer(t, http.StatusOK, chatCompletion(`{}`, "stop"), nil)
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "sk-or", Model: "openai/gpt-4o-mini", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}
