package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func rewordSchemaForTest() *Schema {
	return &Schema{
		Name:        "test-reworded-question",
		Description: "A reworded question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string", "minLength": 1},
				"hint": map[string]any{"type": "string"},
			},
			"required":             []any{"text", "hint"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"valid", `{"text":"Mia has 3 boxes.","hint":"Multiply"}`, true},
		{"empty hint", `{"text":"Mia has 3 boxes.","hint":""}`, true},
		{"missing text", `{"hint":"Multiply"}`, false},
		{"empty text", `{"text":"","hint":""}`, false},
		{"wrong type", `{"text":3,"hint":""}`, false},
		{"extra field", `{"text":"a","hint":"","answer":4}`, false},
		{"not json", `Mia has 3 boxes.`, false},
	}
	for _, tc := range tests {
		err := validateResponse(rewordSchemaForTest(), json.RawMessage(tc.raw))
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok {
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Errorf("%s: got %v, want *ErrInvalidResponse", tc.name, err)
			} else if string(inv.Content) != tc.raw {
				t.Errorf("%s: error content = %s", tc.name, inv.Content)
			}
		}
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestValidateResponse_BadSchema(t *testing.T) {
	s := &Schema{Name: "test-broken", Definition: map[string]any{"type": 12}}
	err := validateResponse(s, json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("got %v, want *ErrInvalidResponse", err)
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	a, err := compileSchema(rewordSchemaForTest())
	if err != nil {
		t.Fatal(err)
	}
	b, err := compileSchema(rewordSchemaForTest())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second compile should hit the cache")
	}
}
