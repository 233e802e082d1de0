package problemgen

import "github.com/abhisek/ks2maths/internal/llm"

// RewordSchema is the response shape for question rewording.
var RewordSchema = &llm.Schema{
	Name:        "reworded-question",
	Description: "A maths question retold as a short everyday story for a primary school child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The reworded question. Must keep every number from the original and ask for the same answer.",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A one-sentence hint, or an empty string",
			},
		},
		"required":             []any{"text", "hint"},
		"additionalProperties": false,
	},
}
