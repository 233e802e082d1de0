package llm

import (
	"strings"

	"github.com/abhisek/ks2maths/internal/store"
)

// ModelCost is a model's price in USD per million tokens.
type ModelCost struct {
	Input  float64
	Output float64
}

// Cost returns the USD cost of a call.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.Input + float64(outputTokens)*c.Output) / 1e6
}

// LookupCost returns the price of modelID, or nil when it is not in the
// table. OpenRouter slugs such as "openai/gpt-4o-mini" resolve through the
// part after the vendor prefix.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	if _, rest, ok := strings.Cut(modelID, "/"); ok {
		for _, id := range []string{rest, strings.ReplaceAll(rest, ".", "-")} {
			if c, ok := modelCosts[id]; ok {
				return &c
			}
		}
	}
	return nil
}

// UsageTotals aggregates recorded calls.
type UsageTotals struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64

	// Unpriced counts calls whose model has no price entry.
	Unpriced int
}

// Totals sums tokens and cost over events.
func Totals(events []store.LLMRequestEvent) UsageTotals {
	var t UsageTotals
	for _, e := range events {
		t.Requests++
		if !e.Success {
			t.Failures++
		}
		t.InputTokens += e.InputTokens
		t.OutputTokens += e.OutputTokens
		if c := LookupCost(e.Model); c != nil {
			t.CostUSD += c.Cost(e.InputTokens, e.OutputTokens)
		} else {
			t.Unpriced++
		}
	}
	return t
}

var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-3-5-haiku-20241022":  {0.8, 4},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}
