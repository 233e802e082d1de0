package problemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/ks2maths/internal/llm"
)

const rewordPrompt = `You rewrite maths questions for children aged 7 to 11 in UK primary schools.

Rules:
- Retell the question as a short everyday story of one or two sentences.
- Keep every number exactly as written, including units such as cm, ml and £.
- The question must have the same answer as the original. Do not change what is being asked.
- Use British English spelling.
- Do not include the answer in the text.
- Keep the text under 400 characters.`

const (
	defaultRewordTokens = 512
	rewordTemperature   = 0.7
)

var numberRE = regexp.MustCompile(`\d+(?:[.,]\d+)*`)

// Rewriter retells generated questions as word problems through an LLM.
// The answer, options and provenance are never changed.
type Rewriter struct {
	provider  llm.Provider
	maxTokens int
}

// NewRewriter creates a Rewriter backed by provider.
func NewRewriter(provider llm.Provider) *Rewriter {
	return &Rewriter{provider: provider, maxTokens: defaultRewordTokens}
}

type rewordOutput struct {
	Text string `json:"text"`
	Hint string `json:"hint"`
}

// Reword returns a copy of q with reworded text. A result that drops one of
// the original numbers or runs over MaxTextLength is rejected with a
// *ValidationError, and the caller should keep q.
func (r *Rewriter) Reword(ctx context.Context, q *Question) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "reword")

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	fmt.Fprintf(&b, "Answer: %s\n", q.Answer)
	if len(q.Choices) > 0 {
		fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Choices, " | "))
	}
	if q.Hint != "" {
		fmt.Fprintf(&b, "Current hint: %s\n", q.Hint)
	}

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:      rewordPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:      RewordSchema,
		MaxTokens:   r.maxTokens,
		Temperature: rewordTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("reword: %w", err)
	}

	var out rewordOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("reword: parse response: %w", err)
	}
	out.Text = strings.TrimSpace(out.Text)

	if verr := checkReworded(q.Text, out.Text); verr != nil {
		return nil, verr
	}

	rq := *q
	rq.Choices = append([]string(nil), q.Choices...)
	rq.Text = out.Text
	if h := strings.TrimSpace(out.Hint); h != "" {
		rq.Hint = h
	}
	return &rq, nil
}

func checkReworded(original, text string) *ValidationError {
	if text == "" {
		return &ValidationError{Validator: "reword", Message: "reworded text is empty", Retryable: true}
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return &ValidationError{
			Validator: "reword",
			Message:   fmt.Sprintf("reworded text is %d characters, max %d", utf8.RuneCountInString(text), MaxTextLength),
			Retryable: true,
		}
	}
	have := make(map[string]bool)
	for _, n := range numberRE.FindAllString(text, -1) {
		have[normalizeNumber(n)] = true
	}
	for _, n := range numberRE.FindAllString(original, -1) {
		if !have[normalizeNumber(n)] {
			return &ValidationError{
				Validator: "reword",
				Message:   fmt.Sprintf("reworded text dropped the number %s", n),
				Retryable: true,
			}
		}
	}
	return nil
}

// normalizeNumber strips thousands separators so "1,000" matches "1000".
func normalizeNumber(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
