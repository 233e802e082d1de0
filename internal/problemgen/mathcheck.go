package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/ks2maths/internal/expr"
)

// calculatePrefix marks questions whose text is a bare expression to evaluate.
const calculatePrefix = "Calculate: "

// MathCheckValidator independently recomputes the answer of "Calculate: ..."
// questions from the expression in the text. Other questions pass through
// silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	src, ok := strings.CutPrefix(q.Text, calculatePrefix)
	if !ok {
		return nil
	}
	n, err := expr.Parse(src)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot parse expression %q: %s", src, err),
		}
	}
	computed, err := expr.Eval(n)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot evaluate %q: %s", src, err),
			Retryable: true,
		}
	}
	if strconv.FormatInt(computed, 10) != strings.TrimSpace(q.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %q", computed, q.Answer),
			Retryable: true,
		}
	}
	return nil
}
