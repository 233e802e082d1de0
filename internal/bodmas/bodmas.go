// Package bodmas generates order-of-operations questions for Year 6: mixed
// calculations, brackets, the left-to-right rule, and spotting mistakes.
package bodmas

import (
	"strconv"

	"github.com/abhisek/ks2maths/internal/expr"
	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// ModuleID is the curriculum id of the order-of-operations topic.
const ModuleID = "C09_Y6_CALC"

const (
	calculatePrefix      = "Calculate: "
	defaultMaxResult     = 100
	defaultDistractors   = 3
	formatMultipleChoice = "multiple_choice"
)

// New returns the C09_Y6_CALC generator.
func New() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: ModuleID,
		Ops: problemgen.Ops{
			"simple_two_operation":       simpleTwoOperation,
			"two_operation_division":     twoOperationDivision,
			"three_operation_mixed":      threeOperationMixed,
			"four_operation_mixed":       fourOperationMixed,
			"order_identification":       orderIdentification,
			"simple_parentheses":         simpleParentheses,
			"complex_parentheses":        complexParentheses,
			"parentheses_comparison":     parenthesesComparison,
			"left_to_right_rule":         leftToRightRule,
			"multiple_same_precedence":   multipleSamePrecedence,
			"nested_parentheses_simple":  nestedParenthesesSimple,
			"nested_parentheses_complex": nestedParenthesesComplex,
			"missing_parentheses":        missingParentheses,
			"error_spotting":             errorSpotting,
			"multi_step_complex":         multiStepComplex,
		},
	}
}

// numbers holds the operand bounds of a level.
type numbers struct {
	lo, hi    int
	maxResult int64
	negative  bool
	choice    bool
	decoys    int
}

func readNumbers(p params.Level) (numbers, error) {
	r, err := p.Range("number")
	if err != nil {
		return numbers{}, err
	}
	lo, hi := r.IntBounds()
	return numbers{
		lo:        lo,
		hi:        max(hi, 2),
		maxResult: int64(p.NumOr("max_result", defaultMaxResult)),
		negative:  p.Flag("allow_negative_results"),
		choice:    p.QuestionFormat == formatMultipleChoice,
		decoys:    int(p.NumOr("distractor_count", defaultDistractors)),
	}, nil
}

func (n numbers) operand(rng *problemgen.Rand) int { return rng.Int(n.lo, n.hi) }

// wide draws from up to twice the usual upper bound.
func (n numbers) wide(rng *problemgen.Rand) int { return rng.Int(n.lo, 2*n.hi) }

// small draws a multiplier between 2 and 10.
func (n numbers) small(rng *problemgen.Rand) int { return rng.Int(2, min(10, n.hi)) }

func (n numbers) allows(v int64) bool {
	if v < 0 && !n.negative {
		return false
	}
	return v <= n.maxResult && v >= -n.maxResult
}

// exactDivision returns dividend ÷ divisor with a whole quotient no larger
// than hi.
func exactDivision(hi int, rng *problemgen.Rand) (dividend, divisor int) {
	divisor = rng.Int(2, min(12, hi))
	quotient := rng.Int(1, max(1, hi/divisor))
	return divisor * quotient, divisor
}

func lowOp(rng *problemgen.Rand) expr.Op {
	return problemgen.Pick(rng, []expr.Op{expr.Add, expr.Sub})
}

// hints pairs the multiple-choice and typed-answer wording.
type hints struct{ choice, text string }

func same(h string) hints { return hints{h, h} }

// calculate draws expressions from build until one evaluates exactly within
// the level's bounds, and wraps it as a "Calculate: " question. extra lists
// wrong answers specific to the shape, tried before the generic ones.
func calculate(n numbers, h hints, rng *problemgen.Rand, build func() (expr.Node, []int64)) (*problemgen.Question, error) {
	var (
		node  expr.Node
		extra []int64
		v     int64
	)
	err := problemgen.Retry(func() bool {
		node, extra = build()
		var err error
		v, err = expr.Eval(node)
		return err == nil && n.allows(v)
	})
	if err != nil {
		return nil, err
	}

	text := calculatePrefix + node.String()
	answer := strconv.FormatInt(v, 10)
	if !n.choice {
		return problemgen.TextInput(text, float64(v), h.text), nil
	}
	options := []string{answer}
	for _, d := range distractors(v, node, extra, n.decoys, rng) {
		options = append(options, strconv.FormatInt(d, 10))
	}
	return problemgen.MultipleChoice(text, answer, problemgen.Shuffle(rng, options), h.choice), nil
}

var offsets = []int64{-2, -1, 1, 2, 3, -3, 5, -5, 10}

// distractors returns count positive wrong answers: the results of the
// usual order-of-operations mistakes first, then small offsets from the
// answer.
func distractors(answer int64, node expr.Node, extra []int64, count int, rng *problemgen.Rand) []int64 {
	var candidates []int64
	for _, eval := range []func(expr.Node) (int64, error){
		expr.EvalLeftToRight,
		expr.EvalAddFirst,
		expr.EvalIgnoringBrackets,
	} {
		if v, err := eval(node); err == nil {
			candidates = append(candidates, v)
		}
	}
	candidates = append(candidates, extra...)
	for _, o := range problemgen.Shuffle(rng, offsets) {
		candidates = append(candidates, answer+o)
	}
	for i := int64(1); i <= int64(count); i++ {
		candidates = append(candidates, answer+10+i)
	}

	seen := map[int64]bool{answer: true}
	out := make([]int64, 0, count)
	for _, c := range candidates {
		if len(out) == count {
			break
		}
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
