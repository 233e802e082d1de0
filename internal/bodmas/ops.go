package bodmas

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/expr"
	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

func simpleTwoOperation(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := hints{
		choice: "Remember: Multiply and divide before adding and subtracting",
		text:   "Remember BIDMAS: Multiplication and division before addition and subtraction",
	}
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		a, op := n.operand(rng), lowOp(rng)
		if rng.Chance(0.5) {
			return expr.Chain(expr.N(a), op, expr.N(n.small(rng)), expr.Mul, expr.N(n.small(rng))), nil
		}
		dividend, divisor := exactDivision(n.hi, rng)
		return expr.Chain(expr.N(a), op, expr.N(dividend), expr.Div, expr.N(divisor)), nil
	})
}

func twoOperationDivision(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := hints{
		choice: "Do the division first, then add or subtract",
		text:   "Division comes before addition and subtraction",
	}
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		dividend, divisor := exactDivision(n.hi, rng)
		return expr.Chain(expr.N(dividend), expr.Div, expr.N(divisor), lowOp(rng), expr.N(n.operand(rng))), nil
	})
}

func threeOperationMixed(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := hints{
		choice: "Do division and multiplication first (left to right), then addition",
		text:   "BIDMAS: Division and multiplication before addition",
	}
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		dividend, divisor := exactDivision(n.hi, rng)
		return expr.Chain(expr.N(dividend), expr.Div, expr.N(divisor),
			expr.Add, expr.N(n.small(rng)), expr.Mul, expr.N(n.small(rng))), nil
	})
}

func fourOperationMixed(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := hints{
		choice: "Do division and multiplication first, then subtraction and addition from left to right",
		text:   "Remember: Division and multiplication before addition and subtraction",
	}
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		dividend, divisor := exactDivision(n.hi, rng)
		return expr.Chain(expr.N(n.wide(rng)), expr.Sub, expr.N(dividend), expr.Div, expr.N(divisor),
			expr.Add, expr.N(n.small(rng)), expr.Mul, expr.N(n.small(rng))), nil
	})
}

var operationNames = []string{"addition", "subtraction", "multiplication", "division"}

func orderIdentification(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	var node expr.Node
	var first expr.Op
	var hint string
	switch rng.Int(0, 3) {
	case 0:
		node = expr.Chain(expr.N(n.operand(rng)), expr.Add, expr.N(rng.Int(2, 10)), expr.Mul, expr.N(rng.Int(2, 10)))
		first, hint = expr.Mul, "Multiplication comes before addition"
	case 1:
		node = expr.Chain(expr.N(n.operand(rng)), expr.Sub, expr.N(rng.Int(2, 10)), expr.Div, expr.N(rng.Int(2, 5)))
		first, hint = expr.Div, "Division comes before subtraction"
	case 2:
		node = expr.Bin(expr.P(expr.Bin(expr.N(n.operand(rng)), expr.Add, expr.N(n.operand(rng)))), expr.Mul, expr.N(rng.Int(2, 10)))
		first, hint = expr.Add, "Brackets first: do the addition inside the brackets"
	default:
		node = expr.Chain(expr.N(n.operand(rng)), expr.Mul, expr.N(rng.Int(2, 10)), expr.Add, expr.N(n.operand(rng)))
		first, hint = expr.Mul, "Multiplication before addition"
	}
	text := fmt.Sprintf("In the expression %s, which operation should you calculate first?", node)
	return problemgen.MultipleChoice(text, first.Name(), problemgen.Shuffle(rng, operationNames), hint), nil
}

func simpleParentheses(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := hints{
		choice: "Brackets first: calculate what's inside the brackets, then multiply or divide",
		text:   "Brackets first in BIDMAS",
	}
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		c := n.small(rng)
		if rng.Chance(0.5) {
			inner := expr.Bin(expr.N(n.operand(rng)), lowOp(rng), expr.N(n.operand(rng)))
			return expr.Bin(expr.P(inner), expr.Mul, expr.N(c)), nil
		}
		total := rng.Int(1, n.hi) * c
		b := rng.Int(1, total-1)
		return expr.Bin(expr.P(expr.Bin(expr.N(total-b), expr.Add, expr.N(b))), expr.Div, expr.N(c)), nil
	})
}

func complexParentheses(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := same("Do brackets first, then multiplication, then addition or subtraction")
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		inner := expr.P(expr.Bin(expr.N(n.operand(rng)), lowOp(rng), expr.N(n.operand(rng))))
		return expr.Chain(expr.N(n.wide(rng)), lowOp(rng), inner, expr.Mul, expr.N(n.small(rng))), nil
	})
}

func parenthesesComparison(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	a, b, c := expr.N(n.operand(rng)), expr.N(n.operand(rng)), expr.N(n.small(rng))
	plain := expr.Chain(a, expr.Add, b, expr.Mul, c)
	bracketed := expr.Bin(expr.P(expr.Bin(a, expr.Add, b)), expr.Mul, c)
	v1, _ := expr.Eval(plain)
	v2, _ := expr.Eval(bracketed)

	const equal = "They are equal"
	answer := equal
	switch {
	case v1 > v2:
		answer = plain.String()
	case v2 > v1:
		answer = bracketed.String()
	}
	text := fmt.Sprintf("Which expression gives the larger answer: %s or %s?", plain, bracketed)
	options := problemgen.Shuffle(rng, []string{plain.String(), bracketed.String(), equal})
	hint := fmt.Sprintf("%s = %d, %s = %d", plain, v1, bracketed, v2)
	return problemgen.MultipleChoice(text, answer, options, hint), nil
}

func leftToRightRule(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	if rng.Chance(0.5) {
		h := same("Division and multiplication have equal priority: work left to right")
		return calculate(n, h, rng, func() (expr.Node, []int64) {
			dividend, divisor := exactDivision(n.hi, rng)
			mult := n.small(rng)
			// Dividing by the product is the usual slip.
			wrong := int64(dividend / (divisor * mult))
			return expr.Chain(expr.N(dividend), expr.Div, expr.N(divisor), expr.Mul, expr.N(mult)), []int64{wrong}
		})
	}
	h := same("Addition and subtraction have equal priority: work left to right")
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		a, b, c := int64(n.wide(rng)), int64(n.operand(rng)), int64(n.operand(rng))
		node := expr.Chain(expr.N(int(a)), expr.Add, expr.N(int(b)), expr.Sub, expr.N(int(c)))
		return node, []int64{a - b + c, a - b - c, a + b + c}
	})
}

func multipleSamePrecedence(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := same("Work from left to right when all operations are addition and subtraction")
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		return expr.Chain(expr.N(n.operand(rng)),
			lowOp(rng), expr.N(n.operand(rng)),
			lowOp(rng), expr.N(n.operand(rng)),
			lowOp(rng), expr.N(n.operand(rng))), nil
	})
}

func nestedParenthesesSimple(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := same("Start with the innermost brackets, work outwards")
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		b, c := n.small(rng), n.small(rng)
		divisor := rng.Int(2, min(6, n.hi))
		k := b*c/divisor + rng.Int(1, 10)
		a := divisor*k - b*c
		inner := expr.Bin(expr.N(a), expr.Add, expr.P(expr.Bin(expr.N(b), expr.Mul, expr.N(c))))
		return expr.Bin(expr.P(inner), expr.Div, expr.N(divisor)), nil
	})
}

func nestedParenthesesComplex(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := same("Work from innermost brackets outwards, following BIDMAS at each step")
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		dividend, divisor := exactDivision(10, rng)
		b := n.operand(rng)
		diff := expr.P(expr.Bin(expr.N(dividend+b), expr.Sub, expr.N(b)))
		inner := expr.Chain(diff, expr.Div, expr.N(divisor), expr.Add, expr.N(rng.Int(1, n.hi)))
		return expr.Bin(expr.P(inner), expr.Mul, expr.N(n.small(rng))), nil
	})
}

func missingParentheses(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	a, b, c := n.operand(rng), n.operand(rng), n.small(rng)
	correct := fmt.Sprintf("(%d + %d) × %d", a, b, c)
	options := []string{
		correct,
		fmt.Sprintf("%d + (%d × %d)", a, b, c),
		fmt.Sprintf("(%d) + %d × %d", a, b, c),
		fmt.Sprintf("%d + %d × (%d)", a, b, c),
	}
	text := fmt.Sprintf("Which expression equals %d?", (a+b)*c)
	return problemgen.MultipleChoice(text, correct, problemgen.Shuffle(rng, options),
		"Try each option and see which gives the target value"), nil
}

var ruleOptions = []string{
	"multiplication must be done before addition",
	"addition must be done before multiplication",
	"the calculation must be done from right to left",
	"there is no error, this is correct",
}

func errorSpotting(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	a, b, c := n.operand(rng), n.small(rng), n.small(rng)
	text := fmt.Sprintf("This calculation is incorrect: %d + %d × %d = %d. Which BIDMAS rule was NOT followed?",
		a, b, c, (a+b)*c)
	hint := fmt.Sprintf("Using BIDMAS correctly: %d + %d × %d = %d + %d = %d", a, b, c, a, b*c, a+b*c)
	return problemgen.MultipleChoice(text, ruleOptions[0], problemgen.Shuffle(rng, ruleOptions), hint), nil
}

func multiStepComplex(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	n, err := readNumbers(p)
	if err != nil {
		return nil, err
	}
	h := same("Step 1: Brackets (division first, then add). Step 2: Multiply. Step 3: Subtract")
	return calculate(n, h, rng, func() (expr.Node, []int64) {
		dividend, divisor := exactDivision(n.hi, rng)
		inner := expr.Chain(expr.N(dividend), expr.Div, expr.N(divisor), expr.Add, expr.N(n.operand(rng)))
		return expr.Chain(expr.N(n.wide(rng)), expr.Sub, expr.P(inner), expr.Mul, expr.N(n.small(rng))), nil
	})
}
