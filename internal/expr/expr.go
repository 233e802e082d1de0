// Package expr is a small integer arithmetic expression tree with the four
// operations and brackets, printed with the × and ÷ signs used in UK
// classrooms.
package expr

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInexact is returned when a division leaves a remainder.
	ErrInexact = errors.New("division is not exact")
)

// Op is a binary operator.
type Op byte

const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

// Symbol returns the display form of the operator.
func (o Op) Symbol() string {
	switch o {
	case Mul:
		return "×"
	case Div:
		return "÷"
	default:
		return string(rune(o))
	}
}

// Name returns the operation's name, e.g. "multiplication".
func (o Op) Name() string {
	switch o {
	case Add:
		return "addition"
	case Sub:
		return "subtraction"
	case Mul:
		return "multiplication"
	default:
		return "division"
	}
}

func (o Op) highPrecedence() bool { return o == Mul || o == Div }

// Node is an expression tree node.
type Node interface {
	String() string
	node()
}

// Num is an integer literal.
type Num int64

// BinOp applies Op to L and R.
type BinOp struct {
	Op   Op
	L, R Node
}

// Paren is an explicit pair of brackets.
type Paren struct {
	X Node
}

func (Num) node()   {}
func (BinOp) node() {}
func (Paren) node() {}

func (n Num) String() string { return strconv.FormatInt(int64(n), 10) }

func (b BinOp) String() string {
	return b.L.String() + " " + b.Op.Symbol() + " " + b.R.String()
}

func (p Paren) String() string { return "(" + p.X.String() + ")" }

// N is shorthand for Num.
func N(v int) Node { return Num(v) }

// P wraps x in brackets.
func P(x Node) Node { return Paren{X: x} }

// Bin builds a binary node.
func Bin(l Node, op Op, r Node) Node { return BinOp{Op: op, L: l, R: r} }

// Chain builds a left-associative chain of operations without brackets:
// Chain(a, op1, b, op2, c) is a op1 b op2 c. The tree respects precedence,
// so multiplication and division bind tighter than addition and subtraction.
func Chain(first Node, rest ...any) Node {
	toks := []token{{node: first}}
	for i := 0; i+1 < len(rest); i += 2 {
		toks = append(toks, token{op: rest[i].(Op)}, token{node: rest[i+1].(Node)})
	}
	n, _ := buildPrecedence(toks, false)
	return n
}

// Eval evaluates the tree with the usual order of operations.
func Eval(n Node) (int64, error) {
	switch n := n.(type) {
	case Num:
		return int64(n), nil
	case Paren:
		return Eval(n.X)
	case BinOp:
		l, err := Eval(n.L)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.R)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, l, r)
	}
	return 0, errors.New("unknown node")
}

func apply(op Op, l, r int64) (int64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	default:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		if l%r != 0 {
			return 0, ErrInexact
		}
		return l / r, nil
	}
}

// token is either an operand or an operator in a flattened expression.
type token struct {
	node Node
	op   Op
}

// flatten lists the expression's numbers and operators in reading order,
// dropping every bracket.
func flatten(n Node) []token {
	switch n := n.(type) {
	case Paren:
		return flatten(n.X)
	case BinOp:
		out := flatten(n.L)
		out = append(out, token{op: n.Op})
		return append(out, flatten(n.R)...)
	default:
		return []token{{node: n}}
	}
}

// EvalLeftToRight evaluates the numbers strictly left to right, ignoring
// both brackets and precedence. This is the common mistake of working
// through a calculation in reading order.
func EvalLeftToRight(n Node) (int64, error) {
	toks := flatten(n)
	acc, err := Eval(toks[0].node)
	if err != nil {
		return 0, err
	}
	for i := 1; i+1 < len(toks); i += 2 {
		r, err := Eval(toks[i+1].node)
		if err != nil {
			return 0, err
		}
		if acc, err = apply(toks[i].op, acc, r); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// EvalIgnoringBrackets evaluates with the usual precedence but as if every
// bracket had been removed.
func EvalIgnoringBrackets(n Node) (int64, error) {
	t, err := buildPrecedence(flatten(n), false)
	if err != nil {
		return 0, err
	}
	return Eval(t)
}

// EvalAddFirst evaluates with brackets removed and addition and subtraction
// done before multiplication and division.
func EvalAddFirst(n Node) (int64, error) {
	t, err := buildPrecedence(flatten(n), true)
	if err != nil {
		return 0, err
	}
	return Eval(t)
}

// buildPrecedence turns an alternating operand/operator list into a tree.
// With inverted set, + and - bind tighter than × and ÷.
func buildPrecedence(toks []token, inverted bool) (Node, error) {
	if len(toks) == 0 || len(toks)%2 == 0 {
		return nil, errors.New("malformed expression")
	}
	tight := func(op Op) bool { return op.highPrecedence() != inverted }

	// First pass folds the tightly binding operators.
	var groups []token
	cur := toks[0].node
	for i := 1; i+1 < len(toks); i += 2 {
		op, r := toks[i].op, toks[i+1].node
		if tight(op) {
			cur = BinOp{Op: op, L: cur, R: r}
			continue
		}
		groups = append(groups, token{node: cur}, token{op: op})
		cur = r
	}
	groups = append(groups, token{node: cur})

	// Second pass folds the rest left to right.
	out := groups[0].node
	for i := 1; i+1 < len(groups); i += 2 {
		out = BinOp{Op: groups[i].op, L: out, R: groups[i+1].node}
	}
	return out, nil
}

// Operators lists the operators in reading order.
func Operators(n Node) []Op {
	var ops []Op
	for _, t := range flatten(n) {
		if t.node == nil {
			ops = append(ops, t.op)
		}
	}
	return ops
}

// Normalize rewrites ASCII operators to the display symbols and collapses
// runs of whitespace, so "3+4*2" and "3 + 4 × 2" compare equal after
// parsing and printing.
func Normalize(s string) string {
	n, err := Parse(s)
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return n.String()
}
