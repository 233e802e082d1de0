package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

// Parse reads an expression using + - × ÷ (or * /), integer literals and
// brackets. Brackets are kept as Paren nodes so that printing the result
// reproduces the original layout.
func Parse(s string) (Node, error) {
	p := &parser{src: []rune(s)}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("unexpected %q at %d", p.src[p.pos], p.pos)
	}
	return n, nil
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) peekOp() (Op, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, false
	}
	switch p.src[p.pos] {
	case '+':
		return Add, true
	case '-', '−':
		return Sub, true
	case '×', '*', 'x':
		return Mul, true
	case '÷', '/':
		return Div, true
	}
	return 0, false
}

func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || op.highPrecedence() {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = BinOp{Op: op, L: left, R: right}
	}
}

func (p *parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || !op.highPrecedence() {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = BinOp{Op: op, L: left, R: right}
	}
}

func (p *parser) factor() (Node, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	if p.src[p.pos] == '(' {
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return nil, fmt.Errorf("missing closing bracket")
		}
		p.pos++
		return Paren{X: inner}, nil
	}
	start := p.pos
	for p.pos < len(p.src) && unicode.IsDigit(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return nil, fmt.Errorf("expected a number at %d", start)
	}
	v, err := strconv.ParseInt(string(p.src[start:p.pos]), 10, 64)
	if err != nil {
		return nil, err
	}
	return Num(v), nil
}
