package parser

import (
	"fmt"
	"math/big"

	"github.com/njchilds90/goalgebra"
)

type parser struct {
	toks    []Token
	current int
	vars    map[string]*algebra.Variable
}

// Parse builds an unsimplified expression tree from src. Every occurrence
// of a letter shares one *algebra.Variable.
func Parse(src string) (algebra.Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, vars: map[string]*algebra.Variable{}}
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.check(EOF) {
		return nil, p.errorf("unexpected %s", p.peek().Kind)
	}
	return e, nil
}

// ParseSimplified parses src and returns its canonical form.
func ParseSimplified(src string) (algebra.Expr, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return algebra.Simplify(e)
}

func (p *parser) expression() (algebra.Expr, error) { return p.addition() }

func (p *parser) addition() (algebra.Expr, error) {
	expr, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	for p.match(Plus, Minus) {
		op := p.previous()
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		if op.Kind == Plus {
			expr, err = algebra.NewAdd(expr, right)
		} else {
			expr, err = algebra.NewSub(expr, right)
		}
		if err != nil {
			return nil, p.wrap(op, err)
		}
	}
	return expr, nil
}

func (p *parser) multiplication() (algebra.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(Star):
			op := p.previous()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			if expr, err = algebra.NewMult(expr, right); err != nil {
				return nil, p.wrap(op, err)
			}
		case p.match(Slash):
			op := p.previous()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			if expr, err = algebra.NewDiv(expr, right); err != nil {
				return nil, p.wrap(op, err)
			}
		case p.check(Number) || p.check(Variable) || p.check(LeftParen):
			at := p.peek()
			right, err := p.power()
			if err != nil {
				return nil, err
			}
			if expr, err = algebra.NewMult(expr, right); err != nil {
				return nil, p.wrap(at, err)
			}
		default:
			return expr, nil
		}
	}
}

func (p *parser) unary() (algebra.Expr, error) {
	if p.match(Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		m, err := algebra.NewMult(-1, right)
		if err != nil {
			return nil, p.wrap(op, err)
		}
		return m, nil
	}
	return p.power()
}

func (p *parser) power() (algebra.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(Caret) {
		op := p.previous()
		n, err := p.exponent()
		if err != nil {
			return nil, err
		}
		if expr, err = algebra.NewPow(expr, n); err != nil {
			return nil, p.wrap(op, err)
		}
	}
	return expr, nil
}

func (p *parser) exponent() (int, error) {
	paren := p.match(LeftParen)
	neg := p.match(Minus)
	if !p.check(Number) {
		return 0, p.errorf("exponent must be an integer literal, got %s", p.peek().Kind)
	}
	tok := p.advance()
	r, ok := new(big.Rat).SetString(tok.Text)
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, &Error{Pos: tok.Pos, Msg: fmt.Sprintf("exponent %s is not an integer", tok.Text)}
	}
	n := int(r.Num().Int64())
	if neg {
		n = -n
	}
	if paren && !p.match(RightParen) {
		return 0, p.errorf("expected ')' after exponent")
	}
	return n, nil
}

func (p *parser) primary() (algebra.Expr, error) {
	switch {
	case p.match(Number):
		tok := p.previous()
		r, ok := new(big.Rat).SetString(tok.Text)
		if !ok {
			return nil, &Error{Pos: tok.Pos, Msg: fmt.Sprintf("malformed number %q", tok.Text)}
		}
		return algebra.NewTerm(r)
	case p.match(Variable):
		return algebra.NewTerm(p.variable(p.previous().Text))
	case p.match(LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(RightParen) {
			return nil, p.errorf("expected ')'")
		}
		return expr, nil
	}
	return nil, p.errorf("unexpected %s", p.peek().Kind)
}

func (p *parser) variable(label string) *algebra.Variable {
	if v, ok := p.vars[label]; ok {
		return v
	}
	v := algebra.NewVariable(label)
	p.vars[label] = v
	return v
}

func (p *parser) match(kinds ...Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(k Kind) bool { return p.peek().Kind == k }

func (p *parser) advance() Token {
	if !p.check(EOF) {
		p.current++
	}
	return p.previous()
}

func (p *parser) peek() Token     { return p.toks[p.current] }
func (p *parser) previous() Token { return p.toks[p.current-1] }

func (p *parser) errorf(format string, args ...interface{}) error {
	return &Error{Pos: p.peek().Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) wrap(at Token, err error) error {
	return fmt.Errorf("parser: at offset %d: %w", at.Pos, err)
}
