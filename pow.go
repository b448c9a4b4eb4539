package algebra

import (
	"fmt"
	"math/big"
	"runtime"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ============================================================
// Pow — base^exponent, integer exponents only
// ============================================================

// Pow raises a base to an integer exponent. A simplified Pow has exponent 1.
type Pow struct {
	base     Expr
	exponent int
}

// NewPow builds base^exponent. The exponent must be a whole number.
func NewPow(base any, exponent any) (*Pow, error) {
	n, ok := toInteger(exponent)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedExponent, exponent)
	}
	b, err := operand(base)
	if err != nil {
		return nil, err
	}
	return &Pow{base: b, exponent: n}, nil
}

// Base returns a copy of the base.
func (p *Pow) Base() Expr { return p.base.Clone() }

// Exponent returns the integer exponent.
func (p *Pow) Exponent() int { return p.exponent }

var (
	parallelThreshold atomic.Int64
	maxExponent       atomic.Int64
)

func init() { parallelThreshold.Store(16) }

// SetParallelThreshold sets the smallest exponent at which the terms of a
// binomial expansion are computed concurrently. n <= 0 disables it. The
// terms are always summed left to right.
func SetParallelThreshold(n int) { parallelThreshold.Store(int64(n)) }

// ParallelThreshold returns the value set by SetParallelThreshold.
func ParallelThreshold() int { return int(parallelThreshold.Load()) }

// SetMaxExponent caps the magnitude of the exponent a Pow may be simplified
// with; larger ones fail with ErrUnsupportedExponent. n <= 0 removes the cap,
// which is the default.
func SetMaxExponent(n int) { maxExponent.Store(int64(n)) }

// MaxExponent returns the value set by SetMaxExponent.
func MaxExponent() int { return int(maxExponent.Load()) }

func checkExponent(n int) error {
	limit := MaxExponent()
	if limit > 0 && (n > limit || n < -limit) {
		return fmt.Errorf("%w: %d exceeds the limit of %d", ErrUnsupportedExponent, n, limit)
	}
	return nil
}

func (p *Pow) Simplify() error {
	work := p.clone()
	if err := work.simplify(); err != nil {
		return err
	}
	*p = *work
	return nil
}

func (p *Pow) simplify() error {
	for {
		inner, ok := p.base.(*Pow)
		if !ok {
			break
		}
		n, err := mulExp(p.exponent, inner.exponent)
		if err != nil {
			return err
		}
		p.exponent, p.base = n, inner.base
	}
	if err := checkExponent(p.exponent); err != nil {
		return err
	}
	switch p.exponent {
	case 0:
		p.base, p.exponent = oneTerm(), 1
		return nil
	case 1:
		v, err := reduce(p.base)
		if err != nil {
			return err
		}
		p.base = v
		return nil
	}
	b, err := reduce(p.base)
	if err != nil {
		return err
	}
	v, err := raise(b, p.exponent)
	if err != nil {
		return err
	}
	p.base, p.exponent = v, 1
	return nil
}

// raise computes b^n for a reduced, owned base.
func raise(b Expr, n int) (Expr, error) {
	switch x := b.(type) {
	case *Term:
		if err := x.power(n); err != nil {
			return nil, err
		}
		return x, nil
	case *Add:
		return expandBinomial(x, n)
	case *Mult:
		return reduce(&Mult{
			multiplicand: &Pow{base: x.multiplicand, exponent: n},
			multiplier:   &Pow{base: x.multiplier, exponent: n},
		})
	case *Div:
		num, den := x.dividend, x.divisor
		if n < 0 {
			num, den, n = den, num, -n
		}
		return reduce(&Div{
			dividend: &Pow{base: num, exponent: n},
			divisor:  &Pow{base: den, exponent: n},
		})
	case *Pow:
		m, err := mulExp(x.exponent, n)
		if err != nil {
			return nil, err
		}
		return reduce(&Pow{base: x.base, exponent: m})
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidFactor, b)
}

// expandBinomial expands (a + b)^n as the sum over i of
// choose(n, i) × a^(n-i) × b^i.
func expandBinomial(s *Add, n int) (Expr, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative power %d of a sum", ErrUnsupportedExponent, n)
	}
	parts := make([]*Mult, n+1)
	for i := 0; i <= n; i++ {
		parts[i] = &Mult{
			multiplicand: &Term{coeff: new(big.Rat).SetInt(binomial(n, i))},
			multiplier: &Mult{
				multiplicand: &Pow{base: s.augend.Clone(), exponent: n - i},
				multiplier:   &Pow{base: s.addend.Clone(), exponent: i},
			},
		}
	}
	terms := make([]Expr, n+1)
	if t := ParallelThreshold(); t > 0 && n >= t {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range parts {
			i := i
			g.Go(func() error {
				v, err := reduce(parts[i])
				terms[i] = v
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range parts {
			v, err := reduce(parts[i])
			if err != nil {
				return nil, err
			}
			terms[i] = v
		}
	}
	sum := &Add{augend: terms[0], addend: terms[1]}
	for _, t := range terms[2:] {
		sum = &Add{augend: sum, addend: t}
	}
	return reduce(sum)
}

func (p *Pow) clone() *Pow { return &Pow{base: p.base.Clone(), exponent: p.exponent} }

func (p *Pow) Clone() Expr { return p.clone() }
func (p *Pow) Value() Expr { return p.reduced().Clone() }

func (p *Pow) reduced() Expr {
	if p.exponent == 1 {
		return p.base.reduced()
	}
	return p
}

func (p *Pow) Equal(other Expr) bool {
	if p.exponent == 1 {
		return p.base.Equal(other)
	}
	o, ok := soleSummand(other).(*Pow)
	return ok && p.exponent == o.exponent && p.base.Equal(o.base)
}

func (p *Pow) exprType() string       { return "pow" }
func (p *Pow) precedence() precedence { return precPower }

func (p *Pow) String() string {
	return wrap(p.base, precPower, true) + "^" + strconv.Itoa(p.exponent)
}

func (p *Pow) LaTeX() string {
	return wrapLaTeX(p.base, precPower, true) + "^{" + strconv.Itoa(p.exponent) + "}"
}
