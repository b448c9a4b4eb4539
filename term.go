package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

// ============================================================
// Term — coefficient × product of variable powers
// ============================================================

// Term is a canonical monomial. It holds at most one VariablePower per base,
// never an exponent-0 entry, and a zero coefficient implies no variables.
type Term struct {
	coeff *big.Rat
	vars  []VariablePower
}

// NewTerm multiplies the given factors into a single Term. Accepted factors:
//
//	numbers (int*, uint*, float*, *big.Int, *big.Rat)  multiply the coefficient
//	string, *Variable                                 multiply by var^1
//	VariablePower, *VariablePower                     multiply by var^n
//	[]VariablePower, []any                            flattened
//	*Term                                             coefficient and variables merged
//
// Anything else fails with ErrInvalidFactor.
func NewTerm(factors ...any) (*Term, error) {
	t := &Term{coeff: ratOne()}
	if err := t.absorb(factors); err != nil {
		return nil, err
	}
	t.canonicalize()
	return t, nil
}

// MustTerm is NewTerm for literals known to be valid; it panics on error.
func MustTerm(factors ...any) *Term {
	t, err := NewTerm(factors...)
	if err != nil {
		panic(err)
	}
	return t
}

func constTerm(n int64) *Term { return &Term{coeff: new(big.Rat).SetInt64(n)} }
func oneTerm() *Term          { return constTerm(1) }
func zeroTerm() *Term         { return constTerm(0) }

func (t *Term) absorb(factors []any) error {
	for _, f := range factors {
		switch v := f.(type) {
		case *Term:
			if v == nil {
				return fmt.Errorf("%w: nil *Term", ErrInvalidFactor)
			}
			t.coeff.Mul(t.coeff, v.coeff)
			if err := t.mergeVars(v.vars, 1); err != nil {
				return err
			}
		case string:
			if err := t.mergeVar(VariablePower{Base: NewVariable(v), Exponent: 1}, 1); err != nil {
				return err
			}
		case *Variable:
			if v == nil {
				return fmt.Errorf("%w: nil *Variable", ErrInvalidFactor)
			}
			if err := t.mergeVar(VariablePower{Base: v, Exponent: 1}, 1); err != nil {
				return err
			}
		case VariablePower:
			if v.Base == nil {
				return fmt.Errorf("%w: variable power without a base", ErrInvalidFactor)
			}
			if err := t.mergeVar(v, 1); err != nil {
				return err
			}
		case *VariablePower:
			if v == nil || v.Base == nil {
				return fmt.Errorf("%w: variable power without a base", ErrInvalidFactor)
			}
			if err := t.mergeVar(*v, 1); err != nil {
				return err
			}
		case []VariablePower:
			for _, vp := range v {
				if vp.Base == nil {
					return fmt.Errorf("%w: variable power without a base", ErrInvalidFactor)
				}
				if err := t.mergeVar(vp, 1); err != nil {
					return err
				}
			}
		case []any:
			if err := t.absorb(v); err != nil {
				return err
			}
		default:
			r, ok := toRat(f)
			if !ok {
				return fmt.Errorf("%w: %v (%T)", ErrInvalidFactor, f, f)
			}
			t.coeff.Mul(t.coeff, r)
		}
	}
	return nil
}

// mergeVar multiplies (sign=1) or divides (sign=-1) by vp, adding exponents
// for a base already present. An exponent that would overflow an int fails
// with ErrUnsupportedExponent and leaves t unchanged.
func (t *Term) mergeVar(vp VariablePower, sign int) error {
	e, err := mulExp(sign, vp.Exponent)
	if err != nil {
		return err
	}
	for i := range t.vars {
		if t.vars[i].Base.Equal(vp.Base) {
			sum, err := addExp(t.vars[i].Exponent, e)
			if err != nil {
				return err
			}
			t.vars[i].Exponent = sum
			return nil
		}
	}
	t.vars = append(t.vars, VariablePower{Base: vp.Base, Exponent: e})
	return nil
}

func (t *Term) mergeVars(vps []VariablePower, sign int) error {
	for _, vp := range vps {
		if err := t.mergeVar(vp, sign); err != nil {
			return err
		}
	}
	return nil
}

func (t *Term) canonicalize() {
	if t.coeff.Sign() == 0 {
		t.vars = nil
		return
	}
	kept := t.vars[:0]
	for _, vp := range t.vars {
		if vp.Exponent != 0 {
			kept = append(kept, vp)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	t.vars = kept
}

// Coefficient returns a copy of the coefficient.
func (t *Term) Coefficient() *big.Rat { return new(big.Rat).Set(t.coeff) }

// Variables returns a copy of the variable powers in insertion order.
func (t *Term) Variables() []VariablePower {
	if len(t.vars) == 0 {
		return nil
	}
	out := make([]VariablePower, len(t.vars))
	copy(out, t.vars)
	return out
}

// LikeTerm reports whether t and other have identical variable powers,
// ignoring coefficients.
func (t *Term) LikeTerm(other *Term) bool {
	if len(t.vars) != len(other.vars) {
		return false
	}
	for _, vp := range t.vars {
		found := false
		for _, ovp := range other.vars {
			if vp.Equal(ovp) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (t *Term) IsConstant() bool { return t.IsZero() || len(t.vars) == 0 }
func (t *Term) IsZero() bool     { return t.coeff.Sign() == 0 }
func (t *Term) IsOne() bool      { return t.IsConstant() && t.coeff.Cmp(ratOne()) == 0 }

// Add combines other into t. A bare number may only be added to a constant
// term; a Term must be a like term.
func (t *Term) Add(other any) error {
	if o, ok := other.(*Term); ok {
		if o == nil {
			return fmt.Errorf("%w: nil *Term", ErrInvalidFactor)
		}
		if !t.LikeTerm(o) {
			return fmt.Errorf("%w: %s and %s are not like terms", ErrIncompatibleTerms, t, o)
		}
		t.coeff.Add(t.coeff, o.coeff)
		t.canonicalize()
		return nil
	}
	r, ok := toRat(other)
	if !ok {
		return fmt.Errorf("%w: %v (%T)", ErrInvalidFactor, other, other)
	}
	if !t.IsConstant() {
		return fmt.Errorf("%w: cannot add a number to %s", ErrIncompatibleTerms, t)
	}
	t.coeff.Add(t.coeff, r)
	t.canonicalize()
	return nil
}

// Multiply scales t by a number or multiplies it by another Term.
func (t *Term) Multiply(other any) error {
	if o, ok := other.(*Term); ok {
		if o == nil {
			return fmt.Errorf("%w: nil *Term", ErrInvalidFactor)
		}
		return t.multiply(o)
	}
	r, ok := toRat(other)
	if !ok {
		return fmt.Errorf("%w: %v (%T)", ErrInvalidFactor, other, other)
	}
	t.coeff.Mul(t.coeff, r)
	t.canonicalize()
	return nil
}

func (t *Term) multiply(o *Term) error {
	p := t.clone()
	if err := p.mergeVars(o.vars, 1); err != nil {
		return err
	}
	p.coeff.Mul(p.coeff, o.coeff)
	p.canonicalize()
	*t = *p
	return nil
}

// Divide divides t by a number or a Term, subtracting exponents.
func (t *Term) Divide(other any) error {
	if o, ok := other.(*Term); ok {
		if o == nil {
			return fmt.Errorf("%w: nil *Term", ErrInvalidFactor)
		}
		return t.divide(o)
	}
	r, ok := toRat(other)
	if !ok {
		return fmt.Errorf("%w: %v (%T)", ErrInvalidFactor, other, other)
	}
	if r.Sign() == 0 {
		return fmt.Errorf("%w: %s / 0", ErrDivisionByZero, t)
	}
	t.coeff.Quo(t.coeff, r)
	t.canonicalize()
	return nil
}

func (t *Term) divide(o *Term) error {
	if o.IsZero() {
		return fmt.Errorf("%w: %s / %s", ErrDivisionByZero, t, o)
	}
	q := t.clone()
	if err := q.mergeVars(o.vars, -1); err != nil {
		return err
	}
	q.coeff.Quo(q.coeff, o.coeff)
	q.canonicalize()
	*t = *q
	return nil
}

// Power raises t to an integer exponent: the coefficient is raised and every
// variable exponent is multiplied. A variable exponent that would overflow an int fails
// with ErrUnsupportedExponent and leaves t unchanged.
func (t *Term) Power(exponent any) error {
	n, ok := toInteger(exponent)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedExponent, exponent)
	}
	return t.power(n)
}

func (t *Term) power(n int) error {
	vars := make([]VariablePower, len(t.vars))
	for i, vp := range t.vars {
		e, err := mulExp(vp.Exponent, n)
		if err != nil {
			return err
		}
		vars[i] = VariablePower{Base: vp.Base, Exponent: e}
	}
	c, err := ratPow(t.coeff, n)
	if err != nil {
		return err
	}
	t.coeff, t.vars = c, vars
	t.canonicalize()
	return nil
}

// SumTerms returns a+b as a new Term without touching either operand.
func SumTerms(a, b *Term) (*Term, error) {
	sum := a.clone()
	if err := sum.Add(b); err != nil {
		return nil, err
	}
	return sum, nil
}

// MultiplyTerms returns a×b as a new Term without touching either operand.
func MultiplyTerms(a, b *Term) (*Term, error) {
	p := a.clone()
	if err := p.multiply(b); err != nil {
		return nil, err
	}
	return p, nil
}

func (t *Term) clone() *Term {
	c := &Term{coeff: new(big.Rat).Set(t.coeff)}
	if len(t.vars) > 0 {
		c.vars = make([]VariablePower, len(t.vars))
		copy(c.vars, t.vars)
	}
	return c
}

func (t *Term) Clone() Expr      { return t.clone() }
func (t *Term) Value() Expr      { return t.clone() }
func (t *Term) reduced() Expr    { return t }
func (t *Term) exprType() string { return "term" }

// Equal reports whether other reduces to the same monomial: like terms with
// equal coefficients.
func (t *Term) Equal(other Expr) bool {
	o, ok := asTerm(other)
	return ok && t.LikeTerm(o) && t.coeff.Cmp(o.coeff) == 0
}

func (t *Term) precedence() precedence {
	neg := t.coeff.Sign() < 0
	if t.IsConstant() {
		switch {
		case neg:
			return precUnary
		case !t.coeff.IsInt():
			return precProduct
		}
		return precAtom
	}
	if neg {
		return precUnary
	}
	if t.coeff.Cmp(ratOne()) == 0 && len(t.vars) == 1 {
		if t.vars[0].Exponent == 1 {
			return precAtom
		}
		return precPower
	}
	return precProduct
}

func (t *Term) String() string {
	if t.IsConstant() {
		return ratString(t.coeff)
	}
	prefix := ""
	sep := false
	switch {
	case t.coeff.Cmp(ratOne()) == 0:
	case t.coeff.Cmp(big.NewRat(-1, 1)) == 0:
		prefix = "-"
	default:
		prefix = ratString(t.coeff)
		sep = !t.coeff.IsInt()
	}
	names := make([]string, len(t.vars))
	for i, vp := range t.vars {
		names[i] = vp.String()
		if multiRune(vp.Base.label) {
			sep = true
		}
	}
	if !sep {
		return prefix + strings.Join(names, "")
	}
	if prefix != "" && prefix != "-" {
		prefix += "*"
	}
	return prefix + strings.Join(names, "*")
}

func (t *Term) LaTeX() string {
	if t.IsConstant() {
		return ratLaTeX(t.coeff)
	}
	prefix := ""
	switch {
	case t.coeff.Cmp(ratOne()) == 0:
	case t.coeff.Cmp(big.NewRat(-1, 1)) == 0:
		prefix = "-"
	default:
		prefix = ratLaTeX(t.coeff) + " "
	}
	names := make([]string, len(t.vars))
	for i, vp := range t.vars {
		names[i] = vp.LaTeX()
	}
	return prefix + strings.Join(names, " ")
}
