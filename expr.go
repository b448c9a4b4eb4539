package algebra

import "fmt"

// ============================================================
// Core Interface
// ============================================================

// Expr is a node of an expression tree. The set of implementations is
// closed: *Term, *Add, *Mult, *Div and *Pow.
type Expr interface {
	// Clone returns a deep copy. Variables stay shared.
	Clone() Expr
	// Value returns an owned copy of the node's reduced form without
	// mutating the receiver: a bare Term when everything collapsed,
	// otherwise a copy of the minimal node.
	Value() Expr
	// Equal compares canonical term and factor multisets, not tree shape.
	Equal(other Expr) bool
	String() string
	LaTeX() string

	reduced() Expr
	precedence() precedence
	exprType() string
	toJSON() map[string]interface{}
}

// Operation is any non-Term node.
type Operation interface {
	Expr
	// Simplify normalizes the node and its descendants in place. It is
	// atomic: on error the node is left exactly as it was.
	Simplify() error

	simplify() error
}

var (
	_ Operation = (*Add)(nil)
	_ Operation = (*Mult)(nil)
	_ Operation = (*Div)(nil)
	_ Operation = (*Pow)(nil)
	_ Expr      = (*Term)(nil)
)

// Simplify returns the canonical form of e without touching e.
func Simplify(e Expr) (Expr, error) {
	work := e.Clone()
	v, err := reduce(work)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func String(e Expr) string { return e.String() }
func LaTeX(e Expr) string  { return e.LaTeX() }

// reduce simplifies an owned node in place and returns its reduced form,
// which shares storage with e.
func reduce(e Expr) (Expr, error) {
	op, ok := e.(Operation)
	if !ok {
		return e, nil
	}
	if err := op.simplify(); err != nil {
		return nil, err
	}
	return op.reduced(), nil
}

// operand coerces constructor input into an owned node.
func operand(x any) (Expr, error) {
	switch v := x.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil operand", ErrInvalidFactor)
	case *Term:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Term", ErrInvalidFactor)
		}
		return v.clone(), nil
	case *Add:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Add", ErrInvalidFactor)
		}
		return v.clone(), nil
	case *Mult:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Mult", ErrInvalidFactor)
		}
		return v.clone(), nil
	case *Div:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Div", ErrInvalidFactor)
		}
		return v.clone(), nil
	case *Pow:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Pow", ErrInvalidFactor)
		}
		return v.clone(), nil
	case string, *Variable, VariablePower, *VariablePower:
		return NewTerm(v)
	}
	if r, ok := toRat(x); ok {
		return &Term{coeff: r}, nil
	}
	return nil, fmt.Errorf("%w: %v (%T)", ErrInvalidFactor, x, x)
}

func operands(a, b any) (Expr, Expr, error) {
	x, err := operand(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := operand(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func isOneTerm(e Expr) bool {
	t, ok := e.(*Term)
	return ok && t.IsOne()
}

func isZeroTerm(e Expr) bool {
	t, ok := e.(*Term)
	return ok && t.IsZero()
}

// ============================================================
// Multiset equality
// ============================================================

// unwrap strips identity wrappers: x/1 and x^1.
func unwrap(e Expr) Expr {
	for {
		switch v := e.(type) {
		case *Div:
			if !isOneTerm(v.divisor) {
				return e
			}
			e = v.dividend
		case *Pow:
			if v.exponent != 1 {
				return e
			}
			e = v.base
		default:
			return e
		}
	}
}

// summands flattens nested sums, dropping zero terms.
func summands(e Expr) []Expr {
	switch v := unwrap(e).(type) {
	case *Add:
		return append(summands(v.augend), summands(v.addend)...)
	case *Term:
		if v.IsZero() {
			return nil
		}
		return []Expr{v}
	case *Mult:
		switch fs := factorsOf(v); len(fs) {
		case 0:
			return []Expr{oneTerm()}
		case 1:
			return summands(fs[0])
		}
		return []Expr{v}
	default:
		return []Expr{v}
	}
}

// soleSummand returns the only summand of e, or nil when there are none or
// several.
func soleSummand(e Expr) Expr {
	ss := summands(e)
	if len(ss) != 1 {
		return nil
	}
	return ss[0]
}

// factorsOf flattens nested products, dropping unit terms.
func factorsOf(e Expr) []Expr {
	switch v := unwrap(e).(type) {
	case *Mult:
		return append(factorsOf(v.multiplicand), factorsOf(v.multiplier)...)
	case *Term:
		if v.IsOne() {
			return nil
		}
		return []Expr{v}
	case *Add:
		switch ss := summands(v); len(ss) {
		case 0:
			return []Expr{zeroTerm()}
		case 1:
			return factorsOf(ss[0])
		}
		return []Expr{v}
	default:
		return []Expr{v}
	}
}

// asTerm reports the single monomial e stands for, if any.
func asTerm(e Expr) (*Term, bool) {
	ss := summands(e)
	switch len(ss) {
	case 0:
		return zeroTerm(), true
	case 1:
		t, ok := ss[0].(*Term)
		return t, ok
	}
	return nil, false
}

// sameMultiset reports whether every item of xs has exactly one
// not-yet-matched equal item in ys.
func sameMultiset(xs, ys []Expr) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
	for _, x := range xs {
		found := false
		for j, y := range ys {
			if !used[j] && x.Equal(y) {
				used[j] = true
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
