package algebra

import (
	"fmt"
	"strings"
)

// ============================================================
// Equation
// ============================================================

// Equation pairs two expressions with the unknowns they are stated for.
// Solving is out of scope; Simplify reduces both sides.
type Equation struct {
	left, right Expr
	unknowns    []*Variable
}

func NewEquation(left, right any, unknowns ...*Variable) (*Equation, error) {
	if len(unknowns) == 0 {
		return nil, fmt.Errorf("%w: equation needs at least one unknown", ErrInvalidArgument)
	}
	for _, v := range unknowns {
		if v == nil {
			return nil, fmt.Errorf("%w: nil unknown", ErrInvalidArgument)
		}
	}
	l, r, err := operands(left, right)
	if err != nil {
		return nil, err
	}
	return &Equation{left: l, right: r, unknowns: append([]*Variable(nil), unknowns...)}, nil
}

func (e *Equation) Left() Expr  { return e.left.Clone() }
func (e *Equation) Right() Expr { return e.right.Clone() }

func (e *Equation) Unknowns() []*Variable { return append([]*Variable(nil), e.unknowns...) }

// Simplify reduces both sides to their values. Neither side changes unless
// both succeed.
func (e *Equation) Simplify() error {
	l, err := Simplify(e.left)
	if err != nil {
		return fmt.Errorf("left side: %w", err)
	}
	r, err := Simplify(e.right)
	if err != nil {
		return fmt.Errorf("right side: %w", err)
	}
	e.left, e.right = l, r
	return nil
}

func (e *Equation) String() string {
	names := make([]string, len(e.unknowns))
	for i, v := range e.unknowns {
		names[i] = v.label
	}
	return e.left.String() + " = " + e.right.String() + " | for " + strings.Join(names, ", ")
}

func (e *Equation) LaTeX() string { return e.left.LaTeX() + " = " + e.right.LaTeX() }
