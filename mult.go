package algebra

// ============================================================
// Mult — binary product
// ============================================================

// Mult is a binary product. A simplified Mult holds its result in the
// multiplicand and the Term 1 in the multiplier.
type Mult struct{ multiplicand, multiplier Expr }

// NewMult builds multiplicand × multiplier from expressions or Term factors.
func NewMult(multiplicand, multiplier any) (*Mult, error) {
	a, b, err := operands(multiplicand, multiplier)
	if err != nil {
		return nil, err
	}
	return &Mult{multiplicand: a, multiplier: b}, nil
}

// Multiplicand returns a copy of the left operand.
func (m *Mult) Multiplicand() Expr { return m.multiplicand.Clone() }

// Multiplier returns a copy of the right operand.
func (m *Mult) Multiplier() Expr { return m.multiplier.Clone() }

// Factors flattens nested products, dropping unit terms.
func (m *Mult) Factors() []Expr {
	fs := factorsOf(m)
	out := make([]Expr, len(fs))
	for i, f := range fs {
		out[i] = f.Clone()
	}
	return out
}

func (m *Mult) Simplify() error {
	work := m.clone()
	if err := work.simplify(); err != nil {
		return err
	}
	*m = *work
	return nil
}

func (m *Mult) simplify() error {
	a, err := reduce(m.multiplicand)
	if err != nil {
		return err
	}
	b, err := reduce(m.multiplier)
	if err != nil {
		return err
	}
	v, err := product(a, b)
	if err != nil {
		return err
	}
	if v == nil {
		m.multiplicand, m.multiplier = a, b
		return nil
	}
	m.multiplicand, m.multiplier = v, oneTerm()
	return nil
}

// product multiplies two reduced, owned operands. It returns nil for a pair
// it has no rule for; reduced values are always Term, Add or Div, so that
// only happens for hand-built trees.
func product(a, b Expr) (Expr, error) {
	switch x := a.(type) {
	case *Term:
		switch y := b.(type) {
		case *Term:
			if err := x.multiply(y); err != nil {
				return nil, err
			}
			return x, nil
		case *Add:
			if err := y.distribute(x); err != nil {
				return nil, err
			}
			return y.reduced(), nil
		case *Div:
			return quotient(&Mult{multiplicand: x, multiplier: y.dividend}, y.divisor)
		}
	case *Add:
		switch y := b.(type) {
		case *Term, *Add:
			if err := x.distribute(y); err != nil {
				return nil, err
			}
			return x.reduced(), nil
		case *Div:
			return quotient(&Mult{multiplicand: x, multiplier: y.dividend}, y.divisor)
		}
	case *Div:
		switch y := b.(type) {
		case *Term, *Add:
			return quotient(&Mult{multiplicand: x.dividend, multiplier: y}, x.divisor)
		case *Div:
			return quotient(
				&Mult{multiplicand: x.dividend, multiplier: y.dividend},
				&Mult{multiplicand: x.divisor, multiplier: y.divisor},
			)
		}
	}
	return nil, nil
}

func (m *Mult) clone() *Mult {
	return &Mult{multiplicand: m.multiplicand.Clone(), multiplier: m.multiplier.Clone()}
}

func (m *Mult) Clone() Expr { return m.clone() }
func (m *Mult) Value() Expr { return m.reduced().Clone() }

func (m *Mult) reduced() Expr {
	if isOneTerm(m.multiplier) {
		return m.multiplicand.reduced()
	}
	return m
}

// Equal compares the flattened factors of both sides as multisets.
func (m *Mult) Equal(other Expr) bool {
	return sameMultiset(factorsOf(m), factorsOf(other))
}

func (m *Mult) exprType() string       { return "mult" }
func (m *Mult) precedence() precedence { return precProduct }

func (m *Mult) String() string {
	return wrap(m.multiplicand, precProduct, false) + "*" + wrap(m.multiplier, precProduct, false)
}

func (m *Mult) LaTeX() string {
	return wrapLaTeX(m.multiplicand, precProduct, false) + " \\cdot " + wrapLaTeX(m.multiplier, precProduct, false)
}
