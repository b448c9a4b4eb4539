package algebra

import "fmt"

// ============================================================
// Div — binary quotient
// ============================================================

// Div is a binary quotient. A divisor of Term 1 marks a fully reduced
// quotient. Division by a polynomial is left unresolved: the node keeps its
// simplified dividend and divisor.
type Div struct{ dividend, divisor Expr }

// NewDiv builds dividend / divisor. A zero divisor is reported by Simplify,
// not here.
func NewDiv(dividend, divisor any) (*Div, error) {
	a, b, err := operands(dividend, divisor)
	if err != nil {
		return nil, err
	}
	return &Div{dividend: a, divisor: b}, nil
}

// Dividend returns a copy of the numerator.
func (d *Div) Dividend() Expr { return d.dividend.Clone() }

// Divisor returns a copy of the denominator.
func (d *Div) Divisor() Expr { return d.divisor.Clone() }

// Resolved reports whether the quotient collapsed to its dividend.
func (d *Div) Resolved() bool { return isOneTerm(d.divisor) }

func (d *Div) Simplify() error {
	work := d.clone()
	if err := work.simplify(); err != nil {
		return err
	}
	*d = *work
	return nil
}

func (d *Div) simplify() error {
	num, err := reduce(d.dividend)
	if err != nil {
		return err
	}
	if d.Resolved() {
		d.dividend = num
		return nil
	}
	den, err := reduce(d.divisor)
	if err != nil {
		return err
	}
	v, err := divide(num, den)
	if err != nil {
		return err
	}
	if v == nil {
		d.dividend, d.divisor = num, den
		return nil
	}
	d.dividend, d.divisor = v, oneTerm()
	return nil
}

// quotient reduces dividend / divisor for owned operands.
func quotient(dividend, divisor Expr) (Expr, error) {
	return reduce(&Div{dividend: dividend, divisor: divisor})
}

// divide applies the division rules to reduced, owned operands. A nil
// result means the quotient stays unresolved.
func divide(num, den Expr) (Expr, error) {
	if y, ok := den.(*Div); ok {
		// X / (n/d) = (X*d) / n
		return quotient(&Mult{multiplicand: num, multiplier: y.divisor}, y.dividend)
	}
	switch y := den.(type) {
	case *Term:
		if y.IsZero() {
			return nil, fmt.Errorf("%w: (%s) / 0", ErrDivisionByZero, num)
		}
		switch x := num.(type) {
		case *Term:
			if err := x.divide(y); err != nil {
				return nil, err
			}
			return x, nil
		case *Add:
			return x.divideBy(y)
		case *Div:
			// (n/d) / t = n / (d*t)
			return quotient(x.dividend, &Mult{multiplicand: x.divisor, multiplier: y})
		}
	case *Add:
		switch x := num.(type) {
		case *Term:
			if x.IsZero() {
				return x, nil
			}
		case *Div:
			return quotient(x.dividend, &Mult{multiplicand: x.divisor, multiplier: y})
		}
	}
	return nil, nil
}

// divideBy divides each half of the sum by t and adds the results.
func (a *Add) divideBy(t *Term) (Expr, error) {
	left, err := quotient(a.augend, t.clone())
	if err != nil {
		return nil, err
	}
	right, err := quotient(a.addend, t.clone())
	if err != nil {
		return nil, err
	}
	return reduce(&Add{augend: left, addend: right})
}

func (d *Div) clone() *Div {
	return &Div{dividend: d.dividend.Clone(), divisor: d.divisor.Clone()}
}

func (d *Div) Clone() Expr { return d.clone() }
func (d *Div) Value() Expr { return d.reduced().Clone() }

func (d *Div) reduced() Expr {
	if d.Resolved() {
		return d.dividend.reduced()
	}
	return d
}

func (d *Div) Equal(other Expr) bool {
	if d.Resolved() {
		return d.dividend.Equal(other)
	}
	o, ok := soleSummand(other).(*Div)
	return ok && d.dividend.Equal(o.dividend) && d.divisor.Equal(o.divisor)
}

func (d *Div) exprType() string       { return "div" }
func (d *Div) precedence() precedence { return precProduct }

func (d *Div) String() string {
	return wrap(d.dividend, precProduct, false) + "/" + wrap(d.divisor, precProduct, true)
}

func (d *Div) LaTeX() string {
	return "\\frac{" + d.dividend.LaTeX() + "}{" + d.divisor.LaTeX() + "}"
}
