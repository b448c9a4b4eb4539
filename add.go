package algebra

// ============================================================
// Add — binary sum (Sub is Add with a negated addend)
// ============================================================

// Add is a binary sum. Sums of more than two items are right-nested Adds.
type Add struct{ augend, addend Expr }

// NewAdd builds augend + addend. Operands may be numbers, variable labels,
// Variables or any Expr (cloned).
func NewAdd(augend, addend any) (*Add, error) {
	a, b, err := operands(augend, addend)
	if err != nil {
		return nil, err
	}
	return &Add{augend: a, addend: b}, nil
}

// NewSub builds minuend - subtrahend as minuend + (-1 × subtrahend).
func NewSub(minuend, subtrahend any) (*Add, error) {
	a, b, err := operands(minuend, subtrahend)
	if err != nil {
		return nil, err
	}
	return &Add{augend: a, addend: &Mult{multiplicand: constTerm(-1), multiplier: b}}, nil
}

// Augend returns a copy of the left operand.
func (a *Add) Augend() Expr { return a.augend.Clone() }

// Addend returns a copy of the right operand.
func (a *Add) Addend() Expr { return a.addend.Clone() }

// Terms flattens nested sums into their non-Add items, dropping zero terms.
func (a *Add) Terms() []Expr {
	items := a.terms()
	out := make([]Expr, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func (a *Add) terms() []Expr {
	var out []Expr
	for _, e := range []Expr{a.augend, a.addend} {
		switch v := e.(type) {
		case *Add:
			out = append(out, v.terms()...)
		case *Term:
			if !v.IsZero() {
				out = append(out, v)
			}
		default:
			out = append(out, e)
		}
	}
	return out
}

func (a *Add) Simplify() error {
	work := a.clone()
	if err := work.simplify(); err != nil {
		return err
	}
	*a = *work
	return nil
}

func (a *Add) simplify() error {
	items, err := a.collect()
	if err != nil {
		return err
	}
	a.augend, a.addend = pack(combineLikeTerms(items))
	return nil
}

// collect reduces every summand and splices sums produced by the reduction.
func (a *Add) collect() ([]Expr, error) {
	var out []Expr
	for _, item := range a.terms() {
		v, err := reduce(item)
		if err != nil {
			return nil, err
		}
		if s, ok := v.(*Add); ok {
			out = append(out, s.terms()...)
			continue
		}
		if isZeroTerm(v) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// combineLikeTerms merges each Term into the first like Term seen before
// it. Other items pass through. Items are owned and merged in place.
func combineLikeTerms(items []Expr) []Expr {
	acc := make([]Expr, 0, len(items))
	for _, item := range items {
		t, ok := item.(*Term)
		if !ok {
			acc = append(acc, item)
			continue
		}
		merged := false
		for _, prev := range acc {
			if p, ok := prev.(*Term); ok && p.LikeTerm(t) {
				p.coeff.Add(p.coeff, t.coeff)
				p.canonicalize()
				merged = true
				break
			}
		}
		if !merged {
			acc = append(acc, t)
		}
	}
	out := acc[:0]
	for _, item := range acc {
		if !isZeroTerm(item) {
			out = append(out, item)
		}
	}
	return out
}

// pack nests items as items[0] + (items[1] + (... + items[n-1])). One item
// pairs with zero; none yields 0 + 0.
func pack(items []Expr) (Expr, Expr) {
	switch len(items) {
	case 0:
		return zeroTerm(), zeroTerm()
	case 1:
		return items[0], zeroTerm()
	}
	rest := items[len(items)-1]
	for i := len(items) - 2; i >= 1; i-- {
		rest = &Add{augend: items[i], addend: rest}
	}
	return items[0], rest
}

// Distribute multiplies factor through every operand of the sum and
// simplifies the result. Like Simplify it is atomic.
func (a *Add) Distribute(factor any) error {
	f, err := operand(factor)
	if err != nil {
		return err
	}
	work := a.clone()
	if err := work.distribute(f); err != nil {
		return err
	}
	*a = *work
	return nil
}

// distribute never keeps a reference to f; it clones what it stores.
func (a *Add) distribute(f Expr) error {
	switch v := f.(type) {
	case *Term:
		if err := a.scale(v); err != nil {
			return err
		}
		return a.simplify()
	case *Add:
		return a.distributeSum(v)
	}
	for _, slot := range []*Expr{&a.augend, &a.addend} {
		r, err := reduce(&Mult{multiplicand: f.Clone(), multiplier: *slot})
		if err != nil {
			return err
		}
		*slot = r
	}
	return a.simplify()
}

func (a *Add) scale(t *Term) error {
	for _, slot := range []*Expr{&a.augend, &a.addend} {
		switch v := (*slot).(type) {
		case *Term:
			if err := v.multiply(t); err != nil {
				return err
			}
		case *Add:
			if err := v.scale(t); err != nil {
				return err
			}
		default:
			*slot = &Mult{multiplicand: t.clone(), multiplier: v}
		}
	}
	return nil
}

// distributeSum expands (a + b)(c + d) as (c + d)a + (c + d)b.
func (a *Add) distributeSum(f *Add) error {
	left, right := f.clone(), f.clone()
	if err := left.distribute(a.augend); err != nil {
		return err
	}
	if err := right.distribute(a.addend); err != nil {
		return err
	}
	if err := left.simplify(); err != nil {
		return err
	}
	if err := right.simplify(); err != nil {
		return err
	}
	items := append(left.terms(), right.terms()...)
	a.augend, a.addend = pack(combineLikeTerms(items))
	return nil
}

func (a *Add) clone() *Add {
	return &Add{augend: a.augend.Clone(), addend: a.addend.Clone()}
}

func (a *Add) Clone() Expr { return a.clone() }

// Value collapses a sum whose addend is zero to its augend.
func (a *Add) Value() Expr { return a.reduced().Clone() }

func (a *Add) reduced() Expr {
	if isZeroTerm(a.addend) {
		return a.augend.reduced()
	}
	return a
}

// Equal compares the flattened summands of both sides as multisets.
func (a *Add) Equal(other Expr) bool {
	return sameMultiset(summands(a), summands(other))
}

func (a *Add) exprType() string       { return "add" }
func (a *Add) precedence() precedence { return precSum }

func (a *Add) String() string {
	return joinSum(wrap(a.augend, precSum, false), wrap(a.addend, precSum, false), "+", "-")
}

func (a *Add) LaTeX() string {
	return joinSum(wrapLaTeX(a.augend, precSum, false), wrapLaTeX(a.addend, precSum, false), " + ", " - ")
}
