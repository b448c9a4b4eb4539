package algebra

// precedence is the strength of the glue holding an expression together at
// its top level. A child is parenthesized when it binds more loosely than its
// parent's operator.
type precedence int

const (
	precSum precedence = iota
	precProduct
	precUnary
	precPower
	precAtom
)

// wrap renders e for a parent operator of precedence p. strict also wraps
// equal precedence, for the right side of non-associative operators.
func wrap(e Expr, p precedence, strict bool) string {
	ep := e.precedence()
	if ep < p || strict && ep == p {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func wrapLaTeX(e Expr, p precedence, strict bool) string {
	ep := e.precedence()
	if ep < p || strict && ep == p {
		return "\\left(" + e.LaTeX() + "\\right)"
	}
	return e.LaTeX()
}

// joinSum writes a+b, folding a leading minus of b into the operator.
func joinSum(a, b, plus, minus string) string {
	if len(b) > 0 && b[0] == '-' {
		return a + minus + b[1:]
	}
	return a + plus + b
}
