package algebra

import (
	"strconv"
	"unicode/utf8"
)

// Variable is a named unknown. Variables are shared, never cloned: every
// VariablePower naming x may point at the same *Variable.
type Variable struct{ label string }

func NewVariable(label string) *Variable { return &Variable{label: label} }

func (v *Variable) Label() string  { return v.label }
func (v *Variable) String() string { return v.label }

// Equal compares labels only.
func (v *Variable) Equal(other *Variable) bool {
	return v != nil && other != nil && v.label == other.label
}

// VariablePower is a variable raised to an integer exponent. Copying the
// struct clones it while keeping the shared Base.
type VariablePower struct {
	Base     *Variable
	Exponent int
}

// VarPow builds a (variable, exponent) pair. v may be a *Variable or a
// label string; anything else yields a pair that NewTerm rejects.
func VarPow(v any, exponent int) VariablePower {
	switch b := v.(type) {
	case *Variable:
		return VariablePower{Base: b, Exponent: exponent}
	case string:
		return VariablePower{Base: NewVariable(b), Exponent: exponent}
	}
	return VariablePower{Exponent: exponent}
}

func (vp VariablePower) Equal(other VariablePower) bool {
	return vp.Base.Equal(other.Base) && vp.Exponent == other.Exponent
}

func (vp VariablePower) String() string {
	if vp.Exponent == 1 {
		return vp.Base.label
	}
	return vp.Base.label + "^" + strconv.Itoa(vp.Exponent)
}

func (vp VariablePower) LaTeX() string {
	if vp.Exponent == 1 {
		return vp.Base.label
	}
	return vp.Base.label + "^{" + strconv.Itoa(vp.Exponent) + "}"
}

func multiRune(label string) bool { return utf8.RuneCountInString(label) > 1 }
