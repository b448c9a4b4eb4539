package algebra_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/goalgebra"
)

func TestToJSONTerm(t *testing.T) {
	s, err := algebra.ToJSON(algebra.MustTerm(big.NewRat(3, 2), algebra.VarPow("x", 2)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"term","coefficient":"3/2","variables":[{"base":"x","exponent":2}]}`, s)
}

func TestJSONTreeSurvivesRoundTrip(t *testing.T) {
	orig := mustPow(t, mustMult(t, mustAdd(t, "x", 1), mustDiv(t, algebra.MustTerm(2, "y"), 3)), 2)
	s, err := algebra.ToJSON(orig)
	require.NoError(t, err)

	decoded, err := algebra.UnmarshalExpr([]byte(s))
	require.NoError(t, err)
	require.IsType(t, &algebra.Pow{}, decoded)
	assert.Equal(t, orig.String(), decoded.String())

	want, err := algebra.Simplify(orig)
	require.NoError(t, err)
	got, err := algebra.Simplify(decoded)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
	assert.Equal(t, want.String(), got.String())
}

func TestFromJSONSharesVariables(t *testing.T) {
	e, err := algebra.UnmarshalExpr([]byte(`{
		"type": "add",
		"augend": {"type": "term", "coefficient": 2, "variables": [{"base": "x"}]},
		"addend": {"type": "term", "variables": [{"base": "x", "exponent": 1}]}
	}`))
	require.NoError(t, err)
	sum := e.(*algebra.Add)
	a := sum.Augend().(*algebra.Term)
	b := sum.Addend().(*algebra.Term)
	assert.Same(t, a.Variables()[0].Base, b.Variables()[0].Base)

	v, err := algebra.Simplify(e)
	require.NoError(t, err)
	assert.Equal(t, "3x", v.String())
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"missing type", `{"augend": {}}`},
		{"unknown type", `{"type": "sqrt"}`},
		{"missing operand", `{"type": "add", "augend": {"type": "term"}}`},
		{"bad coefficient", `{"type": "term", "coefficient": "abc"}`},
		{"bad variables", `{"type": "term", "variables": "x"}`},
		{"empty base", `{"type": "term", "variables": [{"base": ""}]}`},
		{"trailing data", `{"type": "term"} {"type": "term"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := algebra.UnmarshalExpr([]byte(tt.input))
			assert.Error(t, err)
		})
	}

	_, err := algebra.UnmarshalExpr([]byte(`{"type": "pow", "base": {"type": "term"}, "exponent": 1.5}`))
	assert.ErrorIs(t, err, algebra.ErrUnsupportedExponent)

	_, err = algebra.UnmarshalExpr([]byte(`{"type": "term", "variables": [
		{"base": "x", "exponent": 9223372036854775807},
		{"base": "x", "exponent": 1}
	]}`))
	assert.ErrorIs(t, err, algebra.ErrUnsupportedExponent)
}

func TestJSONDecimalCoefficients(t *testing.T) {
	tests := map[string]*big.Rat{
		`{"type": "term", "coefficient": 0.1}`:     big.NewRat(1, 10),
		`{"type": "term", "coefficient": -2.5e-3}`: big.NewRat(-1, 400),
		`{"type": "term", "coefficient": "0.1"}`:   big.NewRat(1, 10),
		`{"type": "term", "coefficient": 7}`:       big.NewRat(7, 1),
	}
	for input, want := range tests {
		e, err := algebra.UnmarshalExpr([]byte(input))
		require.NoError(t, err, input)
		assert.Equal(t, 0, want.Cmp(e.(*algebra.Term).Coefficient()), "%s decoded as %s", input, e)
	}

	// Trees built by a plain json.Unmarshal carry float64 numbers.
	e, err := algebra.FromJSON(map[string]interface{}{"type": "term", "coefficient": 0.1})
	require.NoError(t, err)
	assert.Equal(t, "1/10", e.String())
}

func TestJSONValue(t *testing.T) {
	m := algebra.JSONValue(mustDiv(t, "x", 2))
	assert.Equal(t, "div", m["type"])
	assert.Contains(t, m, "dividend")
	assert.Contains(t, m, "divisor")
}
