package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/goalgebra"
)

func mustMult(t *testing.T, a, b any) *algebra.Mult {
	t.Helper()
	m, err := algebra.NewMult(a, b)
	require.NoError(t, err)
	return m
}

func TestMultDistribution(t *testing.T) {
	v := simplified(t, mustMult(t, algebra.MustTerm(3), mustAdd(t, algebra.MustTerm(1, "x"), algebra.MustTerm(1))))
	want := mustAdd(t, algebra.MustTerm(3, "x"), algebra.MustTerm(3))
	assert.True(t, v.Equal(want.Value()))
	assert.Equal(t, "3x+3", v.String())
}

func TestMultTerms(t *testing.T) {
	v := simplified(t, mustMult(t, algebra.MustTerm(2, "x"), algebra.MustTerm(3, "x")))
	assert.Equal(t, "6x^2", v.String())
}

func TestMultSums(t *testing.T) {
	v := simplified(t, mustMult(t, mustAdd(t, "x", 1), mustSub(t, "x", 1)))
	assert.Equal(t, "x^2-1", v.String())

	v = simplified(t, mustMult(t, mustAdd(t, "x", "y"), 2))
	assert.Equal(t, "2x+2y", v.String())
}

func TestMultWithQuotient(t *testing.T) {
	recip, err := algebra.NewDiv(1, "x")
	require.NoError(t, err)
	v := simplified(t, mustMult(t, recip, "x"))
	assert.Equal(t, "1", v.String())

	open, err := algebra.NewDiv(1, mustAdd(t, "x", 1))
	require.NoError(t, err)

	v = simplified(t, mustMult(t, open, 2))
	require.IsType(t, &algebra.Div{}, v)
	assert.Equal(t, "2/(x+1)", v.String())

	v = simplified(t, mustMult(t, open, open))
	require.IsType(t, &algebra.Div{}, v)
	assert.Equal(t, "1/(x^2+2x+1)", v.String())

	v = simplified(t, mustMult(t, "x", open))
	assert.Equal(t, "x/(x+1)", v.String())
}

func TestMultSimplifyIsAtomic(t *testing.T) {
	bad, err := algebra.NewPow(0, -1)
	require.NoError(t, err)
	m := mustMult(t, mustAdd(t, "x", 1), bad)
	before := m.String()
	assert.ErrorIs(t, m.Simplify(), algebra.ErrDivisionByZero)
	assert.Equal(t, before, m.String())
}

func TestMultFactorsAndEqual(t *testing.T) {
	m := mustMult(t, mustMult(t, "x", 1), mustAdd(t, "y", 1))
	fs := m.Factors()
	require.Len(t, fs, 2)
	assert.Equal(t, "x", fs[0].String())
	assert.Equal(t, "y+1", fs[1].String())

	swapped := mustMult(t, mustAdd(t, "y", 1), "x")
	assert.True(t, m.Equal(swapped))
	assert.False(t, m.Equal(mustMult(t, mustAdd(t, "y", 2), "x")))
}

func TestMultRendering(t *testing.T) {
	m := mustMult(t, mustAdd(t, "x", 1), mustAdd(t, "y", 2))
	assert.Equal(t, "(x+1)*(y+2)", m.String())
	assert.Equal(t, "\\left(x + 1\\right) \\cdot \\left(y + 2\\right)", m.LaTeX())
}
