package algebra_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/njchilds90/goalgebra"
)

func mustPow(t *testing.T, base, exp any) *algebra.Pow {
	t.Helper()
	p, err := algebra.NewPow(base, exp)
	require.NoError(t, err)
	return p
}

func TestPowBinomial(t *testing.T) {
	v := simplified(t, mustPow(t, mustAdd(t, algebra.MustTerm(1, "x"), algebra.MustTerm(1)), 2))
	sum, ok := v.(*algebra.Add)
	require.True(t, ok, "got %T", v)

	terms := sum.Terms()
	require.Len(t, terms, 3)
	coeffs := map[int]*big.Rat{}
	for _, e := range terms {
		term, ok := e.(*algebra.Term)
		require.True(t, ok)
		deg := 0
		for _, vp := range term.Variables() {
			deg += vp.Exponent
		}
		_, dup := coeffs[deg]
		require.False(t, dup, "degree %d appears twice", deg)
		coeffs[deg] = term.Coefficient()
	}
	assert.Equal(t, 0, coeffs[2].Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, coeffs[1].Cmp(big.NewRat(2, 1)))
	assert.Equal(t, 0, coeffs[0].Cmp(big.NewRat(1, 1)))
	assert.Equal(t, "x^2+2x+1", v.String())
}

func TestPowTwoVariables(t *testing.T) {
	v := simplified(t, mustPow(t, mustAdd(t, "x", "y"), 2))
	assert.Equal(t, "x^2+2xy+y^2", v.String())

	v = simplified(t, mustPow(t, mustSub(t, "x", 1), 3))
	assert.Equal(t, "x^3-3x^2+3x-1", v.String())
}

func TestPowTerm(t *testing.T) {
	v := simplified(t, mustPow(t, algebra.MustTerm(2, "x"), 3))
	assert.Equal(t, "8x^3", v.String())

	v = simplified(t, mustPow(t, "x", -2))
	assert.Equal(t, "x^-2", v.String())
}

func TestPowZeroExponent(t *testing.T) {
	for _, base := range []any{"x", 0, mustAdd(t, "x", 1)} {
		v := simplified(t, mustPow(t, base, 0))
		assert.Equal(t, "1", v.String())
	}
}

func TestPowNested(t *testing.T) {
	v := simplified(t, mustPow(t, mustPow(t, "x", 2), 3))
	assert.Equal(t, "x^6", v.String())

	v = simplified(t, mustPow(t, mustPow(t, mustAdd(t, "x", 1), 1), 2))
	assert.Equal(t, "x^2+2x+1", v.String())
}

func TestPowQuotient(t *testing.T) {
	open := mustDiv(t, 1, mustAdd(t, "x", 1))
	v := simplified(t, mustPow(t, open, 2))
	assert.Equal(t, "1/(x^2+2x+1)", v.String())

	v = simplified(t, mustPow(t, open, -2))
	assert.Equal(t, "x^2+2x+1", v.String())
}

func TestPowErrors(t *testing.T) {
	_, err := algebra.NewPow("x", 2.5)
	assert.ErrorIs(t, err, algebra.ErrUnsupportedExponent)

	_, err = algebra.NewPow("x", "2")
	assert.ErrorIs(t, err, algebra.ErrUnsupportedExponent)

	p := mustPow(t, mustAdd(t, "x", 1), -1)
	before := p.String()
	assert.ErrorIs(t, p.Simplify(), algebra.ErrUnsupportedExponent)
	assert.Equal(t, before, p.String())

	assert.ErrorIs(t, mustPow(t, 0, -1).Simplify(), algebra.ErrDivisionByZero)
}

func TestPowRendering(t *testing.T) {
	p := mustPow(t, mustAdd(t, "x", 1), 2)
	assert.Equal(t, "(x+1)^2", p.String())
	assert.Equal(t, "\\left(x + 1\\right)^{2}", p.LaTeX())
	assert.Equal(t, 2, p.Exponent())
	assert.Equal(t, "x+1", p.Base().String())

	assert.Equal(t, "(x^2)^3", mustPow(t, mustPow(t, "x", 2), 3).String())
	assert.Equal(t, "(2x)^3", mustPow(t, algebra.MustTerm(2, "x"), 3).String())
}

func TestPowParallelExpansion(t *testing.T) {
	defer goleak.VerifyNone(t)

	prev := algebra.ParallelThreshold()
	t.Cleanup(func() { algebra.SetParallelThreshold(prev) })

	build := func() *algebra.Pow { return mustPow(t, mustAdd(t, "x", "y"), 6) }

	algebra.SetParallelThreshold(0)
	sequential := simplified(t, build())

	algebra.SetParallelThreshold(2)
	parallel := simplified(t, build())

	assert.Equal(t, sequential.String(), parallel.String())
	assert.True(t, sequential.Equal(parallel))
	assert.Equal(t, "x^6+6x^5y+15x^4y^2+20x^3y^3+15x^2y^4+6xy^5+y^6", parallel.String())
}

func TestPowErrorLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	prev := algebra.ParallelThreshold()
	t.Cleanup(func() { algebra.SetParallelThreshold(prev) })
	algebra.SetParallelThreshold(2)

	p := mustPow(t, mustAdd(t, mustDiv(t, "x", 0), 1), 3)
	assert.ErrorIs(t, p.Simplify(), algebra.ErrDivisionByZero)
}

func TestPowExponentOverflow(t *testing.T) {
	p := mustPow(t, mustPow(t, "x", math.MaxInt), 2)
	assert.ErrorIs(t, p.Simplify(), algebra.ErrUnsupportedExponent)
	assert.Equal(t, 2, p.Exponent())

	// MinInt × 2 wraps to 0, which must not read as x^0 = 1.
	p = mustPow(t, mustPow(t, "x", math.MinInt), 2)
	assert.ErrorIs(t, p.Simplify(), algebra.ErrUnsupportedExponent)

	p = mustPow(t, algebra.MustTerm(algebra.VarPow("x", math.MaxInt)), 2)
	assert.ErrorIs(t, p.Simplify(), algebra.ErrUnsupportedExponent)

	_, err := algebra.Simplify(mustMult(t, mustPow(t, "x", math.MaxInt), "x"))
	assert.ErrorIs(t, err, algebra.ErrUnsupportedExponent)
}

func TestPowMaxExponent(t *testing.T) {
	prev := algebra.MaxExponent()
	t.Cleanup(func() { algebra.SetMaxExponent(prev) })
	algebra.SetMaxExponent(10)

	for _, p := range []*algebra.Pow{
		mustPow(t, mustAdd(t, "x", 1), 11),
		mustPow(t, "x", -11),
		mustPow(t, mustPow(t, "x", 4), 3),
	} {
		assert.ErrorIs(t, p.Simplify(), algebra.ErrUnsupportedExponent, p.String())
	}

	v := simplified(t, mustPow(t, mustAdd(t, "x", 1), 10))
	assert.Len(t, v.(*algebra.Add).Terms(), 11)

	algebra.SetMaxExponent(0)
	require.NoError(t, mustPow(t, "x", 1<<20).Simplify())
}

func TestPowEqualIsSymmetric(t *testing.T) {
	p := mustPow(t, mustAdd(t, "x", 1), 2)
	padded := mustAdd(t, p, 0)
	assert.True(t, padded.Equal(p))
	assert.True(t, p.Equal(padded))

	q := mustPow(t, mustAdd(t, "x", 1), 3)
	assert.False(t, q.Equal(padded))
	assert.False(t, padded.Equal(q))
}

func TestIdempotence(t *testing.T) {
	cases := []func() algebra.Operation{
		func() algebra.Operation { return mustAdd(t, mustAdd(t, "x", 2), algebra.MustTerm(3, "x")) },
		func() algebra.Operation { return mustMult(t, mustAdd(t, "x", 1), mustSub(t, "x", "y")) },
		func() algebra.Operation { return mustDiv(t, mustAdd(t, "x", 1), mustAdd(t, "x", 2)) },
		func() algebra.Operation { return mustPow(t, mustSub(t, "x", 2), 4) },
		func() algebra.Operation { return mustMult(t, mustDiv(t, 1, mustAdd(t, "x", 1)), mustAdd(t, "y", 1)) },
	}
	for _, build := range cases {
		op := build()
		require.NoError(t, op.Simplify())
		once := op.Value()
		require.NoError(t, op.Simplify())
		twice := op.Value()
		assert.True(t, once.Equal(twice), "%s vs %s", once, twice)
		assert.Equal(t, once.String(), twice.String())
	}
}
