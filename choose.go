package algebra

import (
	"fmt"
	"math/big"
)

// Choose returns the binomial coefficient C(n, k) exactly. n and k may be
// any numeric type but must hold non-negative whole numbers; otherwise it
// fails with ErrInvalidArgument.
func Choose(n, k any) (*big.Int, error) {
	nn, ok := toInteger(n)
	if !ok || nn < 0 {
		return nil, fmt.Errorf("%w: choose n=%v", ErrInvalidArgument, n)
	}
	kk, ok := toInteger(k)
	if !ok || kk < 0 {
		return nil, fmt.Errorf("%w: choose k=%v", ErrInvalidArgument, k)
	}
	return binomial(nn, kk), nil
}

// binomial computes C(n, k) as (n-k+1)···n / k!.
func binomial(n, k int) *big.Int {
	switch {
	case k > n:
		return big.NewInt(0)
	case k == 0 || k == n:
		return big.NewInt(1)
	case k == 1:
		return big.NewInt(int64(n))
	}
	num := rangeProduct(int64(n-k+1), int64(n))
	den := rangeProduct(1, int64(k))
	return num.Quo(num, den)
}

// rangeProduct returns lo × (lo+1) × ... × hi, or 1 for an empty range.
func rangeProduct(lo, hi int64) *big.Int {
	if lo > hi {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(lo, hi)
}
