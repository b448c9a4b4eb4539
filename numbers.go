package algebra

import (
	"fmt"
	"math"
	"math/big"
)

func ratOne() *big.Rat { return big.NewRat(1, 1) }

// toRat converts a numeric literal into an exact rational.
func toRat(x any) (*big.Rat, bool) {
	switch v := x.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(v)), true
	case int8:
		return new(big.Rat).SetInt64(int64(v)), true
	case int16:
		return new(big.Rat).SetInt64(int64(v)), true
	case int32:
		return new(big.Rat).SetInt64(int64(v)), true
	case int64:
		return new(big.Rat).SetInt64(v), true
	case uint:
		return new(big.Rat).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Rat).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Rat).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Rat).SetUint64(v), true
	case float32:
		return floatRat(float64(v))
	case float64:
		return floatRat(v)
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return new(big.Rat).SetInt(v), true
	case *big.Rat:
		if v == nil {
			return nil, false
		}
		return new(big.Rat).Set(v), true
	}
	return nil, false
}

func floatRat(f float64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return new(big.Rat).SetFloat64(f), true
}

// toInteger accepts any numeric literal whose value is a whole number that
// fits in an int.
func toInteger(x any) (int, bool) {
	r, ok := toRat(x)
	if !ok {
		return 0, false
	}
	return ratInt(r)
}

func ratInt(r *big.Rat) (int, bool) {
	if !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	n := r.Num().Int64()
	if int64(int(n)) != n {
		return 0, false
	}
	return int(n), true
}

// mulExp and addExp are exponent arithmetic that fails instead of wrapping.
func mulExp(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, fmt.Errorf("%w: %d × %d overflows", ErrUnsupportedExponent, a, b)
	}
	return r, nil
}

func addExp(a, b int) (int, error) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, fmt.Errorf("%w: %d + %d overflows", ErrUnsupportedExponent, a, b)
	}
	return r, nil
}

// ratPow raises r to an integer power. 0^0 is 1.
func ratPow(r *big.Rat, n int) (*big.Rat, error) {
	if n == 0 {
		return ratOne(), nil
	}
	base := new(big.Rat).Set(r)
	if n < 0 {
		if base.Sign() == 0 {
			return nil, fmt.Errorf("%w: 0 raised to %d", ErrDivisionByZero, n)
		}
		base.Inv(base)
		n = -n
	}
	e := big.NewInt(int64(n))
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	return new(big.Rat).SetFrac(num, den), nil
}

func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

func ratLaTeX(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(r)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}
