package algebra

import "errors"

var (
	// ErrInvalidFactor is returned when a constructor receives an input it
	// cannot turn into a coefficient, variable or operand.
	ErrInvalidFactor = errors.New("algebra: invalid factor")

	// ErrIncompatibleTerms is returned when two terms that are not like
	// terms are combined by addition.
	ErrIncompatibleTerms = errors.New("algebra: incompatible terms")

	// ErrUnsupportedExponent is returned for non-integer exponents and for
	// negative powers of a sum. It also reports exponents that overflow an
	// int or exceed the limit set by SetMaxExponent.
	ErrUnsupportedExponent = errors.New("algebra: unsupported exponent")

	// ErrDivisionByZero is returned when a divisor reduces to zero.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrInvalidArgument is returned for malformed arguments, such as a
	// non-integer choose(n, k) or an equation with no unknowns.
	ErrInvalidArgument = errors.New("algebra: invalid argument")
)
