// Package common holds the pieces shared by every function engine: the
// domain error sentinel, sign helpers for apd decimals, and context-rounded
// integer exponentiation.
package common

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd"
)

// ErrDomain is the sentinel wrapped by every input-dependent failure in the
// library: negative radicands, non-positive logarithm arguments, tangent at
// odd multiples of pi/2, and so on. Domain errors are deterministic and
// non-retryable; there are no transient failures anywhere in the library.
var ErrDomain = errors.New("argument outside function domain")

// Abs returns a freshly allocated |x|.
func Abs(x *apd.Decimal) *apd.Decimal {
	a := new(apd.Decimal).Set(x)
	a.Coeff.Abs(&a.Coeff)
	return a
}

// Neg returns a freshly allocated -x.
func Neg(x *apd.Decimal) *apd.Decimal {
	n := new(apd.Decimal).Set(x)
	n.Coeff.Neg(&n.Coeff)
	return n
}

// PowInt sets d to x**n rounded to c, using binary exponentiation so each
// squaring is rounded at the context's precision. n must be non-negative;
// PowInt(c, d, x, 0) sets d to 1.
func PowInt(c *apd.Context, d, x *apd.Decimal, n int64) error {
	if n < 0 {
		return fmt.Errorf("powint: negative exponent %d", n)
	}
	acc := apd.New(1, 0)
	base := new(apd.Decimal).Set(x)
	ed := apd.MakeErrDecimal(c)
	for n > 0 {
		if n&1 == 1 {
			ed.Mul(acc, acc, base)
		}
		n >>= 1
		if n > 0 {
			ed.Mul(base, base, base)
		}
	}
	if err := ed.Err(); err != nil {
		return fmt.Errorf("powint: %w", err)
	}
	d.Set(acc)
	return nil
}

// MustParse parses a decimal literal and panics on failure. Reserved for
// package-level constants whose text is fixed at compile time.
func MustParse(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("common: invalid decimal literal %q: %v", s, err))
	}
	return d
}
