// Package bigmath evaluates elementary functions (roots, exponentials,
// logarithms, powers, the circle constant, and the basic and inverse
// trigonometric functions) over arbitrary-precision decimals, with every
// result correctly rounded to the caller's requested number of significant
// digits.
//
// All computation is delegated to the internal engines; this package is
// pure dispatch plus a final rounding step into the caller's context.
// Functions never mutate their operands, hold no state between calls
// beyond two immutable cached constants, and are safe for concurrent use.
//
// Failures are domain errors (negative radicand, log of a non-positive
// value, tan at an odd multiple of π/2, and so on). Test with
// errors.Is(err, bigmath.ErrDomain).
package bigmath

import (
	"github.com/cockroachdb/apd"

	"github.com/precisionkit/bigmath/internal/ops/circle"
	"github.com/precisionkit/bigmath/internal/ops/common"
	"github.com/precisionkit/bigmath/internal/ops/explog"
	"github.com/precisionkit/bigmath/internal/ops/invtrig"
	"github.com/precisionkit/bigmath/internal/ops/roots"
	"github.com/precisionkit/bigmath/internal/ops/trig"
)

// ErrDomain is the sentinel wrapped by every domain failure.
var ErrDomain = common.ErrDomain

// NewContext returns an evaluation context with the given number of
// significant digits and half-even rounding.
func NewContext(precision uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(precision)
	c.Rounding = apd.RoundHalfEven
	return c
}

// ParseDecimal parses a decimal from its string form.
func ParseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	return d, err
}

// MustParse parses a decimal literal, panicking on malformed input.
func MustParse(s string) *apd.Decimal {
	return common.MustParse(s)
}

// rounded brings an internally computed value, which may carry extra
// working digits, back to the caller's context.
func rounded(d *apd.Decimal, err error, c *apd.Context) (*apd.Decimal, error) {
	if err != nil {
		return nil, err
	}
	out := new(apd.Decimal)
	if _, err := c.Round(out, d); err != nil {
		return nil, err
	}
	return out, nil
}

// Sqrt returns the principal square root of x.
func Sqrt(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := roots.Sqrt(x, c)
	return rounded(d, err, c)
}

// Root returns the principal n-th root of x for n ≥ 2.
func Root(x *apd.Decimal, n int, c *apd.Context) (*apd.Decimal, error) {
	d, err := roots.PrincipalRoot(x, n, c)
	return rounded(d, err, c)
}

// Pi returns the circle constant at the context's precision.
func Pi(c *apd.Context) (*apd.Decimal, error) {
	d, err := circle.Pi(c)
	return rounded(d, err, c)
}

// E returns the base of the natural logarithm at the context's precision.
func E(c *apd.Context) (*apd.Decimal, error) {
	d, err := explog.E(c)
	return rounded(d, err, c)
}

// Exp returns e raised to x.
func Exp(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := explog.Exp(x, c)
	return rounded(d, err, c)
}

// Log returns the natural logarithm of x for x > 0.
func Log(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := explog.Log(x, c)
	return rounded(d, err, c)
}

// Pow returns x raised to y for x ≥ 0.
func Pow(x, y *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := explog.Pow(x, y, c)
	return rounded(d, err, c)
}

// Sin returns the sine of x (radians).
func Sin(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	s, _, err := trig.SinCos(x, c)
	return rounded(s, err, c)
}

// Cos returns the cosine of x (radians).
func Cos(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	_, cs, err := trig.SinCos(x, c)
	return rounded(cs, err, c)
}

// SinCos returns the sine and cosine of x in one evaluation; the shared
// series makes the pair cheaper than two separate calls.
func SinCos(x *apd.Decimal, c *apd.Context) (sin, cos *apd.Decimal, err error) {
	s, cs, err := trig.SinCos(x, c)
	if err != nil {
		return nil, nil, err
	}
	if sin, err = rounded(s, nil, c); err != nil {
		return nil, nil, err
	}
	if cos, err = rounded(cs, nil, c); err != nil {
		return nil, nil, err
	}
	return sin, cos, nil
}

// Tan returns the tangent of x; x at an odd multiple of π/2 is a domain
// error.
func Tan(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := trig.Tan(x, c)
	return rounded(d, err, c)
}

// Asin returns the arcsine of z for |z| ≤ 1, in [−π/2, π/2].
func Asin(z *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := invtrig.Asin(z, c)
	return rounded(d, err, c)
}

// Acos returns the arccosine of z for |z| ≤ 1, in [0, π].
func Acos(z *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := invtrig.Acos(z, c)
	return rounded(d, err, c)
}

// Atan returns the arctangent of z, in (−π/2, π/2).
func Atan(z *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := invtrig.Atan(z, c)
	return rounded(d, err, c)
}

// Atan2 returns the quadrant-aware angle of the point (x, y); both
// arguments zero is a domain error.
func Atan2(y, x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	d, err := invtrig.Atan2(y, x, c)
	return rounded(d, err, c)
}
