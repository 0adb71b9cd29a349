// Package explog implements the exponential and logarithm family: e, e**x,
// natural log, and the general power function built from both.
//
// Arguments are reduced before any series runs. exp splits its argument
// into an integer part handled by repeated squaring of e and a fractional
// remainder in [0, 1) fed to the Taylor series; log divides its argument
// into [1, e) while counting how many factors of e were removed. The series
// themselves terminate when the current term drops below the context
// epsilon, which is safe precisely because the reduced arguments are small.
package explog

import (
	"fmt"

	"github.com/cockroachdb/apd"

	"github.com/precisionkit/bigmath/internal/decctx"
	"github.com/precisionkit/bigmath/internal/ops/common"
)

// fastPathDigits gates the cached-literal shortcut for e.
const fastPathDigits = 40

// e40 is the process-wide cached constant, initialized before first use and
// read-only afterwards.
var e40 = common.MustParse("2.718281828459045235360287471352662497761")

// E returns Euler's constant, the base of the natural logarithm, at the
// precision in c. Requests at or below 40 digits round the cached literal
// down; larger requests evaluate the Taylor series of exp(1).
func E(c *apd.Context) (*apd.Decimal, error) {
	if c.Precision <= fastPathDigits {
		d := new(apd.Decimal)
		if _, err := c.Round(d, e40); err != nil {
			return nil, fmt.Errorf("e: %w", err)
		}
		return d, nil
	}
	return smallExp(apd.New(1, 0), c)
}

// Exp returns e**x.
//
// The integer part k of |x| is handled as E(c)**k by binary exponentiation
// and the fractional remainder goes through the series; a negative x takes
// the reciprocal at the end. Precision is expanded 1.2x while computing.
func Exp(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	if x.Sign() == 0 {
		return apd.New(1, 0), nil
	}

	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.2))
	e, err := E(wc)
	if err != nil {
		return nil, err
	}

	abs := common.Abs(x)
	integ := new(apd.Decimal)
	frac := new(apd.Decimal)
	abs.Modf(integ, frac)

	k, err := integ.Int64()
	if err != nil {
		return nil, fmt.Errorf("exp: integer part of %s out of range: %w", x, err)
	}

	intPart := new(apd.Decimal)
	if err := common.PowInt(wc, intPart, e, k); err != nil {
		return nil, fmt.Errorf("exp: %w", err)
	}
	fracPart, err := smallExp(frac, wc)
	if err != nil {
		return nil, err
	}

	out := new(apd.Decimal)
	ed := apd.MakeErrDecimal(wc)
	ed.Mul(out, intPart, fracPart)
	if x.Sign() < 0 {
		ed.Quo(out, apd.New(1, 0), out)
	}
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("exp: %w", err)
	}
	return out, nil
}

// smallExp sums the Taylor series for exp(x), x in [0, 1):
//
//	1 + x + x^2/2! + x^3/3! + ...
//
// This is the one series in the library that terminates on epsilon rather
// than a fixed iteration count, because its convergence rate depends on the
// magnitude of x; the argument reduction in Exp guarantees x is small.
func smallExp(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	if x.Sign() == 0 {
		return apd.New(1, 0), nil
	}

	eps := decctx.Epsilon(c)
	ed := apd.MakeErrDecimal(c)

	num := new(apd.Decimal).Set(x)
	den := apd.New(1, 0)
	term := new(apd.Decimal)
	sum := apd.New(1, 0)

	ed.Quo(term, num, den)
	for i := int64(1); term.Cmp(eps) > 0; i++ {
		ed.Quo(term, num, den)
		ed.Add(sum, sum, term)
		ed.Mul(den, den, apd.New(i+1, 0))
		ed.Mul(num, num, x)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("exp: %w", err)
		}
	}
	return sum, nil
}

// Log returns the natural logarithm of x. Non-positive arguments are a
// domain error.
//
// x is normalized into [1, e) by removing (or, below one, adding) whole
// factors of e, and the removed count joins the series value of the
// normalized remainder. Precision is expanded 1.5x while computing.
func Log(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	if x.Sign() <= 0 {
		return nil, fmt.Errorf("log: argument %s is not positive: %w", x, common.ErrDomain)
	}

	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.5))
	e, err := E(wc)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(wc)
	one := apd.New(1, 0)
	r := new(apd.Decimal).Set(x)
	intExp := apd.New(0, 0)

	for r.Cmp(e) > 0 {
		ed.Quo(r, r, e)
		ed.Add(intExp, intExp, one)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
	}
	// Subnormal arguments below one are scaled up instead.
	for r.Cmp(one) < 0 {
		ed.Mul(r, r, e)
		ed.Sub(intExp, intExp, one)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
	}

	tail, err := smallLog(r, wc)
	if err != nil {
		return nil, err
	}

	out := new(apd.Decimal)
	ed.Add(out, intExp, tail)
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return out, nil
}

// smallLog evaluates the atanh-based series for ln(x) on normalized
// x in [1, e):
//
//	t = (x-1)/(x+1);  ln(x) = 2 * (t + t^3/3 + t^5/5 + ...)
func smallLog(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	eps := decctx.Epsilon(c)
	ed := apd.MakeErrDecimal(c)
	one := apd.New(1, 0)

	num := new(apd.Decimal)
	den := new(apd.Decimal)
	ed.Sub(num, x, one)
	ed.Add(den, x, one)

	term := new(apd.Decimal)
	ed.Quo(term, num, den)

	sq := new(apd.Decimal)
	ed.Mul(sq, term, term)

	sum := new(apd.Decimal).Set(term)
	part := new(apd.Decimal)

	for k := int64(3); term.Cmp(eps) > 0; k += 2 {
		ed.Mul(term, term, sq)
		ed.Quo(part, term, apd.New(k, 0))
		ed.Add(sum, sum, part)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
	}

	ed.Add(sum, sum, sum)
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return sum, nil
}

// Pow returns x**y for non-negative x.
//
// Negative bases are rejected unconditionally, integer exponents included;
// callers that want (-x)**n apply the sign themselves. A zero base returns
// zero for any exponent. |y| is split into an exact integer part p and a
// fractional part f, giving x**p * exp(f * ln x), with a reciprocal for
// negative y.
func Pow(x, y *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("pow: negative base %s: %w", x, common.ErrDomain)
	}
	if x.Sign() == 0 {
		return apd.New(0, 0), nil
	}

	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.2))

	abs := common.Abs(y)
	integ := new(apd.Decimal)
	frac := new(apd.Decimal)
	abs.Modf(integ, frac)

	p, err := integ.Int64()
	if err != nil {
		return nil, fmt.Errorf("pow: integer part of %s out of range: %w", y, err)
	}

	intPart := new(apd.Decimal)
	if err := common.PowInt(wc, intPart, x, p); err != nil {
		return nil, fmt.Errorf("pow: %w", err)
	}

	lx, err := Log(x, wc)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(wc)
	fl := new(apd.Decimal)
	ed.Mul(fl, frac, lx)
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("pow: %w", err)
	}

	fracPart, err := Exp(fl, wc)
	if err != nil {
		return nil, err
	}

	out := new(apd.Decimal)
	ed.Mul(out, intPart, fracPart)
	if y.Sign() < 0 {
		ed.Quo(out, apd.New(1, 0), out)
	}
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("pow: %w", err)
	}
	return out, nil
}
