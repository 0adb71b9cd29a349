// Package invtrig implements the inverse trigonometric functions.
//
// Everything funnels through a quadrant-aware atan2: arcsine and arccosine
// rewrite their argument as a ratio against sqrt(1-z^2), and the
// single-argument arctangent is atan2 against a unit x. The internal atan
// shrinks its argument below a fixed half-angle threshold before the series
// runs, because the Leibniz-type series crawls near one.
package invtrig

import (
	"fmt"

	"github.com/cockroachdb/apd"

	"github.com/precisionkit/bigmath/internal/decctx"
	"github.com/precisionkit/bigmath/internal/ops/circle"
	"github.com/precisionkit/bigmath/internal/ops/common"
	"github.com/precisionkit/bigmath/internal/ops/roots"
)

// halfAngleThreshold is where the series argument gets shrunk with the
// half-angle identity. Past roughly 0.8 the series needs too many terms.
var halfAngleThreshold = common.MustParse("0.8")

// Atan2 returns the angle of the point (x, y), honoring the quadrant of
// both signs. The argument order follows convention: vertical component
// first. atan2(0, 0) is a domain error.
func Atan2(y, x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.2))

	switch {
	case x.Sign() == 0:
		if y.Sign() == 0 {
			return nil, fmt.Errorf("atan2: undefined for (0, 0): %w", common.ErrDomain)
		}
		pi, err := circle.Pi(wc)
		if err != nil {
			return nil, err
		}
		half := new(apd.Decimal)
		if _, err := wc.Mul(half, pi, apd.New(5, -1)); err != nil {
			return nil, fmt.Errorf("atan2: %w", err)
		}
		if y.Sign() < 0 {
			return common.Neg(half), nil
		}
		return half, nil

	case x.Sign() < 0:
		if y.Sign() == 0 {
			return apd.New(0, 0), nil
		}
		ratio := new(apd.Decimal)
		if _, err := wc.Quo(ratio, y, x); err != nil {
			return nil, fmt.Errorf("atan2: %w", err)
		}
		a, err := atan(ratio, wc)
		if err != nil {
			return nil, err
		}
		pi, err := circle.Pi(wc)
		if err != nil {
			return nil, err
		}
		out := new(apd.Decimal)
		if y.Sign() > 0 {
			_, err = wc.Add(out, a, pi)
		} else {
			_, err = wc.Sub(out, a, pi)
		}
		if err != nil {
			return nil, fmt.Errorf("atan2: %w", err)
		}
		return out, nil

	default:
		ratio := new(apd.Decimal)
		if _, err := wc.Quo(ratio, y, x); err != nil {
			return nil, fmt.Errorf("atan2: %w", err)
		}
		return atan(ratio, wc)
	}
}

// Asin returns the arcsine of z in [-pi/2, pi/2]. Arguments beyond the
// unit interval are a domain error; the endpoints return exact multiples
// of pi at the caller's precision.
func Asin(z *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	switch common.Abs(z).Cmp(apd.New(1, 0)) {
	case 1:
		return nil, fmt.Errorf("arcsin: |%s| exceeds 1: %w", z, common.ErrDomain)
	case 0:
		pi, err := circle.Pi(c)
		if err != nil {
			return nil, err
		}
		half := new(apd.Decimal)
		if _, err := c.Mul(half, pi, apd.New(5, -1)); err != nil {
			return nil, fmt.Errorf("arcsin: %w", err)
		}
		if z.Sign() < 0 {
			return common.Neg(half), nil
		}
		return half, nil
	}

	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.2))
	comp, err := complement(z, wc)
	if err != nil {
		return nil, fmt.Errorf("arcsin: %w", err)
	}
	return Atan2(z, comp, wc)
}

// Acos returns the arccosine of z in [0, pi]. Arguments beyond the unit
// interval are a domain error; z = 1 maps to an exact zero and z = -1 to
// pi at the caller's precision.
func Acos(z *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	switch common.Abs(z).Cmp(apd.New(1, 0)) {
	case 1:
		return nil, fmt.Errorf("arccos: |%s| exceeds 1: %w", z, common.ErrDomain)
	case 0:
		if z.Sign() > 0 {
			return apd.New(0, 0), nil
		}
		return circle.Pi(c)
	}

	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.2))
	comp, err := complement(z, wc)
	if err != nil {
		return nil, fmt.Errorf("arccos: %w", err)
	}
	return Atan2(comp, z, wc)
}

// Atan returns the single-argument arctangent of z in (-pi/2, pi/2).
func Atan(z *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	return Atan2(z, apd.New(1, 0), c)
}

// complement computes sqrt(1 - z^2) for |z| < 1.
func complement(z *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(c)
	sq := new(apd.Decimal)
	ed.Mul(sq, z, z)
	ed.Sub(sq, apd.New(1, 0), sq)
	if err := ed.Err(); err != nil {
		return nil, err
	}
	return roots.Sqrt(sq, c)
}

// atan handles finite arguments only; infinities arrive at Atan2 as a zero
// x component and never reach here. Negative arguments use oddness, large
// ones the complement identity, and arguments near one the half-angle
// shrink, so the series only ever sees [0, 0.8].
func atan(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	// atan(-x) = -atan(x)
	if x.Sign() < 0 {
		a, err := atan(common.Neg(x), c)
		if err != nil {
			return nil, err
		}
		return common.Neg(a), nil
	}

	one := apd.New(1, 0)
	ed := apd.MakeErrDecimal(c)

	// atan(x) = pi/2 - atan(1/x) for x > 1
	if x.Cmp(one) > 0 {
		inv := new(apd.Decimal)
		ed.Quo(inv, one, x)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("atan: %w", err)
		}
		a, err := atan(inv, c)
		if err != nil {
			return nil, err
		}
		pi, err := circle.Pi(c)
		if err != nil {
			return nil, err
		}
		out := new(apd.Decimal)
		ed.Mul(out, pi, apd.New(5, -1))
		ed.Sub(out, out, a)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("atan: %w", err)
		}
		return out, nil
	}

	// atan(x) = 2*atan(x / (sqrt(1+x^2) + 1)) shrinks arguments near one,
	// where the series alone converges too slowly.
	if x.Cmp(halfAngleThreshold) > 0 {
		sq := new(apd.Decimal)
		ed.Mul(sq, x, x)
		ed.Add(sq, sq, one)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("atan: %w", err)
		}
		den, err := roots.Sqrt(sq, c)
		if err != nil {
			return nil, err
		}
		ed.Add(den, den, one)
		shrunk := new(apd.Decimal)
		ed.Quo(shrunk, x, den)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("atan: %w", err)
		}
		a, err := atan(shrunk, c)
		if err != nil {
			return nil, err
		}
		out := new(apd.Decimal)
		ed.Add(out, a, a)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("atan: %w", err)
		}
		return out, nil
	}

	return atanSeries(x, c)
}

// atanSeries sums the alternating series
//
//	x - x^3/3 + x^5/5 - ...
//
// for normalized x in [0, 0.8], stopping once the current term falls below
// the context epsilon.
func atanSeries(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	eps := decctx.Epsilon(c)
	ed := apd.MakeErrDecimal(c)

	negSq := new(apd.Decimal)
	ed.Mul(negSq, x, x)
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("atan: %w", err)
	}
	negSq.Coeff.Neg(&negSq.Coeff)

	num := new(apd.Decimal).Set(x)
	term := new(apd.Decimal)
	sum := apd.New(0, 0)

	for i := int64(1); ; i += 2 {
		ed.Quo(term, num, apd.New(i, 0))
		ed.Mul(num, num, negSq)
		ed.Add(sum, sum, term)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("atan: %w", err)
		}
		if common.Abs(term).Cmp(eps) <= 0 {
			return sum, nil
		}
	}
}
