// Package trig evaluates sine, cosine, and tangent at arbitrary precision.
//
// Sine and cosine share one Taylor series: their terms are the same powers
// of x over factorials, routed to one accumulator or the other by the term
// index mod 4. Range reduction brings any argument into [0, pi/2) first,
// where the series converges quickly.
package trig

import (
	"fmt"

	"github.com/cockroachdb/apd"

	"github.com/precisionkit/bigmath/internal/decctx"
	"github.com/precisionkit/bigmath/internal/ops/circle"
	"github.com/precisionkit/bigmath/internal/ops/common"
)

// SinCos returns sin(x) and cos(x) evaluated together. It works for all
// finite x; the results carry two guard digits beyond c.
//
// Reduction is recursive: negative arguments and arguments beyond one turn
// are folded into [0, 2*pi) with a single modular step, then the half-turn
// and quarter-turn identities bring the argument into [0, pi/2).
func SinCos(x *apd.Decimal, c *apd.Context) (sin, cos *apd.Decimal, err error) {
	pi, err := circle.Pi(c)
	if err != nil {
		return nil, nil, err
	}

	ed := apd.MakeErrDecimal(c)
	twoPi := new(apd.Decimal)
	ed.Add(twoPi, pi, pi)
	if err := ed.Err(); err != nil {
		return nil, nil, fmt.Errorf("sincos: %w", err)
	}

	// One modular step instead of one period at a time, so very negative
	// arguments cost a single remainder.
	if x.Sign() < 0 || x.Cmp(twoPi) >= 0 {
		rem, err := reduce(x, twoPi, c)
		if err != nil {
			return nil, nil, err
		}
		return SinCos(rem, c)
	}

	// sin/cos(pi + x) = -sin/cos(x)
	if x.Cmp(pi) >= 0 {
		shift := new(apd.Decimal)
		ed.Sub(shift, x, pi)
		if err := ed.Err(); err != nil {
			return nil, nil, fmt.Errorf("sincos: %w", err)
		}
		s, co, err := SinCos(shift, c)
		if err != nil {
			return nil, nil, err
		}
		return common.Neg(s), common.Neg(co), nil
	}

	halfPi := new(apd.Decimal)
	ed.Mul(halfPi, pi, apd.New(5, -1))
	if err := ed.Err(); err != nil {
		return nil, nil, fmt.Errorf("sincos: %w", err)
	}

	// sin/cos(pi/2 + x) = cos/-sin(x)
	if x.Cmp(halfPi) >= 0 {
		shift := new(apd.Decimal)
		ed.Sub(shift, x, halfPi)
		if err := ed.Err(); err != nil {
			return nil, nil, fmt.Errorf("sincos: %w", err)
		}
		s, co, err := SinCos(shift, c)
		if err != nil {
			return nil, nil, err
		}
		return co, common.Neg(s), nil
	}

	return sinCosSeries(x, decctx.Expand(c, c.Precision+2))
}

// reduce folds x into [0, 2*pi) in a context wide enough to represent the
// integral quotient of x by one turn; without the widening, apd refuses
// remainders whose quotient needs more digits than the precision allows.
func reduce(x, twoPi *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	adj := x.NumDigits() + int64(x.Exponent)
	if adj < 0 {
		adj = 0
	}
	rc := decctx.Expand(c, c.Precision+uint32(adj)+2)

	rem := new(apd.Decimal)
	if _, err := rc.Rem(rem, x, twoPi); err != nil {
		return nil, fmt.Errorf("sincos: range reduction: %w", err)
	}
	if rem.Sign() < 0 {
		if _, err := rc.Add(rem, rem, twoPi); err != nil {
			return nil, fmt.Errorf("sincos: range reduction: %w", err)
		}
	}
	return rem, nil
}

// sinCosSeries accepts only range-reduced x in [0, pi/2). Both sums share
// the running term t_i = t_{i-1} * x / i; the index mod 4 decides which
// accumulator takes it and with which sign.
func sinCosSeries(x *apd.Decimal, c *apd.Context) (*apd.Decimal, *apd.Decimal, error) {
	eps := decctx.Epsilon(c)
	ed := apd.MakeErrDecimal(c)

	term := apd.New(1, 0)
	sin := apd.New(0, 0)
	cos := apd.New(1, 0)

	for i := int64(1); ; i++ {
		ed.Mul(term, term, x)
		ed.Quo(term, term, apd.New(i, 0))
		switch i % 4 {
		case 0:
			ed.Add(cos, cos, term)
		case 1:
			ed.Add(sin, sin, term)
		case 2:
			ed.Sub(cos, cos, term)
		case 3:
			ed.Sub(sin, sin, term)
		}
		if err := ed.Err(); err != nil {
			return nil, nil, fmt.Errorf("sincos: %w", err)
		}
		if common.Abs(term).Cmp(eps) <= 0 {
			return sin, cos, nil
		}
	}
}

// Tan returns tan(x) as sin(x)/cos(x), both rounded to a context expanded
// 1.2x before the division. Arguments at odd multiples of pi/2, where the
// cosine vanishes, are a domain error.
func Tan(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	if x.Sign() == 0 {
		return apd.New(0, 0), nil
	}

	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.2))
	pi, err := circle.Pi(wc)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(wc)
	halfPi := new(apd.Decimal)
	ed.Mul(halfPi, pi, apd.New(5, -1))
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("tan: %w", err)
	}

	adj := x.NumDigits() + int64(x.Exponent)
	if adj < 0 {
		adj = 0
	}
	rc := decctx.Expand(wc, wc.Precision+uint32(adj)+2)
	rem := new(apd.Decimal)
	if _, err := rc.Rem(rem, x, halfPi); err != nil {
		return nil, fmt.Errorf("tan: %w", err)
	}
	if rem.Sign() == 0 {
		return nil, fmt.Errorf("tan: undefined at odd multiples of pi/2: %w", common.ErrDomain)
	}

	sin, cos, err := SinCos(x, wc)
	if err != nil {
		return nil, err
	}

	if _, err := wc.Round(sin, sin); err != nil {
		return nil, fmt.Errorf("tan: %w", err)
	}
	if _, err := wc.Round(cos, cos); err != nil {
		return nil, fmt.Errorf("tan: %w", err)
	}
	out := new(apd.Decimal)
	if _, err := wc.Quo(out, sin, cos); err != nil {
		return nil, fmt.Errorf("tan: %w", err)
	}
	return out, nil
}
