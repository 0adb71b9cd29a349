// Package circle generates the circle constant pi at arbitrary precision
// with the Gauss-Legendre arithmetic-geometric mean iteration.
package circle

import (
	"fmt"

	"github.com/cockroachdb/apd"

	"github.com/precisionkit/bigmath/internal/decctx"
	"github.com/precisionkit/bigmath/internal/ops/common"
	"github.com/precisionkit/bigmath/internal/ops/roots"
)

// fastPathDigits gates the cached-literal shortcut. It deliberately mirrors
// the 40-digit gate of the e constant: requests at or below 40 digits are
// served by rounding the literal down.
const fastPathDigits = 40

// pi40 is the process-wide cached constant. It is initialized before first
// use and never written afterwards, so unsynchronized concurrent reads are
// safe.
var pi40 = common.MustParse("3.141592653589793238462643383279502884197")

// Pi computes pi rounded to the precision in c.
//
// Above the fast path it runs the AGM iteration with one extra working
// digit: a=1, b=1/sqrt(2), t=1/4, p=1; each step takes the arithmetic and
// geometric means of a and b and updates t and p, converging quadratically
// (roughly log2(precision) steps). The result is (a+b)^2 / (4t) rounded to
// the caller's unexpanded context.
func Pi(c *apd.Context) (*apd.Decimal, error) {
	if c.Precision <= fastPathDigits {
		d := new(apd.Decimal)
		if _, err := c.Round(d, pi40); err != nil {
			return nil, fmt.Errorf("pi: %w", err)
		}
		return d, nil
	}

	wc := decctx.Expand(c, c.Precision+1)
	eps := decctx.Epsilon(wc)
	ed := apd.MakeErrDecimal(wc)

	a := apd.New(1, 0)
	b, err := roots.Sqrt(apd.New(2, 0), wc)
	if err != nil {
		return nil, fmt.Errorf("pi: %w", err)
	}
	// Root results carry extra guard digits; a and b must live at the
	// same precision or the |a-b| fixed point never reaches epsilon.
	if _, err := wc.Round(b, b); err != nil {
		return nil, fmt.Errorf("pi: %w", err)
	}
	ed.Quo(b, apd.New(1, 0), b)
	t := apd.New(25, -2)
	p := apd.New(1, 0)

	half := apd.New(5, -1)
	am := new(apd.Decimal)
	diff := new(apd.Decimal)
	prod := new(apd.Decimal)

	for {
		ed.Sub(diff, a, b)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("pi: %w", err)
		}
		if common.Abs(diff).Cmp(eps) <= 0 {
			break
		}

		ed.Add(am, a, b)
		ed.Mul(am, am, half)

		ed.Mul(prod, a, b)
		gm, err := roots.Sqrt(prod, wc)
		if err != nil {
			return nil, fmt.Errorf("pi: %w", err)
		}
		if _, err := wc.Round(gm, gm); err != nil {
			return nil, fmt.Errorf("pi: %w", err)
		}

		// t -= p * (A.M. - a)^2, against the pre-update a.
		ed.Sub(diff, am, a)
		ed.Mul(diff, diff, diff)
		ed.Mul(diff, diff, p)
		ed.Sub(t, t, diff)

		ed.Add(p, p, p)
		a.Set(am)
		b.Set(gm)
	}

	sum := new(apd.Decimal)
	ed.Add(sum, a, b)
	ed.Mul(sum, sum, sum)

	den := new(apd.Decimal)
	ed.Mul(den, t, apd.New(4, 0))
	if err := ed.Err(); err != nil {
		return nil, fmt.Errorf("pi: %w", err)
	}

	out := new(apd.Decimal)
	if _, err := c.Quo(out, sum, den); err != nil {
		return nil, fmt.Errorf("pi: %w", err)
	}
	return out, nil
}
