// Package roots computes principal n-th roots by Newton-Raphson iteration.
//
// The iteration count is fixed up front from the quadratic convergence rate
// of Newton's method rather than tested against an epsilon: every pass
// roughly doubles the number of correct digits, so log2 of the working
// precision passes suffice from an order-of-magnitude seed.
package roots

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/cockroachdb/apd"

	"github.com/precisionkit/bigmath/internal/decctx"
	"github.com/precisionkit/bigmath/internal/ops/common"
)

// Sqrt returns the principal square root of x.
func Sqrt(x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
	return PrincipalRoot(x, 2, c)
}

// PrincipalRoot returns the unique non-negative n-th root of the
// non-negative value a. The result carries n digits more than c requests;
// callers that need exactly c.Precision digits round it down themselves.
//
// n below 2 and negative radicands are domain errors.
func PrincipalRoot(a *apd.Decimal, n int, c *apd.Context) (*apd.Decimal, error) {
	if n < 2 {
		return nil, fmt.Errorf("root: n must be at least 2, got %d: %w", n, common.ErrDomain)
	}
	// Quick exits
	if a.Sign() == 0 {
		return apd.New(0, 0), nil
	}
	if a.Sign() < 0 {
		return nil, fmt.Errorf("root: negative radicand %s: %w", a, common.ErrDomain)
	}
	if a.Cmp(apd.New(1, 0)) == 0 {
		return apd.New(1, 0), nil
	}
	return nthRoot(a, n, c)
}

// nthRoot runs Newton-Raphson on f(x) = x^n - a for a verified positive a:
//
//	x <- x + (a/x^(n-1) - x) / n
//
// in a context expanded by n extra digits.
func nthRoot(a *apd.Decimal, n int, c0 *apd.Context) (*apd.Decimal, error) {
	newPrecision := c0.Precision + uint32(n)
	c := decctx.Expand(c0, newPrecision)

	// Each pass doubles the correct digits, so this fixed limit guarantees
	// convergence without a comparison-based stopping rule.
	limit := n * n * (bits.Len(uint(newPrecision)) - 1) / 2

	x := seed(a, n)
	nDec := apd.New(int64(n), 0)
	pow := new(apd.Decimal)
	delta := new(apd.Decimal)
	ed := apd.MakeErrDecimal(c)

	for i := 0; i < limit; i++ {
		if err := common.PowInt(c, pow, x, int64(n-1)); err != nil {
			return nil, fmt.Errorf("root: %w", err)
		}
		ed.Quo(delta, a, pow)
		ed.Sub(delta, delta, x)
		ed.Quo(delta, delta, nDec)
		ed.Add(x, x, delta)
		if err := ed.Err(); err != nil {
			return nil, fmt.Errorf("root: %w", err)
		}
	}

	if _, err := c.Round(x, x); err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	return x, nil
}

// seed builds an order-of-magnitude initial guess: the coefficient keeps
// only the top 1/n of its bits and the decimal exponent is divided by n.
// The coefficient always retains at least one bit, so the guess is nonzero.
func seed(a *apd.Decimal, n int) *apd.Decimal {
	m := new(big.Int).Abs(&a.Coeff)
	shift := m.BitLen() * (n - 1) / n
	m.Rsh(m, uint(shift))
	return apd.NewWithBigInt(m, a.Exponent/int32(n))
}
