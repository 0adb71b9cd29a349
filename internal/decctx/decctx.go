// Package decctx derives working precision contexts and convergence
// thresholds from a caller-supplied apd.Context.
//
// Every function in this library computes with a few more digits than the
// caller asked for, so that intermediate rounding error is absorbed before
// the final result is rounded back down. The helpers here centralize that
// discipline:
//   - Expand: a new context with higher precision and the same rounding mode
//   - Scaled: multiplicative precision growth (1.2x, 1.5x)
//   - Epsilon: the series/iteration termination threshold for a context
package decctx

import "github.com/cockroachdb/apd"

// Expand returns a copy of c with the given precision and the same rounding
// mode. Callers pass a precision at least as large as c.Precision; this is
// a convention, not enforced here.
func Expand(c *apd.Context, precision uint32) *apd.Context {
	return c.WithPrecision(precision)
}

// Scaled returns precision multiplied by factor, truncated. Used to derive
// the working precision of the exponential (1.2x) and logarithm (1.5x)
// engines.
func Scaled(precision uint32, factor float64) uint32 {
	return uint32(float64(precision) * factor)
}

// Epsilon returns the convergence threshold 1e-(precision+1) for c. A
// series or iteration whose current term is below this value has converged
// at the context's precision. The value is recomputed per call and never
// cached.
func Epsilon(c *apd.Context) *apd.Decimal {
	return apd.New(1, -(int32(c.Precision) + 1))
}
