// Package testutil provides decimal assertion helpers and random value
// generators shared by the function-engine tests.
package testutil

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/require"
)

// MustParse parses a decimal literal, failing the test on bad input.
func MustParse(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err, "parsing %q", s)
	return d
}

// RequireClose asserts that |got - want| <= tol. Computed results carry
// guard digits beyond the requested precision, so closeness against a
// longer reference literal is the right check; exact string equality is
// not, because apd preserves trailing digits of the working context.
func RequireClose(t *testing.T, got *apd.Decimal, want, tol string) {
	t.Helper()
	require.NotNil(t, got)

	w := MustParse(t, want)
	eps := MustParse(t, tol)

	c := apd.BaseContext.WithPrecision(200)
	diff := new(apd.Decimal)
	_, err := c.Sub(diff, got, w)
	require.NoError(t, err)
	diff.Coeff.Abs(&diff.Coeff)

	require.True(t, diff.Cmp(eps) <= 0,
		"got %s, want %s within %s (diff %s)", got, want, tol, diff)
}

// RequireEqual asserts got == want as decimal values, ignoring
// representation (trailing zeros, exponent form).
func RequireEqual(t *testing.T, got *apd.Decimal, want string) {
	t.Helper()
	require.NotNil(t, got)
	w := MustParse(t, want)
	require.Zero(t, got.Cmp(w), "got %s, want %s", got, want)
}

// RangedValue returns a decimal in [lower, upper), linearly placed by a
// random float64 fraction.
func RangedValue(t *testing.T, rng *rand.Rand, lower, upper string) *apd.Decimal {
	t.Helper()
	lo := MustParse(t, lower)
	hi := MustParse(t, upper)

	c := apd.BaseContext.WithPrecision(40)
	ed := apd.MakeErrDecimal(c)

	diff := new(apd.Decimal)
	ed.Sub(diff, hi, lo)

	frac := new(apd.Decimal)
	_, _, err := frac.SetString(big.NewFloat(rng.Float64()).Text('f', 20))
	require.NoError(t, err)

	out := new(apd.Decimal)
	ed.Mul(out, diff, frac)
	ed.Add(out, out, lo)
	require.NoError(t, ed.Err())
	return out
}

// ScaledPositive returns a small positive coefficient with a random scale
// whose magnitude is below scaleLimit. It may return zero, matching the
// contract of crypto-free random big integers.
func ScaledPositive(rng *rand.Rand, bitCount, scaleLimit int) *apd.Decimal {
	coeff := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(bitCount)))
	scale := rng.Intn(scaleLimit)
	if rng.Intn(2) == 0 {
		scale = -scale
	}
	return apd.NewWithBigInt(coeff, int32(scale))
}
