package explog

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/precisionkit/bigmath/internal/ops/common"
	"github.com/precisionkit/bigmath/internal/testutil"
)

func ctx(prec uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(prec)
	c.Rounding = apd.RoundHalfEven
	return c
}

func TestECachedLiteral(t *testing.T) {
	got, err := E(ctx(40))
	require.NoError(t, err)
	testutil.RequireEqual(t, got, "2.718281828459045235360287471352662497761")
}

func TestELowPrecision(t *testing.T) {
	got, err := E(ctx(10))
	require.NoError(t, err)
	testutil.RequireEqual(t, got, "2.718281828")
}

func TestESeries(t *testing.T) {
	// Beyond 40 digits the Taylor series takes over.
	got, err := E(ctx(60))
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"2.71828182845904523536028747135266249775724709369995957496697", "1e-57")
}

func TestExpZero(t *testing.T) {
	got, err := Exp(testutil.MustParse(t, "0"), ctx(30))
	require.NoError(t, err)
	testutil.RequireEqual(t, got, "1")
}

func TestExpSmall(t *testing.T) {
	got, err := Exp(testutil.MustParse(t, "0.5"), ctx(40))
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"1.64872127070012814684865078781416357165", "1e-36")
}

func TestExpSplitsIntegerPart(t *testing.T) {
	// 2.5 exercises both the repeated-squaring path and the series.
	got, err := Exp(testutil.MustParse(t, "2.5"), ctx(40))
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"12.18249396070347343807017595116796618318", "1e-34")
}

func TestExpNegative(t *testing.T) {
	got, err := Exp(testutil.MustParse(t, "-1"), ctx(40))
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"0.3678794411714423215955237701614608674458", "1e-36")
}

func TestLogDomainErrors(t *testing.T) {
	for _, arg := range []string{"0", "-5", "-0.001"} {
		_, err := Log(testutil.MustParse(t, arg), ctx(30))
		require.Error(t, err, "log(%s)", arg)
		assert.True(t, errors.Is(err, common.ErrDomain))
	}
}

func TestLogKnownValues(t *testing.T) {
	c := ctx(40)

	got, err := Log(testutil.MustParse(t, "1"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got, "0", "1e-38")

	got, err = Log(testutil.MustParse(t, "2"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"0.6931471805599453094172321214581765680755", "1e-37")

	// An argument below one goes through the scale-up branch.
	got, err = Log(testutil.MustParse(t, "0.1"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"-2.302585092994045684017991454684364207601", "1e-36")
}

func TestLogExpRoundTrip(t *testing.T) {
	c := ctx(45)
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 12; trial++ {
		x := testutil.RangedValue(t, rng, "-5", "5")

		ex, err := Exp(x, c)
		require.NoError(t, err)
		back, err := Log(ex, c)
		require.NoError(t, err)

		diff := new(apd.Decimal)
		_, err = c.Sub(diff, back, x)
		require.NoError(t, err)
		diff.Coeff.Abs(&diff.Coeff)
		assert.True(t, diff.Cmp(apd.New(1, -40)) <= 0,
			"log(exp(%s)) = %s, diff %s", x, back, diff)
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	c := ctx(45)
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 12; trial++ {
		x := testutil.RangedValue(t, rng, "0.01", "1000")
		if x.Sign() <= 0 {
			continue
		}

		lx, err := Log(x, c)
		require.NoError(t, err)
		back, err := Exp(lx, c)
		require.NoError(t, err)

		// Relative agreement at the requested precision.
		diff := new(apd.Decimal)
		_, err = c.Sub(diff, back, x)
		require.NoError(t, err)
		diff.Coeff.Abs(&diff.Coeff)

		bound := new(apd.Decimal)
		_, err = c.Mul(bound, common.Abs(x), apd.New(1, -40))
		require.NoError(t, err)
		assert.True(t, diff.Cmp(bound) <= 0,
			"exp(log(%s)) = %s, diff %s", x, back, diff)
	}
}

func TestPowDomainAndEdges(t *testing.T) {
	c := ctx(30)

	_, err := Pow(testutil.MustParse(t, "-2"), testutil.MustParse(t, "2"), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDomain),
		"negative bases are rejected even for integer exponents")

	got, err := Pow(testutil.MustParse(t, "0"), testutil.MustParse(t, "3.7"), c)
	require.NoError(t, err)
	testutil.RequireEqual(t, got, "0")
}

func TestPowKnownValues(t *testing.T) {
	c := ctx(40)

	got, err := Pow(testutil.MustParse(t, "2"), testutil.MustParse(t, "10"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got, "1024", "1e-33")

	got, err = Pow(testutil.MustParse(t, "4"), testutil.MustParse(t, "0.5"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got, "2", "1e-35")

	got, err = Pow(testutil.MustParse(t, "10"), testutil.MustParse(t, "-1"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got, "0.1", "1e-37")

	got, err = Pow(testutil.MustParse(t, "2"), testutil.MustParse(t, "1.5"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"2.828427124746190097603377448419396157139", "1e-35")
}

func TestExpIdempotent(t *testing.T) {
	c := ctx(35)
	x := testutil.MustParse(t, "1.25")

	first, err := Exp(x, c)
	require.NoError(t, err)
	second, err := Exp(x, c)
	require.NoError(t, err)

	assert.Zero(t, first.Cmp(second))
	assert.Equal(t, first.String(), second.String())
}
