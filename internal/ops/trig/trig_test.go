package trig

import (
	"errors"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/precisionkit/bigmath/internal/decctx"
	"github.com/precisionkit/bigmath/internal/ops/circle"
	"github.com/precisionkit/bigmath/internal/ops/common"
	"github.com/precisionkit/bigmath/internal/testutil"
)

func ctx(prec uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(prec)
	c.Rounding = apd.RoundHalfEven
	return c
}

func TestSinCosZero(t *testing.T) {
	sin, cos, err := SinCos(testutil.MustParse(t, "0"), ctx(30))
	require.NoError(t, err)
	testutil.RequireEqual(t, sin, "0")
	testutil.RequireEqual(t, cos, "1")
}

func TestSinCosFirstQuadrant(t *testing.T) {
	c := ctx(40)

	sin, cos, err := SinCos(testutil.MustParse(t, "1"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, sin,
		"0.8414709848078965066525023216302989996226", "1e-36")
	testutil.RequireClose(t, cos,
		"0.5403023058681397174009366074429766037323", "1e-36")

	sin, cos, err = SinCos(testutil.MustParse(t, "0.5"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, sin,
		"0.4794255386042030002732879352155713880818", "1e-36")
	testutil.RequireClose(t, cos,
		"0.8775825618903727161162815826038296519916", "1e-36")
}

func TestSinCosQuadrantIdentities(t *testing.T) {
	c := ctx(40)

	// 2 lies past pi/2, exercising the quarter-turn swap.
	sin, cos, err := SinCos(testutil.MustParse(t, "2"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, sin,
		"0.9092974268256816953960198659117448427023", "1e-34")
	testutil.RequireClose(t, cos,
		"-0.4161468365471423869975682295007621897660", "1e-34")

	// 4 lies past pi, exercising the half-turn negation.
	sin, cos, err = SinCos(testutil.MustParse(t, "4"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, sin,
		"-0.7568024953079282513726390945118290941359", "1e-34")
	testutil.RequireClose(t, cos,
		"-0.6536436208636119146391681830977503814241", "1e-34")
}

func TestSinCosNegativeAndLargeArguments(t *testing.T) {
	c := ctx(40)

	// A large negative argument costs one modular reduction, not one
	// period at a time.
	sin, cos, err := SinCos(testutil.MustParse(t, "-100"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, sin, "0.5063656411097587936565576104597854320607", "1e-25")
	testutil.RequireClose(t, cos, "0.8623188722876839341019385139508425355100", "1e-25")

	sin, cos, err = SinCos(testutil.MustParse(t, "100"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, sin, "-0.5063656411097587936565576104597854320607", "1e-25")
	testutil.RequireClose(t, cos, "0.8623188722876839341019385139508425355100", "1e-25")
}

func TestSinCosPeriodicity(t *testing.T) {
	c := ctx(40)
	pi, err := circle.Pi(c)
	require.NoError(t, err)

	// x + 2*pi reduces to x.
	x := testutil.MustParse(t, "0.75")
	shifted := new(apd.Decimal)
	ed := apd.MakeErrDecimal(c)
	ed.Add(shifted, pi, pi)
	ed.Add(shifted, shifted, x)
	require.NoError(t, ed.Err())

	s1, c1, err := SinCos(x, c)
	require.NoError(t, err)
	s2, c2, err := SinCos(shifted, c)
	require.NoError(t, err)

	diff := new(apd.Decimal)
	_, err = c.Sub(diff, s1, s2)
	require.NoError(t, err)
	diff.Coeff.Abs(&diff.Coeff)
	assert.True(t, diff.Cmp(apd.New(1, -35)) <= 0, "sin periodicity, diff %s", diff)

	_, err = c.Sub(diff, c1, c2)
	require.NoError(t, err)
	diff.Coeff.Abs(&diff.Coeff)
	assert.True(t, diff.Cmp(apd.New(1, -35)) <= 0, "cos periodicity, diff %s", diff)
}

func TestSinSquaredPlusCosSquared(t *testing.T) {
	c := ctx(45)

	for _, arg := range []string{"0.3", "1.9", "3.5", "5.9", "-2.4"} {
		sin, cos, err := SinCos(testutil.MustParse(t, arg), c)
		require.NoError(t, err)

		ed := apd.MakeErrDecimal(c)
		s2 := new(apd.Decimal)
		c2 := new(apd.Decimal)
		sum := new(apd.Decimal)
		ed.Mul(s2, sin, sin)
		ed.Mul(c2, cos, cos)
		ed.Add(sum, s2, c2)
		require.NoError(t, ed.Err())

		testutil.RequireClose(t, sum, "1", "1e-40")
	}
}

func TestTanZero(t *testing.T) {
	got, err := Tan(testutil.MustParse(t, "0"), ctx(30))
	require.NoError(t, err)
	testutil.RequireEqual(t, got, "0")
}

func TestTanKnownValues(t *testing.T) {
	c := ctx(40)

	got, err := Tan(testutil.MustParse(t, "1"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"1.557407724654902230506974807458360173087", "1e-34")

	got, err = Tan(testutil.MustParse(t, "-0.5"), c)
	require.NoError(t, err)
	testutil.RequireClose(t, got,
		"-0.5463024898437905132551794657802853832976", "1e-34")
}

func TestTanUndefinedAtHalfPi(t *testing.T) {
	c := ctx(30)

	// Build pi/2 exactly the way the tangent's working context sees it,
	// so the remainder check observes a true zero.
	wc := decctx.Expand(c, decctx.Scaled(c.Precision, 1.2))
	pi, err := circle.Pi(wc)
	require.NoError(t, err)
	halfPi := new(apd.Decimal)
	_, err = wc.Mul(halfPi, pi, apd.New(5, -1))
	require.NoError(t, err)

	_, err = Tan(halfPi, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDomain))
}

func TestSinCosIdempotent(t *testing.T) {
	c := ctx(35)
	x := testutil.MustParse(t, "2.5")

	s1, c1, err := SinCos(x, c)
	require.NoError(t, err)
	s2, c2, err := SinCos(x, c)
	require.NoError(t, err)

	assert.Equal(t, s1.String(), s2.String())
	assert.Equal(t, c1.String(), c2.String())
}
