package common

import (
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsNeg(t *testing.T) {
	x := MustParse("-12.5")

	a := Abs(x)
	assert.Zero(t, a.Cmp(MustParse("12.5")))

	n := Neg(x)
	assert.Zero(t, n.Cmp(MustParse("12.5")))

	// The input is never mutated.
	assert.Zero(t, x.Cmp(MustParse("-12.5")))

	assert.Zero(t, Neg(MustParse("3")).Cmp(MustParse("-3")))
}

func TestPowInt(t *testing.T) {
	c := apd.BaseContext.WithPrecision(30)

	cases := []struct {
		base string
		n    int64
		want string
	}{
		{"2", 10, "1024"},
		{"2", 0, "1"},
		{"10", 5, "100000"},
		{"-3", 3, "-27"},
		{"1.5", 2, "2.25"},
	}
	for _, tc := range cases {
		d := new(apd.Decimal)
		require.NoError(t, PowInt(c, d, MustParse(tc.base), tc.n))
		assert.Zero(t, d.Cmp(MustParse(tc.want)), "base=%s n=%d got=%s", tc.base, tc.n, d)
	}

	d := new(apd.Decimal)
	assert.Error(t, PowInt(c, d, MustParse("2"), -1))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a number") })
}
