// Package gcf evaluates generalized continued fractions
//
//	b0 + a1/(b1 + a2/(b2 + ...))
//
// over exact numbers, using the forward recurrence on numerator and
// denominator convergents rather than nested division, so only one exact
// division happens at the end.
package gcf

import (
	"fmt"
	"sync"

	"github.com/precisionkit/bigmath/internal/number"
	"github.com/precisionkit/bigmath/internal/ops/common"
)

// Fraction holds the coefficient lists of a generalized continued
// fraction. B carries the b coefficients (B[0] is the leading integer
// part) and A the partial numerators, so len(B) must be len(A)+1.
//
// The convergent is computed once and cached; a Fraction is safe for
// concurrent use after construction.
type Fraction struct {
	A []number.Number
	B []number.Number

	once  sync.Once
	value number.Number
	err   error
}

// New validates the coefficient lists and returns a Fraction over them.
// The slices are not copied; callers must not mutate them afterwards.
func New(b, a []number.Number) (*Fraction, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("gcf: no coefficients: %w", common.ErrDomain)
	}
	if len(b) != len(a)+1 {
		return nil, fmt.Errorf("gcf: got %d b-coefficients for %d a-coefficients, want %d: %w", len(b), len(a), len(a)+1, common.ErrDomain)
	}
	return &Fraction{A: a, B: b}, nil
}

// Value returns the exact convergent of the fraction. The first call
// evaluates the recurrence; later calls return the cached result.
func (f *Fraction) Value() (number.Number, error) {
	f.once.Do(func() {
		f.value, f.err = f.eval()
	})
	return f.value, f.err
}

// eval runs the forward recurrence
//
//	A_k = b_k*A_{k-1} + a_k*A_{k-2}
//	B_k = b_k*B_{k-1} + a_k*B_{k-2}
//
// seeded with A_{-1}=1, A_0=b_0, B_{-1}=0, B_0=1, and returns A_n/B_n.
func (f *Fraction) eval() (number.Number, error) {
	numPrev, num := number.FromInt64(1), f.B[0]
	denPrev, den := number.FromInt64(0), number.FromInt64(1)

	for k, a := range f.A {
		b := f.B[k+1]
		numNext := b.Mul(num).Add(a.Mul(numPrev))
		denNext := b.Mul(den).Add(a.Mul(denPrev))
		numPrev, num = num, numNext
		denPrev, den = den, denNext
	}

	if den.Sign() == 0 {
		return number.Number{}, fmt.Errorf("gcf: zero denominator convergent")
	}
	v, err := num.Div(den)
	if err != nil {
		return number.Number{}, fmt.Errorf("gcf: %w", err)
	}
	return v, nil
}
