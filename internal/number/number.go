// Package number provides a closed tagged numeric variant: exact integers
// and exact rationals under one value type, with explicit conversions
// instead of an inheritance hierarchy.
//
// Values are immutable; every operation returns a new Number. Rationals
// are kept normalized: the denominator is positive, the sign lives in the
// numerator, and common factors are removed. A rational whose denominator
// reduces to one collapses back to an integer.
package number

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd"
)

// Kind discriminates the variant. The set is closed: there are exactly two
// kinds and no third is planned.
type Kind int

const (
	// Integer marks an exact whole value.
	Integer Kind = iota
	// Rational marks an exact ratio of two integers.
	Rational
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Rational:
		return "rational"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Number is an exact value, either an Integer or a Rational. The zero
// value is the integer 0.
type Number struct {
	kind Kind
	num  big.Int
	den  big.Int // 1 for integers, always positive otherwise
}

var one = big.NewInt(1)

// denom returns the denominator, reading the uninitialized zero value as 1
// so that the zero Number behaves as the integer 0.
func (v *Number) denom() *big.Int {
	if v.den.Sign() == 0 {
		return one
	}
	return &v.den
}

// FromInt64 returns the integer value n.
func FromInt64(n int64) Number {
	var v Number
	v.num.SetInt64(n)
	v.den.SetInt64(1)
	return v
}

// FromBigInt returns the integer value of n. The input is copied.
func FromBigInt(n *big.Int) Number {
	var v Number
	v.num.Set(n)
	v.den.SetInt64(1)
	return v
}

// FromRatio returns the exact ratio num/den, normalized. A zero
// denominator is an error.
func FromRatio(num, den *big.Int) (Number, error) {
	if den.Sign() == 0 {
		return Number{}, fmt.Errorf("number: zero denominator")
	}
	var v Number
	v.num.Set(num)
	v.den.Set(den)
	v.normalize()
	return v, nil
}

// normalize moves the sign to the numerator, strips common factors, and
// collapses den == 1 to the Integer kind.
func (v *Number) normalize() {
	if v.den.Sign() < 0 {
		v.num.Neg(&v.num)
		v.den.Neg(&v.den)
	}
	if v.num.Sign() == 0 {
		v.den.SetInt64(1)
	} else {
		var g big.Int
		g.GCD(nil, nil, new(big.Int).Abs(&v.num), &v.den)
		if g.Cmp(big.NewInt(1)) != 0 {
			v.num.Quo(&v.num, &g)
			v.den.Quo(&v.den, &g)
		}
	}
	if v.den.Cmp(big.NewInt(1)) == 0 {
		v.kind = Integer
	} else {
		v.kind = Rational
	}
}

// Kind reports whether the value is an Integer or a Rational.
func (v Number) Kind() Kind { return v.kind }

// Sign returns -1, 0, or +1.
func (v Number) Sign() int { return v.num.Sign() }

// Add returns v + w.
func (v Number) Add(w Number) Number {
	var out Number
	var l, r big.Int
	l.Mul(&v.num, w.denom())
	r.Mul(&w.num, v.denom())
	out.num.Add(&l, &r)
	out.den.Mul(v.denom(), w.denom())
	out.normalize()
	return out
}

// Sub returns v - w.
func (v Number) Sub(w Number) Number {
	return v.Add(w.Neg())
}

// Mul returns v * w.
func (v Number) Mul(w Number) Number {
	var out Number
	out.num.Mul(&v.num, &w.num)
	out.den.Mul(v.denom(), w.denom())
	out.normalize()
	return out
}

// Div returns the exact quotient v / w. Division by zero is an error; the
// result is rational whenever the quotient is not whole.
func (v Number) Div(w Number) (Number, error) {
	if w.Sign() == 0 {
		return Number{}, fmt.Errorf("number: division by zero")
	}
	var out Number
	out.num.Mul(&v.num, w.denom())
	out.den.Mul(v.denom(), &w.num)
	out.normalize()
	return out, nil
}

// Neg returns -v.
func (v Number) Neg() Number {
	var out Number
	out.kind = v.kind
	out.num.Neg(&v.num)
	out.den.Set(v.denom())
	return out
}

// Cmp compares v and w, returning -1, 0, or +1.
func (v Number) Cmp(w Number) int {
	var l, r big.Int
	l.Mul(&v.num, w.denom())
	r.Mul(&w.num, v.denom())
	return l.Cmp(&r)
}

// Int converts to an exact big integer. Rationals with a non-unit
// denominator do not convert; use Decimal for a rounded value instead.
func (v Number) Int() (*big.Int, error) {
	if v.kind != Integer {
		return nil, fmt.Errorf("number: %s is not an integer", v)
	}
	return new(big.Int).Set(&v.num), nil
}

// Rat converts to a standard library big.Rat.
func (v Number) Rat() *big.Rat {
	return new(big.Rat).SetFrac(&v.num, v.denom())
}

// Decimal converts to an arbitrary-precision decimal rounded to c.
func (v Number) Decimal(c *apd.Context) (*apd.Decimal, error) {
	n := apd.NewWithBigInt(new(big.Int).Set(&v.num), 0)
	if v.kind == Integer {
		d := new(apd.Decimal)
		if _, err := c.Round(d, n); err != nil {
			return nil, fmt.Errorf("number: %w", err)
		}
		return d, nil
	}
	d := new(apd.Decimal)
	den := apd.NewWithBigInt(new(big.Int).Set(v.denom()), 0)
	if _, err := c.Quo(d, n, den); err != nil {
		return nil, fmt.Errorf("number: %w", err)
	}
	return d, nil
}

func (v Number) String() string {
	if v.kind == Integer {
		return v.num.String()
	}
	return v.num.String() + "/" + v.den.String()
}
