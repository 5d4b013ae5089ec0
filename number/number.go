// Package number implements the tiered numeric type used for unit exponents.
// A Number is kept in the most exact of three representations (integer,
// rational, floating) as operations are applied: exact operands produce exact
// results, and any operation touching a floating operand produces a floating
// result. Exact tiers are backed by big.Rat, so integer-tier arithmetic never
// overflows; the reported tier is integer whenever the exact value is integral.
package number

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/BhaskerGarudadri/Physical/errors"
)

// Tier identifies the representation tier of a Number.
type Tier int

// Representation tiers, from most to least exact.
const (
	TierInteger Tier = iota
	TierRational
	TierFloat
)

// String implements fmt.Stringer for Tier
func (t Tier) String() string {
	switch t {
	case TierInteger:
		return "integer"
	case TierRational:
		return "rational"
	case TierFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Epsilon is the relative tolerance used when comparing two float-tier
// numbers. Exact tiers never use it: an exact 1 and a float 1.0 are distinct
// values and compare unequal.
const Epsilon = 1e-9

// Number is an immutable exact-when-possible numeric value. The zero value is
// the exact integer 0. Numbers are value types; every operation returns a new
// Number and never mutates its operands.
type Number struct {
	approx bool
	f      float64  // valid when approx
	r      *big.Rat // valid when !approx; nil means exact zero
}

// FromInt returns the exact integer n.
func FromInt(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// FromRational returns the exact value num/den in lowest terms. A zero
// denominator is a division by zero. An integral result collapses to the
// integer tier automatically.
func FromRational(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, errors.WrapInvalid(
			errors.ErrDivisionByZero, "Number", "FromRational", "zero denominator")
	}
	return Number{r: big.NewRat(num, den)}, nil
}

// FromFloat returns f on the floating tier. Floating values never collapse to
// an exact tier, even when integral; exactness is a property of how a value
// was produced, not of its magnitude.
func FromFloat(f float64) Number {
	return Number{approx: true, f: f}
}

// Zero returns the exact integer 0.
func Zero() Number { return Number{} }

// One returns the exact integer 1.
func One() Number { return FromInt(1) }

// Parse converts a catalog-style exponent string ("2", "-1", "1/2", "0.5")
// into an exact Number. Decimal strings parse to their exact rational value.
func Parse(s string) (Number, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Number{}, fmt.Errorf("number: cannot parse %q", s)
	}
	return Number{r: r}, nil
}

// rat returns the exact value, treating a nil pointer as zero. The returned
// value is never mutated by any operation.
func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// Tier reports the most exact tier that represents the value.
func (n Number) Tier() Tier {
	if n.approx {
		return TierFloat
	}
	if n.rat().IsInt() {
		return TierInteger
	}
	return TierRational
}

// Float64 returns the value as a float64, rounding exact tiers if needed.
func (n Number) Float64() float64 {
	if n.approx {
		return n.f
	}
	f, _ := n.rat().Float64()
	return f
}

// Rat returns a copy of the exact value. The second result is false on the
// floating tier, where no exact value exists.
func (n Number) Rat() (*big.Rat, bool) {
	if n.approx {
		return nil, false
	}
	return new(big.Rat).Set(n.rat()), true
}

// IsZero reports whether the value is zero on its own tier.
func (n Number) IsZero() bool {
	if n.approx {
		return n.f == 0
	}
	return n.rat().Sign() == 0
}

// Sign returns -1, 0, or +1. NaN reports 0.
func (n Number) Sign() int {
	if n.approx {
		switch {
		case n.f > 0:
			return 1
		case n.f < 0:
			return -1
		default:
			return 0
		}
	}
	return n.rat().Sign()
}

// IsIntegral reports whether the value is a whole number, regardless of tier.
// A float 2.0 is integral but still on the floating tier.
func (n Number) IsIntegral() bool {
	if n.approx {
		return !math.IsInf(n.f, 0) && !math.IsNaN(n.f) && n.f == math.Trunc(n.f)
	}
	return n.rat().IsInt()
}

// Add returns n + m under the promotion table.
func (n Number) Add(m Number) Number {
	if n.approx || m.approx {
		return FromFloat(n.Float64() + m.Float64())
	}
	return Number{r: new(big.Rat).Add(n.rat(), m.rat())}
}

// Sub returns n - m under the promotion table.
func (n Number) Sub(m Number) Number {
	if n.approx || m.approx {
		return FromFloat(n.Float64() - m.Float64())
	}
	return Number{r: new(big.Rat).Sub(n.rat(), m.rat())}
}

// Mul returns n * m under the promotion table.
func (n Number) Mul(m Number) Number {
	if n.approx || m.approx {
		return FromFloat(n.Float64() * m.Float64())
	}
	return Number{r: new(big.Rat).Mul(n.rat(), m.rat())}
}

// Neg returns -n on the same tier.
func (n Number) Neg() Number {
	if n.approx {
		return FromFloat(-n.f)
	}
	return Number{r: new(big.Rat).Neg(n.rat())}
}

// Div returns n / m. Division by zero is an error on exact tiers; on the
// floating tier it follows IEEE semantics (infinity or NaN).
func (n Number) Div(m Number) (Number, error) {
	if n.approx || m.approx {
		return FromFloat(n.Float64() / m.Float64()), nil
	}
	if m.rat().Sign() == 0 {
		return Number{}, errors.WrapInvalid(
			errors.ErrDivisionByZero, "Number", "Div", "exact division by zero")
	}
	return Number{r: new(big.Rat).Quo(n.rat(), m.rat())}, nil
}

// Reciprocal returns 1 / n with the same zero handling as Div.
func (n Number) Reciprocal() (Number, error) {
	if n.approx {
		return FromFloat(1 / n.f), nil
	}
	if n.rat().Sign() == 0 {
		return Number{}, errors.WrapInvalid(
			errors.ErrDivisionByZero, "Number", "Reciprocal", "reciprocal of zero")
	}
	return Number{r: new(big.Rat).Inv(n.rat())}, nil
}

// Pow returns n raised to exp. A non-integer exponent on a negative base is
// undefined (the result would be complex). Exact base and integral exact
// exponent stay exact; everything else lands on the floating tier.
func (n Number) Pow(exp Number) (Number, error) {
	if n.Sign() < 0 && !exp.IsIntegral() {
		return Number{}, errors.WrapInvalid(
			errors.ErrUndefinedPower, "Number", "Pow", "non-integer exponent on negative base")
	}

	if n.approx || exp.approx || !exp.IsIntegral() {
		return FromFloat(math.Pow(n.Float64(), exp.Float64())), nil
	}

	k := exp.rat().Num()
	if !k.IsInt64() {
		return FromFloat(math.Pow(n.Float64(), exp.Float64())), nil
	}
	ki := k.Int64()
	if ki == 0 {
		return One(), nil
	}

	neg := ki < 0
	if neg {
		ki = -ki
	}
	base := n.rat()
	if neg && base.Sign() == 0 {
		return Number{}, errors.WrapInvalid(
			errors.ErrDivisionByZero, "Number", "Pow", "zero base with negative exponent")
	}

	e := big.NewInt(ki)
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	r := new(big.Rat).SetFrac(num, den)
	if neg {
		r.Inv(r)
	}
	return Number{r: r}, nil
}

// Equal compares two numbers under the tier rules: exact values compare
// exactly, two float-tier values compare within Epsilon, and a float-tier
// value never equals an exact one. NaN equals nothing.
func (n Number) Equal(m Number) bool {
	if n.approx != m.approx {
		return false
	}
	if n.approx {
		if math.IsNaN(n.f) || math.IsNaN(m.f) {
			return false
		}
		diff := math.Abs(n.f - m.f)
		scale := math.Max(1, math.Max(math.Abs(n.f), math.Abs(m.f)))
		return diff <= Epsilon*scale
	}
	return n.rat().Cmp(m.rat()) == 0
}

// Cmp compares numeric magnitudes across tiers: -1 if n < m, 0 if equal in
// value, +1 if n > m. Unlike Equal, Cmp ignores tiers.
func (n Number) Cmp(m Number) int {
	if n.approx || m.approx {
		a, b := n.Float64(), m.Float64()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return n.rat().Cmp(m.rat())
}

// String implements fmt.Stringer
func (n Number) String() string {
	switch n.Tier() {
	case TierFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	case TierInteger:
		return n.rat().Num().String()
	default:
		return n.rat().RatString()
	}
}
