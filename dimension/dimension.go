// Package dimension models physical dimensions as vectors of tiered-number
// exponents over a fixed set of base dimensions. Plane angle is tracked as its
// own base dimension so angular quantities are not silently dimensionless.
package dimension

import (
	"strings"

	"github.com/BhaskerGarudadri/Physical/number"
)

// Base identifies one of the base physical dimensions.
type Base int

// The base dimensions. The set is fixed; user-defined units combine these.
const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	Angle

	baseCount
)

// String implements fmt.Stringer for Base
func (b Base) String() string {
	switch b {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Time:
		return "time"
	case Current:
		return "current"
	case Temperature:
		return "temperature"
	case Amount:
		return "amount"
	case Luminosity:
		return "luminosity"
	case Angle:
		return "angle"
	default:
		return "unknown"
	}
}

// Symbol returns the conventional single-letter symbol for the base dimension.
func (b Base) Symbol() string {
	switch b {
	case Length:
		return "L"
	case Mass:
		return "M"
	case Time:
		return "T"
	case Current:
		return "I"
	case Temperature:
		return "Θ"
	case Amount:
		return "N"
	case Luminosity:
		return "J"
	case Angle:
		return "A"
	default:
		return "?"
	}
}

// Bases returns all base dimensions in canonical order.
func Bases() []Base {
	bases := make([]Base, baseCount)
	for i := range bases {
		bases[i] = Base(i)
	}
	return bases
}

// Vector is the dimension fingerprint of a unit or quantity: an exponent per
// base dimension, zero for absent dimensions. The zero value is the
// dimensionless vector. Vectors are immutable values; operations return new
// vectors.
type Vector struct {
	exp [baseCount]number.Number
}

// Dimensionless returns the vector with every exponent zero.
func Dimensionless() Vector { return Vector{} }

// Of returns a vector with a single base dimension raised to exp.
func Of(b Base, exp number.Number) Vector {
	var v Vector
	v.exp[b] = squash(exp)
	return v
}

// Exponent returns the exponent of the given base dimension.
func (v Vector) Exponent(b Base) number.Number {
	return v.exp[b]
}

// With returns a copy of v with the exponent of b replaced.
func (v Vector) With(b Base, exp number.Number) Vector {
	v.exp[b] = squash(exp)
	return v
}

// squash collapses any representation of zero to the exact integer zero, so
// that an absent dimension is always absent regardless of how its exponent
// cancelled. Nonzero values pass through untouched, tier included.
func squash(n number.Number) number.Number {
	if n.IsZero() {
		return number.Zero()
	}
	return n
}

// Add returns the componentwise sum, the dimension of a unit product.
func (v Vector) Add(w Vector) Vector {
	var out Vector
	for i := range v.exp {
		out.exp[i] = squash(v.exp[i].Add(w.exp[i]))
	}
	return out
}

// Neg returns the componentwise negation, the dimension of a unit inverse.
func (v Vector) Neg() Vector {
	var out Vector
	for i := range v.exp {
		out.exp[i] = squash(v.exp[i].Neg())
	}
	return out
}

// Scale multiplies every exponent by n, the dimension of a unit power. Zero
// components stay exactly zero so a floating scale factor cannot leak into
// absent dimensions.
func (v Vector) Scale(n number.Number) Vector {
	var out Vector
	for i := range v.exp {
		if v.exp[i].IsZero() {
			continue
		}
		out.exp[i] = squash(v.exp[i].Mul(n))
	}
	return out
}

// Equal reports whether every component is equal under the tiered-number
// equality rules. There is no approximate matching across tiers: an exact
// exponent 1 and a floating 1.0 are different dimensions.
func (v Vector) Equal(w Vector) bool {
	for i := range v.exp {
		if !v.exp[i].Equal(w.exp[i]) {
			return false
		}
	}
	return true
}

// Commensurable is an alias of Equal: two dimension vectors are commensurable
// iff they are exactly equal.
func (v Vector) Commensurable(w Vector) bool {
	return v.Equal(w)
}

// IsDimensionless reports whether every component is zero.
func (v Vector) IsDimensionless() bool {
	for i := range v.exp {
		if !v.exp[i].IsZero() {
			return false
		}
	}
	return true
}

// String renders the vector in canonical base order, e.g. "L·M·T^-2".
// The dimensionless vector renders as "1".
func (v Vector) String() string {
	var parts []string
	for i := range v.exp {
		e := v.exp[i]
		if e.IsZero() {
			continue
		}
		sym := Base(i).Symbol()
		if e.Tier() == number.TierInteger && e.Equal(number.One()) {
			parts = append(parts, sym)
			continue
		}
		parts = append(parts, sym+"^"+e.String())
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}
