// Package quantity implements the value users compute with: a magnitude
// (scalar or array of reals) paired with a composite unit. Quantities are
// immutable; every operation returns a new Quantity. Unit results delegate to
// the unit algebra, magnitudes are combined elementwise, and conversions go
// through the conversion engine in convert.go.
package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BhaskerGarudadri/Physical/dimension"
	"github.com/BhaskerGarudadri/Physical/errors"
	"github.com/BhaskerGarudadri/Physical/number"
	"github.com/BhaskerGarudadri/Physical/unit"
)

// Quantity is an immutable magnitude plus composite unit. The zero value is a
// dimensionless scalar zero.
type Quantity struct {
	values []float64
	scalar bool
	unit   unit.Composite
}

// New returns a scalar quantity.
func New(value float64, u unit.Composite) Quantity {
	return Quantity{values: []float64{value}, scalar: true, unit: u}
}

// NewArray returns an array quantity whose elements share one unit. The input
// slice is copied; the quantity owns its magnitude.
func NewArray(values []float64, u unit.Composite) Quantity {
	vs := make([]float64, len(values))
	copy(vs, values)
	return Quantity{values: vs, unit: u}
}

// Make constructs a scalar quantity by resolving a unit name or symbol in the
// registry. This is the explicit form of literal-style construction.
func Make(value float64, nameOrSymbol string, reg *unit.Registry) (Quantity, error) {
	def, err := reg.Lookup(nameOrSymbol)
	if err != nil {
		return Quantity{}, err
	}
	return New(value, unit.FromDefinition(def)), nil
}

// MakeArray is Make for array magnitudes.
func MakeArray(values []float64, nameOrSymbol string, reg *unit.Registry) (Quantity, error) {
	def, err := reg.Lookup(nameOrSymbol)
	if err != nil {
		return Quantity{}, err
	}
	return NewArray(values, unit.FromDefinition(def)), nil
}

// Unit returns the composite unit.
func (q Quantity) Unit() unit.Composite {
	return q.unit
}

// Dimension returns the dimension vector of the unit. O(1).
func (q Quantity) Dimension() dimension.Vector {
	return q.unit.Dimension()
}

// IsScalar reports whether the magnitude is a single value.
func (q Quantity) IsScalar() bool {
	return q.scalar
}

// Len returns the number of magnitude elements.
func (q Quantity) Len() int {
	return len(q.values)
}

// Value returns the scalar magnitude, or the first element of an array.
func (q Quantity) Value() float64 {
	if len(q.values) == 0 {
		return 0
	}
	return q.values[0]
}

// Values returns a copy of the magnitude elements.
func (q Quantity) Values() []float64 {
	out := make([]float64, len(q.values))
	copy(out, q.values)
	return out
}

// Commensurable reports whether two quantities have exactly equal dimension
// vectors, independent of magnitude.
func (q Quantity) Commensurable(o Quantity) bool {
	return q.Dimension().Commensurable(o.Dimension())
}

// Add returns q + o. The operands must be commensurable; o is first converted
// into q's unit and the result keeps q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	return q.addSub(o, "Add", func(x, y float64) float64 { return x + y })
}

// Sub returns q - o under the same rules as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.addSub(o, "Sub", func(x, y float64) float64 { return x - y })
}

func (q Quantity) addSub(o Quantity, op string, f func(x, y float64) float64) (Quantity, error) {
	if !q.Commensurable(o) {
		return Quantity{}, errors.WrapInvalid(
			errors.ErrIncommensurableDimensions, "Quantity", op,
			fmt.Sprintf("combining %s with %s", describeUnit(o.unit), describeUnit(q.unit)))
	}
	conv, err := o.Convert(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	vals, scalar, err := combine(q, conv, op, f)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: vals, scalar: scalar, unit: q.unit}, nil
}

// Mul returns the elementwise product with the unit product from the unit
// algebra. A scalar broadcasts over an array; arrays combine elementwise and
// must have equal length.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	u, err := q.unit.Mul(o.unit)
	if err != nil {
		return Quantity{}, err
	}
	vals, scalar, err := combine(q, o, "Mul", func(x, y float64) float64 { return x * y })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: vals, scalar: scalar, unit: u}, nil
}

// Div returns the elementwise quotient with the unit quotient. Magnitude
// division follows IEEE float semantics.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	u, err := q.unit.Div(o.unit)
	if err != nil {
		return Quantity{}, err
	}
	vals, scalar, err := combine(q, o, "Div", func(x, y float64) float64 { return x / y })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: vals, scalar: scalar, unit: u}, nil
}

// Pow raises the magnitude to the real value of exp and the unit to exp via
// the unit algebra. A non-integer exponent on a negative magnitude element is
// undefined.
func (q Quantity) Pow(exp number.Number) (Quantity, error) {
	u, err := q.unit.Pow(exp)
	if err != nil {
		return Quantity{}, err
	}
	if !exp.IsIntegral() {
		for _, v := range q.values {
			if v < 0 {
				return Quantity{}, errors.WrapInvalid(
					errors.ErrUndefinedPower, "Quantity", "Pow",
					"non-integer exponent on negative magnitude")
			}
		}
	}
	e := exp.Float64()
	vals := apply(q.values, func(v float64) float64 { return math.Pow(v, e) })
	return Quantity{values: vals, scalar: q.scalar, unit: u}, nil
}

// Equal requires commensurability, converts o into q's unit, and compares
// magnitudes within the floating tolerance. Shape mismatches (different
// element counts) are errors, not inequality.
func (q Quantity) Equal(o Quantity) (bool, error) {
	if !q.Commensurable(o) {
		return false, errors.WrapInvalid(
			errors.ErrIncommensurableDimensions, "Quantity", "Equal",
			fmt.Sprintf("comparing %s with %s", describeUnit(o.unit), describeUnit(q.unit)))
	}
	conv, err := o.Convert(q.unit)
	if err != nil {
		return false, err
	}
	if len(q.values) != len(conv.values) {
		return false, errors.WrapInvalid(
			errors.ErrArrayLengthMismatch, "Quantity", "Equal",
			fmt.Sprintf("comparing %d elements with %d", len(conv.values), len(q.values)))
	}
	for i := range q.values {
		if !floatEqual(q.values[i], conv.values[i]) {
			return false, nil
		}
	}
	return true, nil
}

// As validates that the quantity has the requested dimension before exposing
// it, the hook for strongly-typed wrappers. The boolean is false on mismatch.
func (q Quantity) As(want dimension.Vector) (Quantity, bool) {
	if !q.Dimension().Equal(want) {
		return Quantity{}, false
	}
	return q, true
}

// String implements fmt.Stringer, e.g. "4.76 m" or "[1 2 3] kg·m·s^-2".
func (q Quantity) String() string {
	var mag string
	if q.scalar || len(q.values) == 1 {
		mag = formatValue(q.Value())
	} else {
		parts := make([]string, len(q.values))
		for i, v := range q.values {
			parts[i] = formatValue(v)
		}
		mag = "[" + strings.Join(parts, " ") + "]"
	}
	if u := q.unit.String(); u != "" {
		return mag + " " + u
	}
	return mag
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// describeUnit names a unit for error messages; the empty composite reads as
// "dimensionless".
func describeUnit(u unit.Composite) string {
	if s := u.String(); s != "" {
		return s
	}
	return "dimensionless"
}

// floatEqual applies the floating tier's relative tolerance to magnitudes.
func floatEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return diff <= number.Epsilon*scale
}

// combine merges two magnitudes elementwise with broadcast rules: scalar with
// scalar stays scalar, a scalar broadcasts over an array, and two arrays must
// have equal length.
func combine(a, b Quantity, op string, f func(x, y float64) float64) ([]float64, bool, error) {
	switch {
	case a.scalar && b.scalar:
		return []float64{f(a.Value(), b.Value())}, true, nil
	case a.scalar:
		x := a.Value()
		return apply(b.values, func(v float64) float64 { return f(x, v) }), false, nil
	case b.scalar:
		y := b.Value()
		return apply(a.values, func(v float64) float64 { return f(v, y) }), false, nil
	default:
		if len(a.values) != len(b.values) {
			return nil, false, errors.WrapInvalid(
				errors.ErrArrayLengthMismatch, "Quantity", op,
				fmt.Sprintf("elementwise combine of %d elements with %d", len(a.values), len(b.values)))
		}
		out := make([]float64, len(a.values))
		for i := range a.values {
			out[i] = f(a.values[i], b.values[i])
		}
		return out, false, nil
	}
}
