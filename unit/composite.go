package unit

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/BhaskerGarudadri/Physical/dimension"
	"github.com/BhaskerGarudadri/Physical/errors"
	"github.com/BhaskerGarudadri/Physical/number"
)

// Term is one factor of a composite unit: a unit definition raised to a
// tiered exponent.
type Term struct {
	Def *Definition
	Exp number.Number
}

// Composite is a product of unit terms plus its cached aggregate dimension
// vector. Terms for the same definition are always merged, zero-exponent
// terms are dropped, and terms are kept in canonical order (sorted by
// definition name) so that representation equality and display are
// deterministic. Composites are immutable values.
//
// A composite containing an affine term is only valid as exactly that one
// term with exponent exactly 1: offsets are not linear, so affine units do
// not distribute under multiplication or exponentiation.
type Composite struct {
	terms []Term
	dim   dimension.Vector
}

// Dimensionless returns the empty composite.
func Dimensionless() Composite {
	return Composite{}
}

// FromDefinition returns the composite consisting of def raised to 1.
func FromDefinition(def *Definition) Composite {
	return Composite{
		terms: []Term{{Def: def, Exp: number.One()}},
		dim:   def.Dimension,
	}
}

// Terms returns a copy of the term list in canonical order.
func (c Composite) Terms() []Term {
	out := make([]Term, len(c.terms))
	copy(out, c.terms)
	return out
}

// Dimension returns the cached aggregate dimension vector. O(1).
func (c Composite) Dimension() dimension.Vector {
	return c.dim
}

// IsEmpty reports whether the composite has no terms.
func (c Composite) IsEmpty() bool {
	return len(c.terms) == 0
}

// hasAffine reports whether any term's definition carries an offset.
func (c Composite) hasAffine() bool {
	for _, t := range c.terms {
		if t.Def.IsAffine() {
			return true
		}
	}
	return false
}

// Affine returns the affine definition when the composite is exactly one
// affine term with exponent exactly 1, the only composite an affine unit can
// legally form.
func (c Composite) Affine() (*Definition, bool) {
	if len(c.terms) == 1 && c.terms[0].Def.IsAffine() && isExactOne(c.terms[0].Exp) {
		return c.terms[0].Def, true
	}
	return nil, false
}

func isExactOne(n number.Number) bool {
	return n.Tier() == number.TierInteger && n.Equal(number.One())
}

// Mul merges the term lists of c and o, summing tiered exponents for shared
// definitions and dropping zero-exponent terms. Multiplication that would
// leave an affine unit composed with anything, or raised to a power other
// than exactly 1, fails rather than silently linearizing the offset.
func (c Composite) Mul(o Composite) (Composite, error) {
	merged := mergeTerms(c.terms, o.terms)
	if err := checkAffine(merged, "Mul"); err != nil {
		return Composite{}, err
	}
	return Composite{terms: merged, dim: c.dim.Add(o.dim)}, nil
}

// Div is Mul by the inverse of o.
func (c Composite) Div(o Composite) (Composite, error) {
	inv, err := o.Invert()
	if err != nil {
		return Composite{}, err
	}
	return c.Mul(inv)
}

// Invert negates every exponent. Inverting an affine unit is an affine
// composition error.
func (c Composite) Invert() (Composite, error) {
	if c.hasAffine() {
		return Composite{}, errors.WrapInvalid(
			errors.ErrIncompatibleAffineComposition, "Composite", "Invert",
			fmt.Sprintf("inversion of affine unit %s", c))
	}
	inverted := make([]Term, len(c.terms))
	for i, t := range c.terms {
		inverted[i] = Term{Def: t.Def, Exp: t.Exp.Neg()}
	}
	return Composite{terms: inverted, dim: c.dim.Neg()}, nil
}

// Pow multiplies every term's exponent by exp using tiered-number
// multiplication. Exponent exactly 1 is the identity and is permitted even on
// affine units; any other exponent on an affine composite fails.
func (c Composite) Pow(exp number.Number) (Composite, error) {
	if isExactOne(exp) {
		return c, nil
	}
	if c.hasAffine() {
		return Composite{}, errors.WrapInvalid(
			errors.ErrIncompatibleAffineComposition, "Composite", "Pow",
			fmt.Sprintf("exponentiation of affine unit %s", c))
	}

	raised := make([]Term, 0, len(c.terms))
	for _, t := range c.terms {
		e := t.Exp.Mul(exp)
		if e.IsZero() {
			continue
		}
		raised = append(raised, Term{Def: t.Def, Exp: e})
	}
	return Composite{terms: raised, dim: c.dim.Scale(exp)}, nil
}

// ScaleToCanonical returns the composite's effective multiplicative scale to
// canonical units: the product of each term's definition scale raised to the
// term's exponent. Offsets are not included; the conversion engine applies
// them separately for the single-term affine case.
func (c Composite) ScaleToCanonical() float64 {
	scale := 1.0
	for _, t := range c.terms {
		scale *= math.Pow(t.Def.Scale, t.Exp.Float64())
	}
	return scale
}

// Equal reports representation equality: same definitions with equal
// exponents in canonical order. Units with equal dimension but different
// terms (newton vs kg·m·s^-2) are commensurable yet not Equal.
func (c Composite) Equal(o Composite) bool {
	if len(c.terms) != len(o.terms) {
		return false
	}
	for i := range c.terms {
		if c.terms[i].Def.Name != o.terms[i].Def.Name {
			return false
		}
		if !c.terms[i].Exp.Equal(o.terms[i].Exp) {
			return false
		}
	}
	return true
}

// String renders the composite in canonical term order, e.g. "kg·m·s^-2".
// The empty composite renders as "" (a bare number has no unit label).
func (c Composite) String() string {
	parts := make([]string, 0, len(c.terms))
	for _, t := range c.terms {
		if isExactOne(t.Exp) {
			parts = append(parts, t.Def.Symbol)
			continue
		}
		parts = append(parts, t.Def.Symbol+"^"+t.Exp.String())
	}
	return strings.Join(parts, "·")
}

// mergeTerms sums exponents for shared definitions, drops zero-exponent
// terms, and restores canonical order.
func mergeTerms(a, b []Term) []Term {
	byName := make(map[string]Term, len(a)+len(b))
	for _, t := range a {
		byName[t.Def.Name] = t
	}
	for _, t := range b {
		if existing, ok := byName[t.Def.Name]; ok {
			byName[t.Def.Name] = Term{Def: existing.Def, Exp: existing.Exp.Add(t.Exp)}
			continue
		}
		byName[t.Def.Name] = t
	}

	merged := make([]Term, 0, len(byName))
	for _, t := range byName {
		if t.Exp.IsZero() {
			continue
		}
		merged = append(merged, t)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Def.Name < merged[j].Def.Name })
	return merged
}

// checkAffine rejects any merged term list in which an affine unit appears
// alongside other terms or with an exponent other than exactly 1.
func checkAffine(terms []Term, op string) error {
	for _, t := range terms {
		if !t.Def.IsAffine() {
			continue
		}
		if len(terms) > 1 {
			return errors.WrapInvalid(
				errors.ErrIncompatibleAffineComposition, "Composite", op,
				fmt.Sprintf("affine unit %q in a multi-term composite", t.Def.Name))
		}
		if !isExactOne(t.Exp) {
			return errors.WrapInvalid(
				errors.ErrIncompatibleAffineComposition, "Composite", op,
				fmt.Sprintf("affine unit %q with exponent %s", t.Def.Name, t.Exp))
		}
	}
	return nil
}
