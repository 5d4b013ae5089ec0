// Package unit provides named unit definitions, the process-wide unit
// registry, and the composite-unit algebra that merges, cancels, and
// exponentiates unit terms under multiplication, division, and power.
package unit

import (
	stderrors "errors"
	"fmt"

	"github.com/BhaskerGarudadri/Physical/dimension"
	"github.com/BhaskerGarudadri/Physical/errors"
)

// Definition is an immutable named unit: a dimension vector plus a conversion
// rule relative to the canonical reference unit of that dimension. For affine
// units (temperature scales) the rule includes an additive offset:
//
//	canonical = value*Scale + Offset
//
// Definitions are registered once and shared by reference thereafter.
type Definition struct {
	Name      string
	Symbol    string
	Dimension dimension.Vector
	Scale     float64
	Offset    float64
}

// IsCanonical reports whether this is the reference unit of its dimension.
func (d *Definition) IsCanonical() bool {
	return d.Scale == 1 && d.Offset == 0
}

// IsAffine reports whether conversion requires an additive offset. Affine
// units cannot participate in multiplicative composition.
func (d *Definition) IsAffine() bool {
	return d.Offset != 0
}

// Validate ensures the definition is well formed
func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.WrapFatal(
			stderrors.New("unit name cannot be empty"),
			"Definition", "Validate", "name validation")
	}
	if d.Symbol == "" {
		return errors.WrapFatal(
			fmt.Errorf("unit %q has no symbol", d.Name),
			"Definition", "Validate", "symbol validation")
	}
	if d.Scale == 0 {
		return errors.WrapFatal(
			fmt.Errorf("unit %q has zero scale", d.Name),
			"Definition", "Validate", "scale validation")
	}
	return nil
}

// String implements fmt.Stringer
func (d *Definition) String() string {
	return d.Name
}
