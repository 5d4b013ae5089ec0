// Package catalog seeds unit registries. It carries the built-in SI catalog
// (base, derived, affine, and customary units) and loads user-defined YAML
// catalogs validated against a JSON Schema. Seeding happens once at process
// start; callers freeze the registry before any concurrent use.
package catalog

import (
	"math"

	"github.com/BhaskerGarudadri/Physical/dimension"
	"github.com/BhaskerGarudadri/Physical/number"
	"github.com/BhaskerGarudadri/Physical/unit"
)

// vec builds a dimension vector from integer exponents.
func vec(exps map[dimension.Base]int64) dimension.Vector {
	v := dimension.Dimensionless()
	for b, e := range exps {
		v = v.With(b, number.FromInt(e))
	}
	return v
}

var (
	length      = vec(map[dimension.Base]int64{dimension.Length: 1})
	mass        = vec(map[dimension.Base]int64{dimension.Mass: 1})
	duration    = vec(map[dimension.Base]int64{dimension.Time: 1})
	current     = vec(map[dimension.Base]int64{dimension.Current: 1})
	temperature = vec(map[dimension.Base]int64{dimension.Temperature: 1})
	amount      = vec(map[dimension.Base]int64{dimension.Amount: 1})
	luminosity  = vec(map[dimension.Base]int64{dimension.Luminosity: 1})
	angle       = vec(map[dimension.Base]int64{dimension.Angle: 1})

	frequency = vec(map[dimension.Base]int64{dimension.Time: -1})
	force     = vec(map[dimension.Base]int64{dimension.Length: 1, dimension.Mass: 1, dimension.Time: -2})
	pressure  = vec(map[dimension.Base]int64{dimension.Length: -1, dimension.Mass: 1, dimension.Time: -2})
	energy    = vec(map[dimension.Base]int64{dimension.Length: 2, dimension.Mass: 1, dimension.Time: -2})
	power     = vec(map[dimension.Base]int64{dimension.Length: 2, dimension.Mass: 1, dimension.Time: -3})
	charge    = vec(map[dimension.Base]int64{dimension.Time: 1, dimension.Current: 1})
	voltage   = vec(map[dimension.Base]int64{
		dimension.Length: 2, dimension.Mass: 1, dimension.Time: -3, dimension.Current: -1})
	resistance = vec(map[dimension.Base]int64{
		dimension.Length: 2, dimension.Mass: 1, dimension.Time: -3, dimension.Current: -2})
	volume = vec(map[dimension.Base]int64{dimension.Length: 3})
)

// builtin returns the built-in SI catalog. Scales are multiplicative factors
// to the canonical unit of each dimension; affine temperature scales carry an
// additive offset to kelvin.
func builtin() []unit.Definition {
	return []unit.Definition{
		// canonical base units
		{Name: "meter", Symbol: "m", Dimension: length, Scale: 1},
		{Name: "kilogram", Symbol: "kg", Dimension: mass, Scale: 1},
		{Name: "second", Symbol: "s", Dimension: duration, Scale: 1},
		{Name: "ampere", Symbol: "A", Dimension: current, Scale: 1},
		{Name: "kelvin", Symbol: "K", Dimension: temperature, Scale: 1},
		{Name: "mole", Symbol: "mol", Dimension: amount, Scale: 1},
		{Name: "candela", Symbol: "cd", Dimension: luminosity, Scale: 1},
		{Name: "radian", Symbol: "rad", Dimension: angle, Scale: 1},

		// metric length
		{Name: "kilometer", Symbol: "km", Dimension: length, Scale: 1000},
		{Name: "centimeter", Symbol: "cm", Dimension: length, Scale: 0.01},
		{Name: "millimeter", Symbol: "mm", Dimension: length, Scale: 0.001},

		// customary length
		{Name: "inch", Symbol: "in", Dimension: length, Scale: 0.0254},
		{Name: "foot", Symbol: "ft", Dimension: length, Scale: 0.3048},
		{Name: "yard", Symbol: "yd", Dimension: length, Scale: 0.9144},
		{Name: "mile", Symbol: "mi", Dimension: length, Scale: 1609.344},

		// mass
		{Name: "gram", Symbol: "g", Dimension: mass, Scale: 0.001},
		{Name: "tonne", Symbol: "t", Dimension: mass, Scale: 1000},
		{Name: "pound-mass", Symbol: "lbm", Dimension: mass, Scale: 0.45359237},

		// time
		{Name: "minute", Symbol: "min", Dimension: duration, Scale: 60},
		{Name: "hour", Symbol: "h", Dimension: duration, Scale: 3600},
		{Name: "day", Symbol: "d", Dimension: duration, Scale: 86400},

		// angle
		{Name: "degree", Symbol: "°", Dimension: angle, Scale: math.Pi / 180},
		{Name: "revolution", Symbol: "rev", Dimension: angle, Scale: 2 * math.Pi},

		// derived canonical units
		{Name: "hertz", Symbol: "Hz", Dimension: frequency, Scale: 1},
		{Name: "newton", Symbol: "N", Dimension: force, Scale: 1},
		{Name: "pascal", Symbol: "Pa", Dimension: pressure, Scale: 1},
		{Name: "joule", Symbol: "J", Dimension: energy, Scale: 1},
		{Name: "watt", Symbol: "W", Dimension: power, Scale: 1},
		{Name: "coulomb", Symbol: "C", Dimension: charge, Scale: 1},
		{Name: "volt", Symbol: "V", Dimension: voltage, Scale: 1},
		{Name: "ohm", Symbol: "Ω", Dimension: resistance, Scale: 1},

		// derived non-canonical
		{Name: "pound-force", Symbol: "lbf", Dimension: force, Scale: 4.4482216152605},
		{Name: "liter", Symbol: "L", Dimension: volume, Scale: 0.001},

		// affine temperature scales: canonical = value*scale + offset (kelvin)
		{Name: "celsius", Symbol: "°C", Dimension: temperature, Scale: 1, Offset: 273.15},
		{Name: "fahrenheit", Symbol: "°F", Dimension: temperature, Scale: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0},
	}
}

// Register seeds reg with the built-in SI catalog.
func Register(reg *unit.Registry) error {
	for _, def := range builtin() {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a frozen registry holding the built-in SI catalog.
func Default() (*unit.Registry, error) {
	reg := unit.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}
