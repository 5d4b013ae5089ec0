package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BhaskerGarudadri/Physical/dimension"
	"github.com/BhaskerGarudadri/Physical/errors"
	"github.com/BhaskerGarudadri/Physical/number"
	"github.com/BhaskerGarudadri/Physical/unit"
)

func TestDefault(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	assert.True(t, reg.Frozen())

	// every acceptance-case unit must resolve
	for _, name := range []string{
		"meter", "kilogram", "second", "newton", "degree", "radian",
		"centimeter", "foot", "millimeter", "pound-mass", "celsius", "fahrenheit",
	} {
		_, err := reg.Lookup(name)
		assert.NoError(t, err, name)
	}

	// and by symbol
	for _, sym := range []string{"m", "kg", "s", "N", "°", "rad", "lbm"} {
		_, err := reg.Lookup(sym)
		assert.NoError(t, err, sym)
	}
}

func TestBuiltin_CanonicalPerDimension(t *testing.T) {
	// Register enforces the one-canonical-per-dimension invariant, so a
	// successful seed proves the built-in catalog satisfies it.
	reg := unit.NewRegistry()
	require.NoError(t, Register(reg))
}

func TestBuiltin_NewtonDimension(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	newton, err := reg.Lookup("newton")
	require.NoError(t, err)

	force := dimension.Of(dimension.Length, number.One()).
		With(dimension.Mass, number.One()).
		With(dimension.Time, number.FromInt(-2))
	assert.True(t, newton.Dimension.Equal(force))
	assert.True(t, newton.IsCanonical())
}

func TestBuiltin_AffineTemperatures(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	celsius, err := reg.Lookup("celsius")
	require.NoError(t, err)
	assert.True(t, celsius.IsAffine())
	assert.InDelta(t, 273.15, celsius.Offset, 1e-12)

	kelvin, err := reg.Lookup("kelvin")
	require.NoError(t, err)
	assert.True(t, kelvin.IsCanonical())
	assert.False(t, kelvin.IsAffine())
}

const validCatalog = `
units:
  - name: furlong
    symbol: fur
    dimension:
      length: "1"
    scale: 201.168
  - name: rankine
    symbol: "°R"
    dimension:
      temperature: "1"
    scale: 0.5555555555555556
    offset: 0
  - name: root-hertz
    symbol: "√Hz"
    dimension:
      time: "-1/2"
    scale: 1
`

func TestParse_ValidCatalog(t *testing.T) {
	defs, err := Parse([]byte(validCatalog))
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "furlong", defs[0].Name)
	assert.InDelta(t, 201.168, defs[0].Scale, 1e-12)
	assert.True(t, defs[0].Dimension.Equal(
		dimension.Of(dimension.Length, number.One())))

	// rational exponents parse exactly
	half, err := number.FromRational(-1, 2)
	require.NoError(t, err)
	assert.True(t, defs[2].Dimension.Exponent(dimension.Time).Equal(half))
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing units key", `version: 1`},
		{"empty units", `units: []`},
		{"missing scale", "units:\n  - name: x\n    symbol: x\n    dimension: {length: \"1\"}"},
		{"missing name", "units:\n  - symbol: x\n    dimension: {length: \"1\"}\n    scale: 1"},
		{"unknown field", "units:\n  - name: x\n    symbol: x\n    dimension: {length: \"1\"}\n    scale: 1\n    color: red"},
		{"not yaml at all", `{{{{`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
			assert.True(t, errors.IsFatal(err), "catalog errors are fatal at init")
		})
	}
}

func TestParse_BadDimension(t *testing.T) {
	t.Run("unknown dimension name", func(t *testing.T) {
		doc := "units:\n  - name: x\n    symbol: x\n    dimension: {currency: \"1\"}\n    scale: 1"
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
	})

	t.Run("unparseable exponent", func(t *testing.T) {
		doc := "units:\n  - name: x\n    symbol: x\n    dimension: {length: \"one\"}\n    scale: 1"
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, errors.ErrInvalidCatalog)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	reg := unit.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Load(path, reg))
	reg.Freeze()

	def, err := reg.Lookup("furlong")
	require.NoError(t, err)
	assert.InDelta(t, 201.168, def.Scale, 1e-12)

	_, err = reg.Lookup("√Hz")
	assert.NoError(t, err, "loaded units resolve by symbol too")
}

func TestLoad_MissingFile(t *testing.T) {
	reg := unit.NewRegistry()
	err := Load(filepath.Join(t.TempDir(), "absent.yaml"), reg)
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestLoad_DuplicateAgainstBuiltin(t *testing.T) {
	doc := "units:\n  - name: meter\n    symbol: mtr\n    dimension: {length: \"1\"}\n    scale: 1"
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	reg := unit.NewRegistry()
	require.NoError(t, Register(reg))
	err := Load(path, reg)
	assert.ErrorIs(t, err, errors.ErrDuplicateUnitName)
}
