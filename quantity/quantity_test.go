package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BhaskerGarudadri/Physical/catalog"
	"github.com/BhaskerGarudadri/Physical/dimension"
	"github.com/BhaskerGarudadri/Physical/errors"
	"github.com/BhaskerGarudadri/Physical/number"
	"github.com/BhaskerGarudadri/Physical/unit"
)

func testRegistry(t *testing.T) *unit.Registry {
	t.Helper()
	reg, err := catalog.Default()
	require.NoError(t, err)
	return reg
}

func unitOf(t *testing.T, reg *unit.Registry, name string) unit.Composite {
	t.Helper()
	def, err := reg.Lookup(name)
	require.NoError(t, err)
	return unit.FromDefinition(def)
}

func TestMake(t *testing.T) {
	reg := testRegistry(t)

	q, err := Make(4.76, "meter", reg)
	require.NoError(t, err)
	assert.True(t, q.IsScalar())
	assert.InDelta(t, 4.76, q.Value(), 1e-15)
	assert.Equal(t, "4.76 m", q.String())

	_, err = Make(1, "cubit", reg)
	assert.ErrorIs(t, err, errors.ErrUnknownUnit)
}

func TestAdd_MixedLengthUnits(t *testing.T) {
	reg := testRegistry(t)

	cm, err := Make(10.5, "centimeter", reg)
	require.NoError(t, err)
	ft, err := Make(3.3, "foot", reg)
	require.NoError(t, err)

	sum, err := cm.Add(ft)
	require.NoError(t, err)
	// result keeps the left operand's unit
	assert.True(t, sum.Unit().Equal(cm.Unit()))

	mm, err := sum.Convert(unitOf(t, reg, "millimeter"))
	require.NoError(t, err)
	assert.InDelta(t, 10.5*10+3.3*304.8, mm.Value(), 1e-9)
}

func TestAdd_IncommensurableFails(t *testing.T) {
	reg := testRegistry(t)

	force, err := Make(4.5, "newton", reg)
	require.NoError(t, err)
	massQ, err := Make(17, "pound-mass", reg)
	require.NoError(t, err)

	_, err = force.Add(massQ)
	assert.ErrorIs(t, err, errors.ErrIncommensurableDimensions)
	assert.True(t, errors.IsInvalid(err))
}

func TestSub(t *testing.T) {
	reg := testRegistry(t)

	m, err := Make(1, "meter", reg)
	require.NoError(t, err)
	cm, err := Make(10, "centimeter", reg)
	require.NoError(t, err)

	diff, err := m.Sub(cm)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, diff.Value(), 1e-12)
}

func TestMul_NewtonFromBaseUnits(t *testing.T) {
	reg := testRegistry(t)

	massQ, err := Make(1, "kilogram", reg)
	require.NoError(t, err)
	lengthQ, err := Make(1, "meter", reg)
	require.NoError(t, err)
	timeQ, err := Make(1, "second", reg)
	require.NoError(t, err)

	accel, err := timeQ.Pow(number.FromInt(-2))
	require.NoError(t, err)
	product, err := massQ.Mul(lengthQ)
	require.NoError(t, err)
	forceQ, err := product.Mul(accel)
	require.NoError(t, err)

	newton, err := Make(1, "newton", reg)
	require.NoError(t, err)
	assert.True(t, forceQ.Commensurable(newton),
		"kg·m·s^-2 has the force dimension vector")

	inNewton, err := forceQ.Convert(newton.Unit())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, inNewton.Value(), 1e-12)
}

func TestDiv_SameUnitIsDimensionless(t *testing.T) {
	reg := testRegistry(t)

	a, err := Make(10, "meter", reg)
	require.NoError(t, err)
	b, err := Make(4, "meter", reg)
	require.NoError(t, err)

	ratio, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, ratio.Dimension().IsDimensionless())
	assert.InDelta(t, 2.5, ratio.Value(), 1e-12)
	assert.Equal(t, "2.5", ratio.String())
}

func TestPow_RoundTrip(t *testing.T) {
	reg := testRegistry(t)

	q, err := Make(4.76, "meter", reg)
	require.NoError(t, err)

	q5, err := q.Pow(number.FromInt(5))
	require.NoError(t, err)

	fifth, err := number.FromRational(1, 5)
	require.NoError(t, err)
	back, err := q5.Pow(fifth)
	require.NoError(t, err)

	assert.True(t, back.Unit().Equal(q.Unit()), "unit returns to exactly meter")
	assert.InDelta(t, 4.76, back.Value(), 1e-9)
}

func TestPow_FloatExponentStaysFloat(t *testing.T) {
	reg := testRegistry(t)

	q, err := Make(4.76, "meter", reg)
	require.NoError(t, err)
	q5, err := q.Pow(number.FromInt(5))
	require.NoError(t, err)

	almost, err := q5.Pow(number.FromFloat(0.2))
	require.NoError(t, err)

	exp := almost.Dimension().Exponent(dimension.Length)
	assert.Equal(t, number.TierFloat, exp.Tier())
	assert.InDelta(t, 1.0, exp.Float64(), 1e-12)

	// the floating exponent 1.0 is not the exact integer 1, so conversion to
	// any pure-length unit fails commensurability
	_, err = almost.Convert(unitOf(t, reg, "meter"))
	assert.ErrorIs(t, err, errors.ErrIncommensurableDimensions)
	_, err = almost.Convert(unitOf(t, reg, "foot"))
	assert.ErrorIs(t, err, errors.ErrIncommensurableDimensions)
}

func TestPow_NegativeBaseRestriction(t *testing.T) {
	reg := testRegistry(t)

	q, err := Make(-4, "meter", reg)
	require.NoError(t, err)

	_, err = q.Pow(number.FromInt(2))
	require.NoError(t, err)

	half, err := number.FromRational(1, 2)
	require.NoError(t, err)
	_, err = q.Pow(half)
	assert.ErrorIs(t, err, errors.ErrUndefinedPower)
}

func TestEqual(t *testing.T) {
	reg := testRegistry(t)

	m, err := Make(1, "meter", reg)
	require.NoError(t, err)
	cm, err := Make(100, "centimeter", reg)
	require.NoError(t, err)

	eq, err := m.Equal(cm)
	require.NoError(t, err)
	assert.True(t, eq)

	cm99, err := Make(99, "centimeter", reg)
	require.NoError(t, err)
	eq, err = m.Equal(cm99)
	require.NoError(t, err)
	assert.False(t, eq)

	kg, err := Make(1, "kilogram", reg)
	require.NoError(t, err)
	_, err = m.Equal(kg)
	assert.ErrorIs(t, err, errors.ErrIncommensurableDimensions)
}

func TestArrayBroadcast(t *testing.T) {
	reg := testRegistry(t)

	arr, err := MakeArray([]float64{1, 2, 3}, "meter", reg)
	require.NoError(t, err)
	scalar, err := Make(2, "second", reg)
	require.NoError(t, err)

	t.Run("array times scalar broadcasts", func(t *testing.T) {
		out, err := arr.Mul(scalar)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 4, 6}, out.Values())
		assert.False(t, out.IsScalar())
	})

	t.Run("array times array is elementwise", func(t *testing.T) {
		other, err := MakeArray([]float64{10, 20, 30}, "second", reg)
		require.NoError(t, err)
		out, err := arr.Mul(other)
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 40, 90}, out.Values())
	})

	t.Run("mismatched lengths fail", func(t *testing.T) {
		other, err := MakeArray([]float64{10, 20}, "second", reg)
		require.NoError(t, err)
		_, err = arr.Mul(other)
		assert.ErrorIs(t, err, errors.ErrArrayLengthMismatch)
	})

	t.Run("array plus scalar broadcasts", func(t *testing.T) {
		one, err := Make(1, "meter", reg)
		require.NoError(t, err)
		out, err := arr.Add(one)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 3, 4}, out.Values())
	})
}

func TestAs(t *testing.T) {
	reg := testRegistry(t)

	q, err := Make(3, "newton", reg)
	require.NoError(t, err)

	force := dimension.Of(dimension.Length, number.One()).
		With(dimension.Mass, number.One()).
		With(dimension.Time, number.FromInt(-2))

	typed, ok := q.As(force)
	require.True(t, ok)
	assert.InDelta(t, 3.0, typed.Value(), 1e-15)

	_, ok = q.As(dimension.Of(dimension.Mass, number.One()))
	assert.False(t, ok)
}

func TestImmutability(t *testing.T) {
	reg := testRegistry(t)

	values := []float64{1, 2, 3}
	q, err := MakeArray(values, "meter", reg)
	require.NoError(t, err)

	values[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, q.Values(), "quantity owns its magnitude")

	got := q.Values()
	got[1] = 99
	assert.Equal(t, []float64{1, 2, 3}, q.Values(), "accessor returns a copy")
}

func TestString(t *testing.T) {
	reg := testRegistry(t)

	q, err := Make(4.76, "meter", reg)
	require.NoError(t, err)
	assert.Equal(t, "4.76 m", q.String())

	arr, err := MakeArray([]float64{1, 2.5}, "kilogram", reg)
	require.NoError(t, err)
	assert.Equal(t, "[1 2.5] kg", arr.String())
}
