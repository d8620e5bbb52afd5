package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/pval/internal/num"
)

type F = num.Float

func TestVectorZeroValueIsDimensionless(t *testing.T) {
	var v Vector[F]
	assert.True(t, v.IsZero())
	assert.Equal(t, "[0 0 0 0 0 0 0]", v.String())
}

func TestVectorAdd(t *testing.T) {
	speed := New[F](1, 0, -1, 0, 0, 0, 0)
	time := Of[F](Time, 1)

	assert.True(t, speed.Add(time).Equal(Of[F](Length, 1)))
	assert.Equal(t, "[1 0 -1 0 0 0 0]", Of[F](Length, 1).Add(Of[F](Time, -1)).String())
}

func TestVectorNegAndSub(t *testing.T) {
	force := New[F](1, 1, -2, 0, 0, 0, 0)
	assert.Equal(t, "[-1 -1 2 0 0 0 0]", force.Neg().String())

	accel := New[F](1, 0, -2, 0, 0, 0, 0)
	assert.True(t, force.Sub(accel).Equal(Of[F](Mass, 1)))
	assert.True(t, force.Sub(force).IsZero())
}

func TestVectorScaleFractional(t *testing.T) {
	area := Of[F](Length, 2)
	assert.True(t, area.Scale(0.5).Equal(Of[F](Length, 1)))
	assert.Equal(t, "[0.5 0 0 0 0 0 0]", Of[F](Length, 1).Scale(0.5).String())
}

func TestVectorEqualDetectsEveryPosition(t *testing.T) {
	base := New[F](1, 2, 3, 4, 5, 6, 7)
	for _, b := range Bases() {
		e := base.Exponents()
		e[b] = e[b].Add(0.25)
		assert.False(t, base.Equal(FromArray(e)), "difference in %s not detected", b)
	}
	assert.True(t, base.Equal(FromArray(base.Exponents())))
}

func TestVectorImmutable(t *testing.T) {
	v := New[F](1, 0, 0, 0, 0, 0, 0)
	e := v.Exponents()
	e[Length] = 9
	_ = v.Add(v).Scale(3)
	assert.Equal(t, F(1), v.Exponent(Length))
}

func TestVectorRatExact(t *testing.T) {
	third := num.NewRat(1, 3)
	v := Of[num.Rat](Length, num.NewRat(1, 1))
	cube := v.Scale(third).Scale(third).Scale(third)
	back := cube.Scale(num.NewRat(27, 1))
	assert.True(t, back.Equal(v))
	assert.Equal(t, "[1/27 0 0 0 0 0 0]", cube.String())
}

func TestBase(t *testing.T) {
	assert.Equal(t, "mass", Mass.Name())
	assert.Equal(t, "kg", Mass.Symbol())
	assert.Equal(t, "mol", Amount.Symbol())
	assert.Equal(t, "unknown", Base(42).Name())

	b, ok := ParseBase("cd")
	assert.True(t, ok)
	assert.Equal(t, Luminosity, b)

	b, ok = ParseBase("temperature")
	assert.True(t, ok)
	assert.Equal(t, Temperature, b)

	_, ok = ParseBase("angle")
	assert.False(t, ok)
	assert.Len(t, Bases(), Count)
}
