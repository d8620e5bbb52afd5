package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pval/internal/dimension"
	"github.com/roach88/pval/internal/expr"
	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
	"github.com/roach88/pval/internal/units"
)

func fq(m num.Float, e ...num.Float) quantity.Quantity[num.Float] {
	var arr [dimension.Count]num.Float
	copy(arr[:], e)
	return quantity.New(m, dimension.FromArray(arr))
}

func rq(m string, e ...string) quantity.Quantity[num.Rat] {
	var arr [dimension.Count]num.Rat
	for i, s := range e {
		arr[i] = num.Rats.MustParse(s)
	}
	return quantity.New(num.Rats.MustParse(m), dimension.FromArray(arr))
}

func TestStringFloat(t *testing.T) {
	tests := []struct {
		q    quantity.Quantity[num.Float]
		want string
	}{
		{fq(9.81, 1, 0, -2), "9.81[m/s^2]"},
		{fq(2, 0, 0, -1), "2[1/s]"},
		{fq(1.5), "1.5"},
		{fq(0), "0"},
		{fq(3, 1, 1, -2), "3[m kg/s^2]"},
		{fq(1, -1, -1, 2), "1[s^2/(m kg)]"},
		{fq(4, 0.5), "4[m^0.5]"},
		{fq(4, -0.5), "4[1/m^0.5]"},
		{fq(-1, 0, 0, 0, 1, 0, 0, -1), "-1[C/mol]"},
		{fq(1, 0, 0, 0, 0, 1, 1), "1[K cd]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.q))
		})
	}
}

func TestStringRat(t *testing.T) {
	tests := []struct {
		q    quantity.Quantity[num.Rat]
		want string
	}{
		{rq("981/100", "1", "0", "-2"), "(981/100)[m/s^2]"},
		{rq("2", "1/2"), "2[m^(1/2)]"},
		{rq("2", "-1/3"), "2[1/m^(1/3)]"},
		{rq("-1/3"), "(-1/3)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.q))
		})
	}
}

func TestStringParsesBack(t *testing.T) {
	env := expr.NewEnv(units.NewMKS(num.Rats))
	for _, q := range []quantity.Quantity[num.Rat]{
		rq("981/100", "1", "0", "-2"),
		rq("2", "1/2"),
		rq("-7", "-1", "-1", "2"),
		rq("5/3", "0", "0", "0", "1", "-1/2", "0", "1"),
		rq("1"),
	} {
		s := String(q)
		got, err := expr.Eval(env, s)
		require.NoError(t, err, s)
		eq, err := got.Equal(q)
		require.NoError(t, err, s)
		assert.True(t, eq, "%s parsed as %s", s, got)
	}
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "1", Units(dimension.Vector[num.Float]{}))
	assert.Equal(t, "m^2 kg/s^3", Units(fq(1, 2, 1, -3).Dimension()))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Quantity(1.2, length=1, time=-1)", Describe(fq(1.2, 1, 0, -1)))
	assert.Equal(t, "Quantity(5)", Describe(fq(5)))
	assert.Equal(t, "Quantity(1/3, mass=1/2, amount=-2)", Describe(rq("1/3", "0", "1/2", "0", "0", "0", "0", "-2")))
}

func TestIn(t *testing.T) {
	reg := units.NewMKS(num.Rats)
	env := expr.NewEnv(reg)

	speed, err := expr.Eval(env, "100 m / 9.58 s")
	require.NoError(t, err)
	kmh, err := expr.Eval(env, "km/h")
	require.NoError(t, err)

	got, err := In(speed, kmh, "km/h")
	require.NoError(t, err)
	assert.Equal(t, "(18000/479) km/h", got)

	mile, err := reg.Lookup("mi")
	require.NoError(t, err)
	ft, err := reg.Lookup("ft")
	require.NoError(t, err)
	got, err = In(mile, ft, "")
	require.NoError(t, err)
	assert.Equal(t, "5280", got)

	_, err = In(speed, ft, "ft")
	assert.True(t, quantity.IsIncompatible(err))
}

func TestConvertByZeroUnit(t *testing.T) {
	_, err := Convert(fq(1, 1), fq(0, 1))
	assert.True(t, quantity.IsDivisionByZero(err))
}
