package num

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	for _, name := range Names() {
		assert.True(t, Valid(name), name)
	}
	assert.False(t, Valid("complex"))
	assert.False(t, Valid(""))
}

// parseCases exercises the literal forms every domain must accept.
func parseCases[T Real[T]](t *testing.T, d Domain[T]) {
	t.Helper()
	tests := []struct {
		in   string
		want string
	}{
		{"1.5", "3/2"},
		{"3/4", "0.75"},
		{" 1e3 ", "1000"},
		{"-2", "-2"},
	}
	for _, tt := range tests {
		got, err := d.Parse(tt.in)
		require.NoError(t, err, tt.in)
		want := d.MustParse(tt.want)
		assert.Equal(t, 0, got.Cmp(want), "%s: %s parsed as %s", d.Name, tt.in, got)
	}

	for _, bad := range []string{"", "abc", "1/0", "1/x"} {
		_, err := d.Parse(bad)
		assert.ErrorIs(t, err, ErrSyntax, "%s: %q", d.Name, bad)
	}
}

func TestParse(t *testing.T) {
	t.Run("float", func(t *testing.T) { parseCases(t, Floats) })
	t.Run("rat", func(t *testing.T) { parseCases(t, Rats) })
	t.Run("decimal", func(t *testing.T) { parseCases(t, Decimals) })
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { Rats.MustParse("nope") })
}

// zeroValueIsZero checks the contract generic code relies on.
func zeroValueIsZero[T Real[T]](t *testing.T, d Domain[T]) {
	t.Helper()
	var z T
	assert.True(t, z.IsZero(), d.Name)
	one := d.MustParse("1")
	assert.Equal(t, 0, z.Add(one).Cmp(one), d.Name)
	assert.Equal(t, 0, Sign(z), d.Name)
	assert.Equal(t, -1, Sign(one.Neg()), d.Name)
	assert.Equal(t, 0, Abs(one.Neg()).Cmp(one), d.Name)
}

func TestZeroValue(t *testing.T) {
	zeroValueIsZero(t, Floats)
	zeroValueIsZero(t, Rats)
	zeroValueIsZero(t, Decimals)
}

func TestFloatPow(t *testing.T) {
	r, err := Float(4).Pow(0.5)
	require.NoError(t, err)
	assert.Equal(t, Float(2), r)

	r, err = Float(2).Pow(-1)
	require.NoError(t, err)
	assert.Equal(t, Float(0.5), r)

	_, err = Float(-8).Pow(Float(1) / 3)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Float(0).Pow(-1)
	assert.ErrorIs(t, err, ErrDomain)

	r, err = Float(-2).Pow(3)
	require.NoError(t, err)
	assert.Equal(t, Float(-8), r)
}

func TestFloatArithmetic(t *testing.T) {
	x := Float(7.5)
	assert.Equal(t, Float(10), x.Add(2.5))
	assert.Equal(t, Float(5), x.Sub(2.5))
	assert.Equal(t, Float(15), x.Mul(2))
	assert.Equal(t, Float(2.5), x.Quo(3))
	assert.Equal(t, Float(0.5), Float(2).Inv())
	assert.Equal(t, Float(-8), Float(-7.5).Floor())
	assert.Equal(t, "7.5", x.String())
	assert.Equal(t, 1, x.Cmp(7))
}

func TestRatPow(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
		err  error
	}{
		{"square root", "4", "1/2", "2", nil},
		{"root of fraction", "9/4", "1/2", "3/2", nil},
		{"odd root of negative", "-8", "1/3", "-2", nil},
		{"rational power", "8", "2/3", "4", nil},
		{"negative rational power", "27/8", "-1/3", "2/3", nil},
		{"negative integer power", "2", "-2", "1/4", nil},
		{"zero exponent", "5", "0", "1", nil},
		{"zero base", "0", "3", "0", nil},
		{"even root of negative", "-4", "1/2", "", ErrDomain},
		{"zero to negative", "0", "-1", "", ErrDomain},
		{"irrational", "2", "1/2", "", ErrInexact},
		{"one to a large power", "1", "5000", "1", nil},
		{"root of one with large degree", "1", "1/5000", "1", nil},
		{"minus one odd power", "-1", "5001", "-1", nil},
		{"minus one even power", "-1", "-5000", "1", nil},
		{"minus one odd root", "-1", "2/5001", "1", nil},
		{"minus one even root", "-1", "1/5000", "", ErrDomain},
		{"root degree beyond base size", "8", "1/5000", "", ErrInexact},
		{"huge root degree", "2", "1/100000000000000000000", "", ErrInexact},
		{"huge exponent", "3", "100000000000000000000", "", ErrTooLarge},
		{"result beyond size bound", "2", "10000000", "", ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rats.MustParse(tt.x).Pow(Rats.MustParse(tt.y))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestRatLargePow(t *testing.T) {
	want := new(big.Int).Lsh(big.NewInt(1), 5000)

	got, err := NewRat(2, 1).Pow(NewRat(5000, 1))
	require.NoError(t, err)
	assert.Equal(t, want.String(), got.String())

	inv, err := NewRat(1, 2).Pow(NewRat(-5000, 1))
	require.NoError(t, err)
	assert.Equal(t, want.String(), inv.String())

	root, err := got.Pow(NewRat(1, 5000))
	require.NoError(t, err)
	assert.Equal(t, "2", root.String())
}

func TestRatFloor(t *testing.T) {
	assert.Equal(t, "-4", NewRat(-7, 2).Floor().String())
	assert.Equal(t, "3", NewRat(7, 2).Floor().String())
	assert.Equal(t, "2", NewRat(2, 1).Floor().String())
}

func TestRatImmutable(t *testing.T) {
	a := NewRat(1, 3)
	b := a.Add(NewRat(1, 3))
	assert.Equal(t, "1/3", a.String())
	assert.Equal(t, "2/3", b.String())

	big := a.Big()
	big.SetInt64(9)
	assert.Equal(t, "1/3", a.String())
}

func TestIntRoot(t *testing.T) {
	for _, tt := range []struct {
		n, k  int64
		root  int64
		exact bool
	}{
		{27, 3, 3, true},
		{28, 3, 3, false},
		{1 << 40, 5, 256, true},
		{2, 2, 1, false},
		{1, 7, 1, true},
	} {
		x, ok := intRoot(bigInt(tt.n), int(tt.k))
		assert.Equal(t, tt.root, x.Int64(), "%d^(1/%d)", tt.n, tt.k)
		assert.Equal(t, tt.exact, ok, "%d^(1/%d)", tt.n, tt.k)
	}
}

func TestDecimalArithmetic(t *testing.T) {
	sum := Decimals.MustParse("0.1").Add(Decimals.MustParse("0.2"))
	assert.Equal(t, "0.3", sum.String())

	third := NewDecimal(1, 0).Quo(NewDecimal(3, 0))
	assert.Equal(t, "0.3333333333333333333333333333333333", third.String())

	assert.Equal(t, "1000", Decimals.MustParse("1e3").String())
	assert.Equal(t, "-4", Decimals.MustParse("-3.5").Floor().String())
	assert.Equal(t, "0.25", NewDecimal(4, 0).Inv().String())
	assert.Equal(t, "0", Decimal{}.Mul(NewDecimal(-2, 0)).String())
}

func TestDecimalPow(t *testing.T) {
	r, err := NewDecimal(4, 0).Pow(Decimals.MustParse("0.5"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(NewDecimal(2, 0)))

	r, err = NewDecimal(2, 0).Pow(NewDecimal(10, 0))
	require.NoError(t, err)
	assert.Equal(t, "1024", r.String())

	r, err = NewDecimal(-2, 0).Pow(NewDecimal(3, 0))
	require.NoError(t, err)
	assert.Equal(t, "-8", r.String())

	_, err = NewDecimal(-4, 0).Pow(Decimals.MustParse("0.5"))
	assert.ErrorIs(t, err, ErrDomain)

	_, err = NewDecimal(-8, 0).Pow(Decimals.MustParse("0.25"))
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Decimal{}.Pow(NewDecimal(-1, 0))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestDecimalPowOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{"overflow", "10", "1e10", "Infinity"},
		{"negative odd overflow", "-10", "10000000001", "-Infinity"},
		{"negative even overflow", "-10", "10000000000", "Infinity"},
		{"fractional overflow", "10", "10000000000.5", "Infinity"},
		{"underflow", "10", "-1e10", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decimals.MustParse(tt.x).Pow(Decimals.MustParse(tt.y))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
