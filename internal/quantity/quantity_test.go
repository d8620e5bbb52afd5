package quantity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pval/internal/dimension"
	"github.com/roach88/pval/internal/num"
)

type (
	F = num.Float
	R = num.Rat
)

func fq(m F, e ...F) Quantity[F] {
	var arr [dimension.Count]F
	copy(arr[:], e)
	return New(m, dimension.FromArray(arr))
}

func rq(m string, e ...string) Quantity[R] {
	var arr [dimension.Count]R
	for i, s := range e {
		arr[i] = num.Rats.MustParse(s)
	}
	return New(num.Rats.MustParse(m), dimension.FromArray(arr))
}

// assertSame checks magnitude and dimension for exact equality.
func assertSame[T num.Real[T]](t *testing.T, want, got Quantity[T]) {
	t.Helper()
	assert.True(t, want.Dimension().Equal(got.Dimension()), "dimension: want %s, got %s", want.Dimension(), got.Dimension())
	assert.Equal(t, 0, want.Magnitude().Cmp(got.Magnitude()), "magnitude: want %s, got %s", want.Magnitude(), got.Magnitude())
}

func TestMultiplyCommutativeAndAssociative(t *testing.T) {
	a := rq("3/2", "1")
	b := rq("4", "0", "0", "-1")
	c := rq("-2/3", "0", "1", "0", "0", "1/2")

	assertSame(t, a.Mul(b), b.Mul(a))
	assertSame(t, a.Mul(c), c.Mul(a))
	assertSame(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
}

func TestAddRequiresEqualDimensions(t *testing.T) {
	base := rq("1", "1", "0", "-2")
	for _, b := range dimension.Bases() {
		for _, delta := range []string{"1", "-1", "1/2", "1/1000"} {
			e := base.Dimension().Exponents()
			e[b] = e[b].Add(num.Rats.MustParse(delta))
			other := New(num.NewRat(1, 1), dimension.FromArray(e))

			_, err := base.Add(other)
			assert.True(t, IsIncompatible(err), "add with %s differing by %s", b, delta)
			_, err = base.Sub(other)
			assert.True(t, IsIncompatible(err), "sub with %s differing by %s", b, delta)
		}
	}
}

func TestAddSameDimension(t *testing.T) {
	a := fq(1.25, 1, 0, -1)
	b := fq(10, 1, 0, -1)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assertSame(t, fq(11.25, 1, 0, -1), sum)

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assertSame(t, fq(8.75, 1, 0, -1), diff)
}

func TestInverseRoundTrip(t *testing.T) {
	for _, m := range []string{"1", "7", "-3/8", "1e-9", "123456789"} {
		a := rq(m, "1", "-2", "0", "0", "1/3")
		inv, err := a.Pow(num.NewRat(-1, 1))
		require.NoError(t, err)
		p := a.Mul(inv)
		assert.True(t, p.IsDimensionless(), m)
		assert.Equal(t, "1", p.Magnitude().String(), m)
	}

	a := fq(49, 0, 1)
	inv, err := a.Pow(-1)
	require.NoError(t, err)
	p := a.Mul(inv)
	assert.True(t, p.IsDimensionless())
	assert.InDelta(t, 1.0, float64(p.Magnitude()), 1e-15)
}

func TestFractionalExponent(t *testing.T) {
	r, err := fq(4, 2).Pow(0.5)
	require.NoError(t, err)
	assertSame(t, fq(2, 1), r)

	rr, err := rq("4", "2").Pow(num.NewRat(1, 2))
	require.NoError(t, err)
	assertSame(t, rq("2", "1"), rr)

	cube, err := rq("8", "1").Pow(num.NewRat(1, 3))
	require.NoError(t, err)
	assertSame(t, rq("2", "1/3"), cube)
}

func TestPowDomainError(t *testing.T) {
	q := fq(-4, 1)
	_, err := q.Pow(0.5)
	require.Error(t, err)
	assert.True(t, IsDomain(err))
	assert.ErrorIs(t, err, num.ErrDomain)
	assertSame(t, fq(-4, 1), q)

	_, err = rq("2", "1").Pow(num.NewRat(1, 2))
	assert.True(t, IsDomain(err))
	assert.ErrorIs(t, err, num.ErrInexact)
}

func TestScenarioIncompatibleAddition(t *testing.T) {
	length := fq(5, 1)
	mass := fq(3, 0, 1)

	_, err := length.Add(mass)
	require.Error(t, err)
	assert.True(t, IsIncompatible(err))
	assert.Equal(t, ErrCodeIncompatible, Code(err))
	assert.Contains(t, err.Error(), "[1 0 0 0 0 0 0] vs [0 1 0 0 0 0 0]")
}

func TestScenarioDivisionProducingDimensionless(t *testing.T) {
	r, err := fq(10, 1).Div(fq(2, 1))
	require.NoError(t, err)
	assertSame(t, fq(5), r)
	assert.True(t, r.IsDimensionless())
}

func TestScenarioDerivedDimension(t *testing.T) {
	speed := fq(3, 1).Mul(fq(2, 0, 0, -1))
	assert.Equal(t, "[1 0 -1 0 0 0 0]", speed.Dimension().String())
	assert.Equal(t, F(6), speed.Magnitude())
}

func TestDivisionByZero(t *testing.T) {
	zeros := []Quantity[F]{fq(0), fq(0, 1), fq(0, 0.5, -2, 0, 0, 0, 3)}
	numerators := []Quantity[F]{fq(0), fq(1), fq(-3, 1, 1), fq(2.5, 0, 0, 0, 0, 0, 1)}
	for _, z := range zeros {
		for _, a := range numerators {
			_, err := a.Div(z)
			assert.True(t, IsDivisionByZero(err), "%s / %s", a, z)
			_, err = a.FloorDiv(z)
			assert.True(t, IsDivisionByZero(err), "%s // %s", a, z)
		}
		_, err := z.Inv()
		assert.True(t, IsDivisionByZero(err))
	}

	_, err := rq("1").Div(rq("0", "1"))
	assert.True(t, IsDivisionByZero(err))
}

func TestNegAndAbs(t *testing.T) {
	q := fq(1.5, 1, 0, -1)
	n := q.Neg()
	assertSame(t, fq(-1.5, 1, 0, -1), n)
	assertSame(t, q, n.Neg())
	assertSame(t, q, n.Abs())
	assertSame(t, q, q.Abs())
}

func TestRootAndInv(t *testing.T) {
	r, err := rq("27", "3", "0", "-6").Root(num.NewRat(3, 1))
	require.NoError(t, err)
	assertSame(t, rq("3", "1", "0", "-2"), r)

	_, err = rq("2").Root(num.Rat{})
	assert.True(t, IsDomain(err))

	_, err = rq("-4", "2").Root(num.NewRat(2, 1))
	require.Error(t, err)
	var qe *Error
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "root", qe.Op)

	inv, err := rq("4", "1", "-1").Inv()
	require.NoError(t, err)
	assertSame(t, rq("1/4", "-1", "1"), inv)
}

func TestFloorDiv(t *testing.T) {
	r, err := fq(3, 0, 0, 1, 0, 5).FloorDiv(fq(1.2, 1))
	require.NoError(t, err)
	assertSame(t, fq(2, -1, 0, 1, 0, 5), r)

	r, err = fq(-3.3).FloorDiv(fq(3, 0, 0, 1))
	require.NoError(t, err)
	assertSame(t, fq(-2, 0, 0, -1), r)
}

func TestScalarOperations(t *testing.T) {
	v := fq(1.5, 1, 0, -1)
	assertSame(t, fq(-4.5, 1, 0, -1), v.Scale(-3))

	half, err := v.DivScalar(3)
	require.NoError(t, err)
	assertSame(t, fq(0.5, 1, 0, -1), half)

	_, err = v.DivScalar(0)
	assert.True(t, IsDivisionByZero(err))
}

func TestValue(t *testing.T) {
	x, err := fq(0.25).Value()
	require.NoError(t, err)
	assert.Equal(t, F(0.25), x)

	_, err = fq(0.25, 1).Value()
	assert.True(t, IsIncompatible(err))
}

func TestCompare(t *testing.T) {
	a := fq(3.2, -3, 1)
	b := fq(1, -3, 1)
	c := fq(1, 0, 1)

	tests := []struct {
		name string
		op   func(Quantity[F], Quantity[F]) (bool, error)
		ab   bool
		ba   bool
		aa   bool
	}{
		{"equal", Quantity[F].Equal, false, false, true},
		{"less", Quantity[F].Less, false, true, false},
		{"less_equal", Quantity[F].LessEqual, false, true, true},
		{"greater", Quantity[F].Greater, true, false, false},
		{"greater_equal", Quantity[F].GreaterEqual, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.ab, got)

			got, err = tt.op(b, a)
			require.NoError(t, err)
			assert.Equal(t, tt.ba, got)

			got, err = tt.op(a, a)
			require.NoError(t, err)
			assert.Equal(t, tt.aa, got)

			got, err = tt.op(a, c)
			assert.True(t, IsIncompatible(err))
			assert.False(t, got)
		})
	}
}

func TestDimensionlessAlwaysComparable(t *testing.T) {
	c, err := fq(2).Cmp(fq(-7))
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func TestOperandsUnchangedAfterFailure(t *testing.T) {
	a := rq("5", "1")
	b := rq("3", "0", "1")
	_, _ = a.Add(b)
	_, _ = a.Div(rq("0"))
	_, _ = a.Pow(num.NewRat(1, 2))
	assertSame(t, rq("5", "1"), a)
	assertSame(t, rq("3", "0", "1"), b)
}

func TestZeroValueQuantity(t *testing.T) {
	var q Quantity[R]
	assert.True(t, q.IsDimensionless())
	assert.True(t, q.Magnitude().IsZero())
	assert.Equal(t, "0 [0 0 0 0 0 0 0]", q.String())
}

func TestErrorCodeOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), Code(errors.New("other")))
	assert.False(t, IsDomain(nil))
}
