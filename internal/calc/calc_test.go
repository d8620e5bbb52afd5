package calc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pval/internal/codec"
	"github.com/roach88/pval/internal/expr"
	"github.com/roach88/pval/internal/quantity"
	"github.com/roach88/pval/internal/store"
	"github.com/roach88/pval/internal/units"
)

func newCalc(t *testing.T, domain string, opts ...Option) Calculator {
	t.Helper()
	c, err := New(domain, opts...)
	require.NoError(t, err)
	return c
}

func TestNewDomains(t *testing.T) {
	for _, d := range []string{"float", "rat", "decimal"} {
		c := newCalc(t, d)
		assert.Equal(t, d, c.Domain())
	}

	_, err := New("complex")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestEval(t *testing.T) {
	tests := []struct {
		domain   string
		input    string
		text     string
		describe string
		units    string
	}{
		{"rat", "9.81 m/s^2", "(981/100)[m/s^2]", "Quantity(981/100, length=1, time=-2)", "m/s^2"},
		{"decimal", "9.81 m/s^2", "9.81[m/s^2]", "Quantity(9.81, length=1, time=-2)", "m/s^2"},
		{"float", "2 / s", "2[1/s]", "Quantity(2, time=-1)", "1/s"},
		{"rat", "3 ft / 1 ft", "3", "Quantity(3)", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.domain+"/"+tt.input, func(t *testing.T) {
			r, err := newCalc(t, tt.domain).Eval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, r.Input)
			assert.Equal(t, tt.text, r.Text)
			assert.Equal(t, tt.describe, r.Describe)
			assert.Equal(t, tt.units, r.Units)
			assert.Equal(t, tt.domain, r.Record.Domain)
			assert.Equal(t, codec.MustDigest(r.Record), r.Digest)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	c := newCalc(t, "rat")

	_, err := c.Eval("1 m + 1 s")
	assert.True(t, quantity.IsIncompatible(err))

	_, err = c.Eval("1 / 0")
	assert.True(t, quantity.IsDivisionByZero(err))

	_, err = c.Eval("1 +")
	var se *expr.SyntaxError
	assert.True(t, errors.As(err, &se))
}

func TestEvalLargeRationalPowers(t *testing.T) {
	c := newCalc(t, "rat")

	r, err := c.Eval("1^5000 m")
	require.NoError(t, err)
	assert.Equal(t, "1[m]", r.Text)

	r, err = c.Eval("(1 m)^(1/5000)")
	require.NoError(t, err)
	assert.Equal(t, "1[m^(1/5000)]", r.Text)

	r, err = c.Eval("2^5000 / 2^4999")
	require.NoError(t, err)
	assert.Equal(t, "2", r.Text)

	_, err = c.Eval("3^100000000000000000000")
	require.Error(t, err)
	assert.Equal(t, CodeTooLarge, ErrorCode(err))
	assert.Contains(t, KnownCodes(), CodeTooLarge)

	_, err = c.Eval("2^(1/2)")
	assert.Equal(t, string(quantity.ErrCodeDomain), ErrorCode(err))
}

func TestSameQuantitySameDigest(t *testing.T) {
	c := newCalc(t, "rat")
	a, err := c.Eval("1 km")
	require.NoError(t, err)
	b, err := c.Eval("1000 m")
	require.NoError(t, err)
	assert.Equal(t, a.Digest, b.Digest)
}

func TestConvert(t *testing.T) {
	c := newCalc(t, "rat")

	conv, err := c.Convert("100 m / 9.58 s", "km/h")
	require.NoError(t, err)
	assert.Equal(t, "18000/479", conv.Value)
	assert.Equal(t, "(18000/479) km/h", conv.Text)

	conv, err = c.Convert("1 mi", "ft")
	require.NoError(t, err)
	assert.Equal(t, "5280", conv.Value)
	assert.Equal(t, "5280 ft", conv.Text)

	_, err = c.Convert("1 mi", "s")
	assert.True(t, quantity.IsIncompatible(err))

	_, err = c.Convert("1 mi", "furlong")
	var uu *units.UnknownUnitError
	assert.True(t, errors.As(err, &uu))
}

func TestDefineAndUnits(t *testing.T) {
	c := newCalc(t, "rat")
	n := len(c.Units())

	require.NoError(t, c.Define("test", []units.Definition{{Symbol: "furlong", Scale: "201.168", Of: "m"}}))
	us := c.Units()
	assert.Len(t, us, n+1)

	var found bool
	for _, u := range us {
		if u.Symbol == "furlong" {
			found = true
			assert.Equal(t, "25146/125", u.Scale)
			assert.Equal(t, "m", u.Units)
			assert.False(t, u.Prefixable)
		}
	}
	assert.True(t, found)

	conv, err := c.Convert("1 mi", "furlong")
	require.NoError(t, err)
	assert.Equal(t, "8", conv.Value)
}

func TestWithUnitFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units:\n  - symbol: smoot\n    scale: 1.7018\n    of: m\n"), 0o644))

	c := newCalc(t, "decimal", WithUnitFiles(path))
	r, err := c.Eval("364.4 smoot")
	require.NoError(t, err)
	assert.Equal(t, "620.13592[m]", r.Text)

	_, err = New("decimal", WithUnitFiles(filepath.Join(t.TempDir(), "missing.cue")))
	assert.Error(t, err)
}

func TestBind(t *testing.T) {
	c := newCalc(t, "rat")

	_, err := c.Bind("g", "9.81 m/s^2")
	require.NoError(t, err)
	r, err := c.Eval("$g * 2 kg")
	require.NoError(t, err)
	assert.Equal(t, "(981/50)[m kg/s^2]", r.Text)
	assert.Equal(t, []string{"g"}, c.Vars())

	_, err = c.Bind("2g", "1")
	assert.ErrorIs(t, err, store.ErrInvalidName)
}

func TestBindRecord(t *testing.T) {
	c := newCalc(t, "rat")
	other := newCalc(t, "float")

	r, err := c.Eval("(1/3) m")
	require.NoError(t, err)

	require.NoError(t, c.BindRecord("third", r.Record))
	got, err := c.Eval("$third * 3")
	require.NoError(t, err)
	assert.Equal(t, "1[m]", got.Text)

	err = other.BindRecord("third", r.Record)
	assert.ErrorIs(t, err, codec.ErrDomainMismatch)
}

func TestBindStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	rat := newCalc(t, "rat")
	g, err := rat.Eval("9.81 m/s^2")
	require.NoError(t, err)
	_, err = st.Put(ctx, "g", g.Record, "")
	require.NoError(t, err)

	fl := newCalc(t, "float")
	x, err := fl.Eval("2.5")
	require.NoError(t, err)
	_, err = st.Put(ctx, "x", x.Record, "")
	require.NoError(t, err)

	c := newCalc(t, "rat")
	n, err := BindStore(ctx, c, st)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only measurements in the calculator's domain are bound")
	assert.Equal(t, []string{"g"}, c.Vars())

	r, err := c.Eval("$g * 1 s")
	require.NoError(t, err)
	assert.Equal(t, "(981/100)[m/s]", r.Text)
}
