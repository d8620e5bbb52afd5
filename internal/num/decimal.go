package num

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DecimalPrecision is the number of significant digits Decimal keeps.
const DecimalPrecision = 34

var (
	// arith never traps: overflow yields Infinity, as float64 would.
	arith = func() *apd.Context {
		c := apd.BaseContext.WithPrecision(DecimalPrecision)
		c.Traps = 0
		return c
	}()

	// strict traps the default conditions so Pow can report them.
	strict = apd.BaseContext.WithPrecision(DecimalPrecision)

	decimalHalf = apd.New(5, -1)
)

// Decimal is an arbitrary-precision decimal rounded to DecimalPrecision
// digits. The zero value is 0.
type Decimal struct {
	d *apd.Decimal
}

// NewDecimal returns coeff * 10**exp.
func NewDecimal(coeff int64, exp int32) Decimal {
	return Decimal{apd.New(coeff, exp)}
}

// Apd returns a copy of the underlying value.
func (x Decimal) Apd() *apd.Decimal {
	return new(apd.Decimal).Set(x.val())
}

func (x Decimal) val() *apd.Decimal {
	if x.d == nil {
		return new(apd.Decimal)
	}
	return x.d
}

type binaryOp func(d, x, y *apd.Decimal) (apd.Condition, error)

func (x Decimal) apply(op binaryOp, y Decimal) Decimal {
	r := new(apd.Decimal)
	// arith has no traps, so the error is always nil.
	_, _ = op(r, x.val(), y.val())
	return Decimal{r}
}

func (x Decimal) Add(y Decimal) Decimal { return x.apply(arith.Add, y) }
func (x Decimal) Sub(y Decimal) Decimal { return x.apply(arith.Sub, y) }
func (x Decimal) Mul(y Decimal) Decimal { return x.apply(arith.Mul, y) }
func (x Decimal) Quo(y Decimal) Decimal { return x.apply(arith.Quo, y) }
func (x Decimal) Inv() Decimal          { return NewDecimal(1, 0).Quo(x) }

func (x Decimal) Neg() Decimal {
	return Decimal{new(apd.Decimal).Neg(x.val())}
}

func (x Decimal) Floor() Decimal {
	r := new(apd.Decimal)
	_, _ = arith.Floor(r, x.val())
	return Decimal{r}
}

func (x Decimal) Cmp(y Decimal) int { return x.val().Cmp(y.val()) }
func (x Decimal) IsZero() bool      { return x.val().IsZero() }

// Pow computes x**y. An exponent of exactly 1/2 uses a correctly rounded
// square root so perfect squares come back exact.
func (x Decimal) Pow(y Decimal) (Decimal, error) {
	base, exp := x.val(), y.val()
	if exp.IsZero() {
		return NewDecimal(1, 0), nil
	}
	if base.IsZero() && exp.Sign() < 0 {
		return Decimal{}, fmt.Errorf("%w: 0 raised to %s", ErrDomain, y)
	}

	r := new(apd.Decimal)
	var cond apd.Condition
	var err error
	if exp.Cmp(decimalHalf) == 0 {
		if base.Sign() < 0 {
			return Decimal{}, fmt.Errorf("%w: square root of %s", ErrDomain, x)
		}
		cond, err = strict.Sqrt(r, base)
	} else {
		cond, err = strict.Pow(r, base, exp)
	}
	// Out-of-range results saturate the way arith and float64 do.
	switch {
	case cond&(apd.Overflow|apd.SystemOverflow) != 0:
		return Decimal{&apd.Decimal{Form: apd.Infinite, Negative: oddPowerOfNegative(base, exp)}}, nil
	case cond&(apd.Underflow|apd.SystemUnderflow) != 0:
		return Decimal{}, nil
	case cond&apd.InvalidOperation != 0:
		return Decimal{}, fmt.Errorf("%w: %s raised to %s", ErrDomain, x, y)
	}
	if err != nil {
		return Decimal{}, fmt.Errorf("%s raised to %s: %w", x, y, err)
	}
	return Decimal{r}, nil
}

// oddPowerOfNegative reports whether base**exp is negative.
func oddPowerOfNegative(base, exp *apd.Decimal) bool {
	if base.Sign() >= 0 {
		return false
	}
	var integ, frac apd.Decimal
	exp.Modf(&integ, &frac)
	if !frac.IsZero() {
		return false
	}
	var parity apd.Decimal
	if _, err := arith.Rem(&parity, &integ, apd.New(2, 0)); err != nil {
		return false
	}
	return !parity.IsZero()
}

// String renders plain notation for moderate exponents and scientific
// notation otherwise. Trailing zeros are dropped.
func (x Decimal) String() string {
	var r apd.Decimal
	r.Reduce(x.val())
	if r.IsZero() && r.Form == apd.Finite {
		return "0"
	}
	if r.Form == apd.Finite && r.Exponent >= -20 && r.Exponent <= 20 {
		return r.Text('f')
	}
	return r.String()
}

// ParseDecimal accepts decimal and exponent literals and "a/b".
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if n, d, ok := splitFraction(s); ok {
		num, err := ParseDecimal(n)
		if err != nil {
			return Decimal{}, err
		}
		den, err := ParseDecimal(d)
		if err != nil {
			return Decimal{}, err
		}
		if den.IsZero() {
			return Decimal{}, syntaxError(NameDecimal, s)
		}
		return num.Quo(den), nil
	}
	d, _, err := strict.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return Decimal{}, syntaxError(NameDecimal, s)
	}
	return Decimal{d}, nil
}
