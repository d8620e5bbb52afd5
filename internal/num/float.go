package num

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is a float64 magnitude.
type Float float64

func (x Float) Add(y Float) Float { return x + y }
func (x Float) Sub(y Float) Float { return x - y }
func (x Float) Mul(y Float) Float { return x * y }
func (x Float) Quo(y Float) Float { return x / y }
func (x Float) Inv() Float        { return 1 / x }
func (x Float) Neg() Float        { return -x }
func (x Float) Floor() Float      { return Float(math.Floor(float64(x))) }
func (x Float) IsZero() bool      { return x == 0 }
func (x Float) Cmp(y Float) int   { return cmp.Compare(x, y) }

// Pow follows math.Pow, except that results math.Pow reports as NaN or as an
// infinity from a zero base are domain errors.
func (x Float) Pow(y Float) (Float, error) {
	if x == 0 && y < 0 {
		return 0, fmt.Errorf("%w: 0 raised to %s", ErrDomain, y)
	}
	r := math.Pow(float64(x), float64(y))
	if math.IsNaN(r) && !math.IsNaN(float64(x)) && !math.IsNaN(float64(y)) {
		return 0, fmt.Errorf("%w: %s raised to %s", ErrDomain, x, y)
	}
	return Float(r), nil
}

func (x Float) String() string {
	if x == 0 {
		// Negating a zero exponent yields -0; render both zeros alike.
		return "0"
	}
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// ParseFloat accepts anything strconv.ParseFloat does plus "a/b" fractions.
func ParseFloat(s string) (Float, error) {
	s = strings.TrimSpace(s)
	if n, d, ok := splitFraction(s); ok {
		num, err := ParseFloat(n)
		if err != nil {
			return 0, err
		}
		den, err := ParseFloat(d)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, syntaxError(NameFloat, s)
		}
		return num / den, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, syntaxError(NameFloat, s)
	}
	return Float(f), nil
}
