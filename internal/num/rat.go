package num

import (
	"fmt"
	"math/big"
	"strings"
)

// maxRatBits bounds the estimated size of an exact integer power.
const maxRatBits = 1 << 20

// Rat is an exact rational. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns a/b. b must be non-zero.
func NewRat(a, b int64) Rat {
	return Rat{big.NewRat(a, b)}
}

// RatFromBig copies r.
func RatFromBig(r *big.Rat) Rat {
	return Rat{new(big.Rat).Set(r)}
}

// Big returns a copy of the underlying value.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.val())
}

func (x Rat) val() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

func (x Rat) Add(y Rat) Rat { return Rat{new(big.Rat).Add(x.val(), y.val())} }
func (x Rat) Sub(y Rat) Rat { return Rat{new(big.Rat).Sub(x.val(), y.val())} }
func (x Rat) Mul(y Rat) Rat { return Rat{new(big.Rat).Mul(x.val(), y.val())} }
func (x Rat) Neg() Rat      { return Rat{new(big.Rat).Neg(x.val())} }

// Quo panics when y is zero, as math/big does.
func (x Rat) Quo(y Rat) Rat { return Rat{new(big.Rat).Quo(x.val(), y.val())} }

// Inv panics when x is zero, as math/big does.
func (x Rat) Inv() Rat { return Rat{new(big.Rat).Inv(x.val())} }

func (x Rat) Floor() Rat {
	v := x.val()
	// Denom is always positive, so Euclidean division is floor division.
	q := new(big.Int).Div(v.Num(), v.Denom())
	return Rat{new(big.Rat).SetInt(q)}
}

func (x Rat) Cmp(y Rat) int  { return x.val().Cmp(y.val()) }
func (x Rat) IsZero() bool   { return x.r == nil || x.r.Sign() == 0 }
func (x Rat) String() string { return x.val().RatString() }

// Pow computes x**y exactly. For y = p/q in lowest terms the q-th root of x
// must be rational, otherwise the error wraps ErrInexact. Powers whose exact
// result would exceed maxRatBits wrap ErrTooLarge.
func (x Rat) Pow(y Rat) (Rat, error) {
	base, exp := x.val(), y.val()
	if exp.Sign() == 0 {
		return NewRat(1, 1), nil
	}
	if base.Sign() == 0 {
		if exp.Sign() < 0 {
			return Rat{}, fmt.Errorf("%w: 0 raised to %s", ErrDomain, y)
		}
		return Rat{}, nil
	}

	q := exp.Denom()
	if base.IsInt() && base.Num().CmpAbs(bigOne) == 0 {
		return unitPow(base.Sign(), exp, x, y)
	}
	if q.Cmp(bigOne) > 0 {
		if base.Sign() < 0 && q.Bit(0) == 0 {
			return Rat{}, fmt.Errorf("%w: even root of a negative number", ErrDomain)
		}
		// An exact k-th root of an integer n >= 2 needs n >= 2^k.
		if !q.IsInt64() || q.Int64() >= int64(ratBitLen(base)) {
			return Rat{}, fmt.Errorf("%s raised to %s: %w: irrational root", x, y, ErrInexact)
		}
		root, err := ratRoot(base, int(q.Int64()))
		if err != nil {
			return Rat{}, fmt.Errorf("%s raised to %s: %w", x, y, err)
		}
		base = root
	}
	r, err := ratIntPow(base, exp.Num())
	if err != nil {
		return Rat{}, fmt.Errorf("%s raised to %s: %w", x, y, err)
	}
	return Rat{r}, nil
}

var bigOne = big.NewInt(1)

// unitPow raises 1 or -1 (sign) to exp.
func unitPow(sign int, exp *big.Rat, x, y Rat) (Rat, error) {
	if sign > 0 {
		return NewRat(1, 1), nil
	}
	if exp.Denom().Bit(0) == 0 {
		return Rat{}, fmt.Errorf("%w: %s raised to %s", ErrDomain, x, y)
	}
	if exp.Num().Bit(0) == 0 {
		return NewRat(1, 1), nil
	}
	return NewRat(-1, 1), nil
}

// ratBitLen returns the larger bit length of the numerator and denominator.
func ratBitLen(v *big.Rat) int {
	return max(v.Num().BitLen(), v.Denom().BitLen())
}

// ratIntPow returns base**n for integer n.
func ratIntPow(base *big.Rat, n *big.Int) (*big.Rat, error) {
	size := new(big.Int).Abs(n)
	size.Mul(size, big.NewInt(int64(ratBitLen(base))))
	if size.Cmp(big.NewInt(maxRatBits)) > 0 {
		return nil, fmt.Errorf("%w: exponent %s", ErrTooLarge, n)
	}
	e := new(big.Int).Abs(n)
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	if n.Sign() < 0 {
		num, den = den, num
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// ratRoot returns the exact k-th root of v.
func ratRoot(v *big.Rat, k int) (*big.Rat, error) {
	neg := v.Sign() < 0
	if neg && k%2 == 0 {
		return nil, fmt.Errorf("%w: even root of a negative number", ErrDomain)
	}
	num := new(big.Int).Abs(v.Num())
	rn, ok := intRoot(num, k)
	if !ok {
		return nil, fmt.Errorf("%w: irrational root", ErrInexact)
	}
	rd, ok := intRoot(v.Denom(), k)
	if !ok {
		return nil, fmt.Errorf("%w: irrational root", ErrInexact)
	}
	if neg {
		rn.Neg(rn)
	}
	return new(big.Rat).SetFrac(rn, rd), nil
}

// intRoot returns floor(n^(1/k)) and whether it is exact. n must be >= 0.
func intRoot(n *big.Int, k int) (*big.Int, bool) {
	if n.Sign() == 0 || k == 1 {
		return new(big.Int).Set(n), true
	}
	var x *big.Int
	if k == 2 {
		x = new(big.Int).Sqrt(n)
	} else {
		// Newton iteration from an overestimate converges down to the floor.
		kk := big.NewInt(int64(k))
		km1 := big.NewInt(int64(k - 1))
		x = new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()/k+1))
		for {
			t := new(big.Int).Exp(x, km1, nil)
			t.Quo(n, t)
			t.Add(t, new(big.Int).Mul(km1, x))
			t.Quo(t, kk)
			if t.Cmp(x) >= 0 {
				break
			}
			x = t
		}
	}
	check := new(big.Int).Exp(x, big.NewInt(int64(k)), nil)
	return x, check.Cmp(n) == 0
}

// ParseRat accepts integers, decimals, exponent notation and "a/b".
func ParseRat(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if n, d, ok := splitFraction(s); ok {
		num, err := ParseRat(n)
		if err != nil {
			return Rat{}, err
		}
		den, err := ParseRat(d)
		if err != nil {
			return Rat{}, err
		}
		if den.IsZero() {
			return Rat{}, syntaxError(NameRat, s)
		}
		return num.Quo(den), nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, syntaxError(NameRat, s)
	}
	return Rat{r}, nil
}
