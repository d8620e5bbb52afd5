package dimension

import (
	"strings"

	"github.com/roach88/pval/internal/num"
)

// Vector holds one exponent per base dimension. The zero value is the
// dimensionless vector.
type Vector[T num.Real[T]] struct {
	e [Count]T
}

// New builds a Vector from exponents in canonical order.
func New[T num.Real[T]](length, mass, time, charge, temperature, luminosity, amount T) Vector[T] {
	return Vector[T]{e: [Count]T{length, mass, time, charge, temperature, luminosity, amount}}
}

// FromArray builds a Vector from an exponent array in canonical order.
func FromArray[T num.Real[T]](e [Count]T) Vector[T] {
	return Vector[T]{e: e}
}

// Of returns the Vector with exponent exp on base b and zero elsewhere.
func Of[T num.Real[T]](b Base, exp T) Vector[T] {
	var v Vector[T]
	v.e[b] = exp
	return v
}

// Exponent returns the exponent of base b.
func (v Vector[T]) Exponent(b Base) T {
	return v.e[b]
}

// Exponents returns a copy of all seven exponents.
func (v Vector[T]) Exponents() [Count]T {
	return v.e
}

// Add returns the element-wise sum: the dimension of a product.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	var r Vector[T]
	for i := range v.e {
		r.e[i] = v.e[i].Add(o.e[i])
	}
	return r
}

// Neg returns the element-wise negation: the dimension of a reciprocal.
func (v Vector[T]) Neg() Vector[T] {
	var r Vector[T]
	for i := range v.e {
		r.e[i] = v.e[i].Neg()
	}
	return r
}

// Sub returns v.Add(o.Neg()): the dimension of a quotient.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	return v.Add(o.Neg())
}

// Scale multiplies every exponent by k: the dimension of a power.
func (v Vector[T]) Scale(k T) Vector[T] {
	var r Vector[T]
	for i := range v.e {
		r.e[i] = v.e[i].Mul(k)
	}
	return r
}

// IsZero reports whether every exponent is exactly zero.
func (v Vector[T]) IsZero() bool {
	for _, x := range v.e {
		if !x.IsZero() {
			return false
		}
	}
	return true
}

// Equal compares all seven exponents exactly. No tolerance is applied; use
// the rat domain when fractional exponents must round-trip.
func (v Vector[T]) Equal(o Vector[T]) bool {
	for i := range v.e {
		if v.e[i].Cmp(o.e[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders the exponents as "[1 0 -2 0 0 0 0]".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.e {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(x.String())
	}
	b.WriteByte(']')
	return b.String()
}
