package quantity

import (
	"errors"
	"fmt"

	"github.com/roach88/pval/internal/dimension"
	"github.com/roach88/pval/internal/num"
)

// Quantity is a magnitude expressed in base MKS units together with its
// dimension. The zero value is the dimensionless zero.
type Quantity[T num.Real[T]] struct {
	magnitude T
	dim       dimension.Vector[T]
}

// New returns a Quantity with the given MKS magnitude and dimension.
func New[T num.Real[T]](magnitude T, dim dimension.Vector[T]) Quantity[T] {
	return Quantity[T]{magnitude: magnitude, dim: dim}
}

// Scalar returns a dimensionless Quantity.
func Scalar[T num.Real[T]](magnitude T) Quantity[T] {
	return Quantity[T]{magnitude: magnitude}
}

// Magnitude returns the value in base MKS units.
func (q Quantity[T]) Magnitude() T { return q.magnitude }

// Dimension returns the dimension vector.
func (q Quantity[T]) Dimension() dimension.Vector[T] { return q.dim }

// IsDimensionless reports whether every dimension exponent is zero.
func (q Quantity[T]) IsDimensionless() bool { return q.dim.IsZero() }

// Compatible reports whether q and o have exactly equal dimensions.
func (q Quantity[T]) Compatible(o Quantity[T]) bool { return q.dim.Equal(o.dim) }

// Value returns the magnitude of a dimensionless quantity as a plain number.
func (q Quantity[T]) Value() (T, error) {
	if !q.IsDimensionless() {
		var zero T
		return zero, incompatible("value", q.dim.String(), dimension.Vector[T]{}.String())
	}
	return q.magnitude, nil
}

// Add returns q + o. The dimensions must be equal.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	if !q.Compatible(o) {
		return Quantity[T]{}, incompatible("add", q.dim.String(), o.dim.String())
	}
	return Quantity[T]{magnitude: q.magnitude.Add(o.magnitude), dim: q.dim}, nil
}

// Sub returns q - o. The dimensions must be equal.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	if !q.Compatible(o) {
		return Quantity[T]{}, incompatible("sub", q.dim.String(), o.dim.String())
	}
	return Quantity[T]{magnitude: q.magnitude.Sub(o.magnitude), dim: q.dim}, nil
}

// Mul returns q * o. It never fails.
func (q Quantity[T]) Mul(o Quantity[T]) Quantity[T] {
	return Quantity[T]{magnitude: q.magnitude.Mul(o.magnitude), dim: q.dim.Add(o.dim)}
}

// Div returns q / o.
func (q Quantity[T]) Div(o Quantity[T]) (Quantity[T], error) {
	if o.magnitude.IsZero() {
		return Quantity[T]{}, divisionByZero("div")
	}
	return Quantity[T]{magnitude: q.magnitude.Quo(o.magnitude), dim: q.dim.Sub(o.dim)}, nil
}

// FloorDiv returns floor(q / o) with the dimension of q / o.
func (q Quantity[T]) FloorDiv(o Quantity[T]) (Quantity[T], error) {
	if o.magnitude.IsZero() {
		return Quantity[T]{}, divisionByZero("floordiv")
	}
	return Quantity[T]{magnitude: q.magnitude.Quo(o.magnitude).Floor(), dim: q.dim.Sub(o.dim)}, nil
}

// Pow returns q raised to any real exponent. The dimension is scaled by
// exponent; the magnitude must have a result in the number domain.
func (q Quantity[T]) Pow(exponent T) (Quantity[T], error) {
	m, err := q.magnitude.Pow(exponent)
	if err != nil {
		return Quantity[T]{}, domain("pow", err)
	}
	return Quantity[T]{magnitude: m, dim: q.dim.Scale(exponent)}, nil
}

// Root returns the n-th root of q, i.e. q.Pow(1/n).
func (q Quantity[T]) Root(n T) (Quantity[T], error) {
	if n.IsZero() {
		return Quantity[T]{}, domain("root", fmt.Errorf("%w: zeroth root", num.ErrDomain))
	}
	r, err := q.Pow(n.Inv())
	if err != nil {
		var qe *Error
		if errors.As(err, &qe) {
			qe.Op = "root"
		}
		return Quantity[T]{}, err
	}
	return r, nil
}

// Inv returns 1/q.
func (q Quantity[T]) Inv() (Quantity[T], error) {
	if q.magnitude.IsZero() {
		return Quantity[T]{}, divisionByZero("inv")
	}
	return Quantity[T]{magnitude: q.magnitude.Inv(), dim: q.dim.Neg()}, nil
}

// Neg returns -q.
func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{magnitude: q.magnitude.Neg(), dim: q.dim}
}

// Abs returns |q|.
func (q Quantity[T]) Abs() Quantity[T] {
	return Quantity[T]{magnitude: num.Abs(q.magnitude), dim: q.dim}
}

// Scale multiplies the magnitude by a plain number, keeping the dimension.
func (q Quantity[T]) Scale(k T) Quantity[T] {
	return Quantity[T]{magnitude: q.magnitude.Mul(k), dim: q.dim}
}

// DivScalar divides the magnitude by a plain number, keeping the dimension.
func (q Quantity[T]) DivScalar(k T) (Quantity[T], error) {
	if k.IsZero() {
		return Quantity[T]{}, divisionByZero("div")
	}
	return Quantity[T]{magnitude: q.magnitude.Quo(k), dim: q.dim}, nil
}

// String renders "magnitude [exponents]". See package format for unit
// notation.
func (q Quantity[T]) String() string {
	return q.magnitude.String() + " " + q.dim.String()
}
