// Package format renders quantities for people: "9.81[m/s^2]",
// "Quantity(9.81, length=1, time=-2)" or "35.3 km/h".
package format

import (
	"fmt"
	"strings"

	"github.com/roach88/pval/internal/dimension"
	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
)

// String renders q as its magnitude followed by the base-unit expression in
// brackets, e.g. "9.81[m/s^2]" or "2[1/s]". Dimensionless quantities render
// as the bare magnitude. The result parses back with package expr.
func String[T num.Real[T]](q quantity.Quantity[T]) string {
	mag := Magnitude(q.Magnitude())
	if q.IsDimensionless() {
		return mag
	}
	return mag + "[" + Units(q.Dimension()) + "]"
}

// Magnitude renders a number so that it parses back as a single operand.
func Magnitude[T num.Real[T]](x T) string {
	s := x.String()
	if strings.Contains(s, "/") {
		return "(" + s + ")"
	}
	return s
}

// Units renders a dimension as an expression in SI base units, with positive
// exponents in the numerator: "kg m/s^2", "1/s", "m^(1/2)". The
// dimensionless vector renders as "1".
func Units[T num.Real[T]](v dimension.Vector[T]) string {
	var numer, denom []string
	for _, b := range dimension.Bases() {
		e := v.Exponent(b)
		switch num.Sign(e) {
		case 1:
			numer = append(numer, term(b.Symbol(), e))
		case -1:
			denom = append(denom, term(b.Symbol(), e.Neg()))
		}
	}

	switch {
	case len(numer) == 0 && len(denom) == 0:
		return "1"
	case len(denom) == 0:
		return strings.Join(numer, " ")
	case len(numer) == 0:
		return "1/" + group(denom)
	default:
		return strings.Join(numer, " ") + "/" + group(denom)
	}
}

func group(terms []string) string {
	if len(terms) == 1 {
		return terms[0]
	}
	return "(" + strings.Join(terms, " ") + ")"
}

func term[T num.Real[T]](symbol string, e T) string {
	s := e.String()
	switch {
	case s == "1":
		return symbol
	case strings.ContainsAny(s, "/-"):
		return symbol + "^(" + s + ")"
	default:
		return symbol + "^" + s
	}
}

// Describe renders q with named dimension exponents, omitting zeros:
// "Quantity(1.2, length=1, time=-1)".
func Describe[T num.Real[T]](q quantity.Quantity[T]) string {
	var b strings.Builder
	b.WriteString("Quantity(")
	b.WriteString(q.Magnitude().String())
	for _, base := range dimension.Bases() {
		e := q.Dimension().Exponent(base)
		if e.IsZero() {
			continue
		}
		fmt.Fprintf(&b, ", %s=%s", base.Name(), e)
	}
	b.WriteByte(')')
	return b.String()
}

// In expresses q as a multiple of unit, labelled with label: In(v, kmh,
// "km/h") gives "35.3 km/h". q and unit must have equal dimensions.
func In[T num.Real[T]](q, unit quantity.Quantity[T], label string) (string, error) {
	x, err := Convert(q, unit)
	if err != nil {
		return "", err
	}
	if label == "" {
		return Magnitude(x), nil
	}
	return Magnitude(x) + " " + label, nil
}

// Convert returns the plain number q / unit. It fails with an incompatible
// dimensions error unless q and unit have equal dimensions.
func Convert[T num.Real[T]](q, unit quantity.Quantity[T]) (T, error) {
	ratio, err := q.Div(unit)
	if err != nil {
		var zero T
		return zero, err
	}
	return ratio.Value()
}
