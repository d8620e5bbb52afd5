package codec

import (
	"errors"
	"fmt"

	"github.com/roach88/pval/internal/dimension"
	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
)

// ErrDomainMismatch is returned when a record is decoded into a different
// number domain than it was encoded from.
var ErrDomainMismatch = errors.New("number domain mismatch")

// Record is the serialized form of a quantity. Dimension lists exponents in
// canonical base order (length, mass, time, charge, temperature, luminosity,
// amount).
type Record struct {
	Domain    string                  `json:"domain" yaml:"domain"`
	Magnitude string                  `json:"magnitude" yaml:"magnitude"`
	Dimension [dimension.Count]string `json:"dimension" yaml:"dimension"`
}

// Encode returns the record for q. Numbers are rendered with the domain's
// canonical String, so equal quantities encode identically.
func Encode[T num.Real[T]](d num.Domain[T], q quantity.Quantity[T]) Record {
	rec := Record{Domain: d.Name, Magnitude: q.Magnitude().String()}
	for i, e := range q.Dimension().Exponents() {
		rec.Dimension[i] = e.String()
	}
	return rec
}

// Decode parses rec in domain d. Empty exponents read as zero.
func Decode[T num.Real[T]](d num.Domain[T], rec Record) (quantity.Quantity[T], error) {
	if rec.Domain != d.Name {
		return quantity.Quantity[T]{}, fmt.Errorf("%w: record is %q, want %q", ErrDomainMismatch, rec.Domain, d.Name)
	}
	mag, err := d.Parse(rec.Magnitude)
	if err != nil {
		return quantity.Quantity[T]{}, fmt.Errorf("magnitude: %w", err)
	}
	var e [dimension.Count]T
	for i, s := range rec.Dimension {
		if s == "" {
			continue
		}
		if e[i], err = d.Parse(s); err != nil {
			return quantity.Quantity[T]{}, fmt.Errorf("%s exponent: %w", dimension.Base(i), err)
		}
	}
	return quantity.New(mag, dimension.FromArray(e)), nil
}

// Canonical re-encodes rec through its domain, so that literals such as
// "0.50" or "2/4" take their canonical form.
func Canonical[T num.Real[T]](d num.Domain[T], rec Record) (Record, error) {
	q, err := Decode(d, rec)
	if err != nil {
		return Record{}, err
	}
	return Encode(d, q), nil
}
