// Package dimension provides Vector, the exponents of the seven SI base
// dimensions that describe the physical kind of a quantity.
//
// A Vector is a comparable-by-method value type: it is never mutated after
// construction and every operation returns a new Vector. Exponents may be any
// value of the chosen number domain, so fractional dimensions such as
// length^(1/2) are representable.
//
// Equal compares exponents exactly, with no tolerance. Float exponents built
// by repeated fractional powers can drift; the rat domain keeps them exact.
package dimension
