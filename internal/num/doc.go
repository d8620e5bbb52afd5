// Package num defines the number domains a quantity can be computed in.
//
// The dimension and quantity packages are generic over any type satisfying
// Real. Three domains ship with pval:
//   - Float: IEEE-754 float64, fast and approximate
//   - Rat: exact rationals, so fractional exponents such as 1/3 compare exactly
//   - Decimal: 34-digit decimal arithmetic backed by apd
//
// Every implementation is an immutable value type whose zero value is the
// number zero. This package imports nothing internal.
package num
