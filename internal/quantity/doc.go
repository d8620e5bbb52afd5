// Package quantity implements Quantity, a magnitude in base MKS units paired
// with a dimension.Vector, and the arithmetic that propagates dimensions.
//
// Rules:
//   - Add, Sub and every comparison require exactly equal dimensions.
//   - Mul adds dimensions, Div subtracts them, Pow scales them by the exponent.
//   - Div by a zero magnitude fails rather than producing an infinity.
//   - Pow accepts any real exponent; the result must exist in the number domain.
//
// Quantities are immutable values. Failed operations return an *Error and
// leave their operands untouched. Nothing in this package logs or holds
// package-level state, so every function is safe for concurrent use.
package quantity
