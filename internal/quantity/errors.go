package quantity

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes quantity errors.
type ErrorCode string

const (
	// ErrCodeIncompatible indicates operands with different dimension vectors.
	ErrCodeIncompatible ErrorCode = "INCOMPATIBLE_DIMENSIONS"

	// ErrCodeDivisionByZero indicates a divisor with a zero magnitude.
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// ErrCodeDomain indicates a power with no result in the number domain.
	ErrCodeDomain ErrorCode = "DOMAIN"
)

// Error is returned by every failing quantity operation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operation, e.g. "add" or "pow".
	Op string

	// Message is a human-readable description.
	Message string

	// Left and Right render the operand dimensions for incompatible errors.
	Left, Right string

	// Err is the underlying number-domain error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Left != "" || e.Right != "" {
		return fmt.Sprintf("%s: %s: %s (%s vs %s)", e.Code, e.Op, e.Message, e.Left, e.Right)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsIncompatible reports whether err is an incompatible-dimensions error.
// Uses errors.As to handle wrapped errors.
func IsIncompatible(err error) bool {
	return hasCode(err, ErrCodeIncompatible)
}

// IsDivisionByZero reports whether err is a division-by-zero error.
func IsDivisionByZero(err error) bool {
	return hasCode(err, ErrCodeDivisionByZero)
}

// IsDomain reports whether err is a domain error.
func IsDomain(err error) bool {
	return hasCode(err, ErrCodeDomain)
}

// Code extracts the ErrorCode from err, or "" if err is not an *Error.
func Code(err error) ErrorCode {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}

func hasCode(err error, code ErrorCode) bool {
	return Code(err) == code
}

func incompatible(op, left, right string) *Error {
	return &Error{
		Code:    ErrCodeIncompatible,
		Op:      op,
		Message: "operands have different dimensions",
		Left:    left,
		Right:   right,
	}
}

func divisionByZero(op string) *Error {
	return &Error{
		Code:    ErrCodeDivisionByZero,
		Op:      op,
		Message: "divisor has zero magnitude",
	}
}

func domain(op string, err error) *Error {
	return &Error{
		Code:    ErrCodeDomain,
		Op:      op,
		Message: err.Error(),
		Err:     err,
	}
}
