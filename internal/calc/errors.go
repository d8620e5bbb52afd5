package calc

import (
	"errors"

	"github.com/roach88/pval/internal/expr"
	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
	"github.com/roach88/pval/internal/units"
)

// Error codes beyond the quantity.ErrorCode values.
const (
	CodeSyntax          = "SYNTAX"
	CodeUnknownUnit     = "UNKNOWN_UNIT"
	CodeUnknownVariable = "UNKNOWN_VARIABLE"
	CodeUnitDefinition  = "UNIT_DEFINITION"
	CodeTooLarge        = "RESULT_TOO_LARGE"
	CodeOther           = "ERROR"
)

// ErrorCode classifies an error returned by a Calculator. It returns "" for
// a nil error.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, num.ErrTooLarge) {
		return CodeTooLarge
	}
	if code := quantity.Code(err); code != "" {
		return string(code)
	}

	var (
		syntax       *expr.SyntaxError
		unknownUnit  *units.UnknownUnitError
		unknownVar   *expr.UnknownVariableError
		inconsistent *units.InconsistentDefinitionError
		load         *units.LoadError
	)
	switch {
	case errors.As(err, &syntax):
		return CodeSyntax
	case errors.As(err, &unknownUnit):
		return CodeUnknownUnit
	case errors.As(err, &unknownVar):
		return CodeUnknownVariable
	case errors.As(err, &inconsistent), errors.As(err, &load):
		return CodeUnitDefinition
	}
	return CodeOther
}

// KnownCodes lists every code ErrorCode can return.
func KnownCodes() []string {
	return []string{
		string(quantity.ErrCodeIncompatible),
		string(quantity.ErrCodeDivisionByZero),
		string(quantity.ErrCodeDomain),
		CodeSyntax,
		CodeUnknownUnit,
		CodeUnknownVariable,
		CodeUnitDefinition,
		CodeTooLarge,
		CodeOther,
	}
}
