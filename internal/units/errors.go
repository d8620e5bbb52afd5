package units

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// InconsistentDefinitionError reports an attempt to redefine a unit with a
// different value or prefix rule.
type InconsistentDefinitionError struct {
	Symbol string
	Old    string
	New    string
}

func (e *InconsistentDefinitionError) Error() string {
	return fmt.Sprintf("unit %q was previously defined differently: old %s, new %s", e.Symbol, e.Old, e.New)
}

// UnknownUnitError reports a symbol that is neither defined nor a prefixed
// form of a prefixable unit.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Symbol)
}

// LoadError reports an invalid definition file entry.
type LoadError struct {
	Source  string
	Symbol  string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	if e.Symbol != "" {
		return fmt.Sprintf("%s: unit %q: %s", e.Source, e.Symbol, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}
