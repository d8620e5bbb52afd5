package units

import (
	"fmt"
	"sort"

	"github.com/roach88/pval/internal/dimension"
	"github.com/roach88/pval/internal/quantity"
)

// Definition describes a unit in a definition file. A unit is either a
// multiple of an existing unit (Of) or a scale on an explicit dimension.
// Scale and dimension exponents are number literals in any form the target
// domain parses, including "1/3".
type Definition struct {
	Symbol    string            `yaml:"symbol" json:"symbol"`
	Scale     string            `yaml:"scale,omitempty" json:"scale,omitempty"`
	Of        string            `yaml:"of,omitempty" json:"of,omitempty"`
	Dimension map[string]string `yaml:"dimension,omitempty" json:"dimension,omitempty"`
	Prefix    bool              `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Aliases   []string          `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Apply installs definitions in order, so later entries may refer to
// earlier ones through Of. Either every definition is installed or, on
// error, the registry is left unchanged. source names the origin for error
// messages.
func (r *Registry[T]) Apply(source string, defs []Definition) error {
	staged := r.clone()
	for _, def := range defs {
		q, err := staged.resolve(def)
		if err != nil {
			return &LoadError{Source: source, Symbol: def.Symbol, Message: err.Error()}
		}
		for _, sym := range append([]string{def.Symbol}, def.Aliases...) {
			if err := staged.Define(sym, q, def.Prefix); err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
		}
	}
	r.units = staged.units
	return nil
}

func (r *Registry[T]) resolve(def Definition) (quantity.Quantity[T], error) {
	if def.Symbol == "" {
		return quantity.Quantity[T]{}, fmt.Errorf("symbol is required")
	}
	scaleText := def.Scale
	if scaleText == "" {
		scaleText = "1"
	}
	scale, err := r.domain.Parse(scaleText)
	if err != nil {
		return quantity.Quantity[T]{}, fmt.Errorf("scale: %w", err)
	}

	if def.Of != "" {
		if len(def.Dimension) > 0 {
			return quantity.Quantity[T]{}, fmt.Errorf("of and dimension are mutually exclusive")
		}
		base, err := r.Lookup(def.Of)
		if err != nil {
			return quantity.Quantity[T]{}, err
		}
		return base.Scale(scale), nil
	}

	var e [dimension.Count]T
	keys := make([]string, 0, len(def.Dimension))
	for k := range def.Dimension {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b, ok := dimension.ParseBase(k)
		if !ok {
			return quantity.Quantity[T]{}, fmt.Errorf("unknown dimension %q", k)
		}
		x, err := r.domain.Parse(def.Dimension[k])
		if err != nil {
			return quantity.Quantity[T]{}, fmt.Errorf("dimension %s: %w", k, err)
		}
		e[b] = x
	}
	return quantity.New(scale, dimension.FromArray(e)), nil
}

// Definitions exports the registry contents as definitions in the given
// domain's literal syntax, sorted by symbol.
func (r *Registry[T]) Definitions() []Definition {
	var defs []Definition
	for _, u := range r.Units() {
		def := Definition{
			Symbol: u.Symbol,
			Scale:  u.Quantity.Magnitude().String(),
			Prefix: u.Prefixable,
		}
		for _, b := range dimension.Bases() {
			x := u.Quantity.Dimension().Exponent(b)
			if x.IsZero() {
				continue
			}
			if def.Dimension == nil {
				def.Dimension = make(map[string]string)
			}
			def.Dimension[b.Name()] = x.String()
		}
		defs = append(defs, def)
	}
	return defs
}
