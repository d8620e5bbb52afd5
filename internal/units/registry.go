package units

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
)

// Unit is a named quantity.
type Unit[T num.Real[T]] struct {
	Symbol     string
	Quantity   quantity.Quantity[T]
	Prefixable bool
}

type prefix[T num.Real[T]] struct {
	symbol string
	factor T
}

// Registry resolves unit symbols to quantities in one number domain.
// Define is not safe for concurrent use; a fully built Registry may be read
// from any number of goroutines.
type Registry[T num.Real[T]] struct {
	domain   num.Domain[T]
	units    map[string]Unit[T]
	prefixes []prefix[T]
}

// NewRegistry returns an empty registry for domain.
func NewRegistry[T num.Real[T]](domain num.Domain[T]) *Registry[T] {
	r := &Registry[T]{
		domain: domain,
		units:  make(map[string]Unit[T]),
	}
	for _, p := range Prefixes {
		r.prefixes = append(r.prefixes, prefix[T]{symbol: p.Symbol, factor: domain.MustParse(p.Factor)})
	}
	return r
}

// clone copies the unit table. Prefixes are never modified and are shared.
func (r *Registry[T]) clone() *Registry[T] {
	c := &Registry[T]{
		domain:   r.domain,
		units:    make(map[string]Unit[T], len(r.units)),
		prefixes: r.prefixes,
	}
	for k, u := range r.units {
		c.units[k] = u
	}
	return c
}

// Domain returns the number domain of the registry.
func (r *Registry[T]) Domain() num.Domain[T] {
	return r.domain
}

// Normalize returns the canonical form of a unit symbol.
func Normalize(symbol string) string {
	return norm.NFKC.String(strings.TrimSpace(symbol))
}

// Define adds a unit. Redefining a symbol with an identical quantity and
// prefix rule is a no-op; any other redefinition fails.
func (r *Registry[T]) Define(symbol string, q quantity.Quantity[T], prefixable bool) error {
	symbol = Normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("define: empty unit symbol")
	}
	if cur, ok := r.units[symbol]; ok {
		same, err := cur.Quantity.Equal(q)
		if err != nil || !same || cur.Prefixable != prefixable {
			return &InconsistentDefinitionError{
				Symbol: symbol,
				Old:    describe(cur.Quantity, cur.Prefixable),
				New:    describe(q, prefixable),
			}
		}
		return nil
	}
	r.units[symbol] = Unit[T]{Symbol: symbol, Quantity: q, Prefixable: prefixable}
	return nil
}

func describe[T num.Real[T]](q quantity.Quantity[T], prefixable bool) string {
	if prefixable {
		return q.String() + " (prefixable)"
	}
	return q.String()
}

// Lookup resolves a symbol, trying exact matches before SI prefixes.
func (r *Registry[T]) Lookup(symbol string) (quantity.Quantity[T], error) {
	symbol = Normalize(symbol)
	if u, ok := r.units[symbol]; ok {
		return u.Quantity, nil
	}
	for _, p := range r.prefixes {
		rest, ok := strings.CutPrefix(symbol, p.symbol)
		if !ok || rest == "" {
			continue
		}
		if u, ok := r.units[rest]; ok && u.Prefixable {
			return u.Quantity.Scale(p.factor), nil
		}
	}
	return quantity.Quantity[T]{}, &UnknownUnitError{Symbol: symbol}
}

// Unit returns the unit defined under exactly symbol.
func (r *Registry[T]) Unit(symbol string) (Unit[T], bool) {
	u, ok := r.units[Normalize(symbol)]
	return u, ok
}

// Units returns all defined units sorted by symbol.
func (r *Registry[T]) Units() []Unit[T] {
	out := make([]Unit[T], 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Len returns the number of defined units.
func (r *Registry[T]) Len() int {
	return len(r.units)
}
