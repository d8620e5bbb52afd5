package calc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/pval/internal/codec"
	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/store"
	"github.com/roach88/pval/internal/units"
)

// ErrUnknownDomain is returned by New for an unsupported domain name.
var ErrUnknownDomain = errors.New("unknown number domain")

// Result is an evaluated expression.
type Result struct {
	Input string `json:"input"`
	// Text is the magnitude in base units, e.g. "9.81[m/s^2]".
	Text string `json:"text"`
	// Describe names the dimension exponents.
	Describe string `json:"describe"`
	// Units is the base-unit expression of the dimension, e.g. "m/s^2".
	Units  string       `json:"units"`
	Record codec.Record `json:"record"`
	Digest string       `json:"digest"`
}

// Conversion is an expression expressed in a target unit.
type Conversion struct {
	Input string `json:"input"`
	Unit  string `json:"unit"`
	Value string `json:"value"`
	Text  string `json:"text"`
}

// UnitInfo describes a defined unit.
type UnitInfo struct {
	Symbol     string `json:"symbol"`
	Prefixable bool   `json:"prefixable"`
	Scale      string `json:"scale"`
	Units      string `json:"units"`
}

// Calculator evaluates quantity expressions in one number domain. It is not
// safe for concurrent use.
type Calculator interface {
	// Domain returns the number domain name, e.g. "rat".
	Domain() string

	// Eval evaluates an expression.
	Eval(input string) (Result, error)

	// Convert evaluates input and expresses it as a multiple of unit, which
	// is itself an expression such as "km/h".
	Convert(input, unit string) (Conversion, error)

	// Units lists the defined units, sorted by symbol.
	Units() []UnitInfo

	// Define installs unit definitions. source names them in errors.
	Define(source string, defs []units.Definition) error

	// LoadUnits installs the definitions in a .yaml, .yml or .cue file.
	LoadUnits(path string) error

	// Bind evaluates input and stores it as the variable $name.
	Bind(name, input string) (Result, error)

	// BindRecord stores a serialized quantity as the variable $name.
	BindRecord(name string, rec codec.Record) error

	// Vars lists bound variable names, sorted.
	Vars() []string
}

type options struct {
	logger    *slog.Logger
	unitFiles []string
}

// Option configures a Calculator.
type Option func(*options)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithUnitFiles loads definition files after the built-in units, in order.
func WithUnitFiles(paths ...string) Option {
	return func(o *options) {
		o.unitFiles = append(o.unitFiles, paths...)
	}
}

// New returns a Calculator over the named number domain (see num.Names),
// preloaded with the built-in MKS units.
func New(domain string, opts ...Option) (Calculator, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	var c Calculator
	switch domain {
	case num.NameFloat:
		c = newSession(num.Floats, o.logger)
	case num.NameRat:
		c = newSession(num.Rats, o.logger)
	case num.NameDecimal:
		c = newSession(num.Decimals, o.logger)
	default:
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownDomain, domain, num.Names())
	}

	for _, path := range o.unitFiles {
		if err := c.LoadUnits(path); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// BindStore binds every stored measurement in c's domain as a variable and
// returns how many were bound.
func BindStore(ctx context.Context, c Calculator, st *store.Store) (int, error) {
	ms, err := st.List(ctx, c.Domain())
	if err != nil {
		return 0, err
	}
	for _, m := range ms {
		if err := c.BindRecord(m.Name, m.Record); err != nil {
			return 0, fmt.Errorf("bind $%s: %w", m.Name, err)
		}
	}
	return len(ms), nil
}
