package calc

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/roach88/pval/internal/codec"
	"github.com/roach88/pval/internal/expr"
	"github.com/roach88/pval/internal/format"
	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
	"github.com/roach88/pval/internal/store"
	"github.com/roach88/pval/internal/units"
)

// session implements Calculator for one number type.
type session[T num.Real[T]] struct {
	domain num.Domain[T]
	reg    *units.Registry[T]
	env    expr.Env[T]
	logger *slog.Logger
}

func newSession[T num.Real[T]](d num.Domain[T], logger *slog.Logger) *session[T] {
	reg := units.NewMKS(d)
	return &session[T]{
		domain: d,
		reg:    reg,
		env:    expr.NewEnv(reg),
		logger: logger,
	}
}

func (s *session[T]) Domain() string { return s.domain.Name }

func (s *session[T]) eval(input string) (quantity.Quantity[T], error) {
	q, err := expr.Eval(s.env, input)
	if err != nil {
		s.logger.Debug("evaluation failed", "domain", s.domain.Name, "input", input, "error", err)
		return q, err
	}
	return q, nil
}

func (s *session[T]) result(input string, q quantity.Quantity[T]) (Result, error) {
	rec := codec.Encode(s.domain, q)
	digest, err := codec.Digest(rec)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input:    input,
		Text:     format.String(q),
		Describe: format.Describe(q),
		Units:    format.Units(q.Dimension()),
		Record:   rec,
		Digest:   digest,
	}, nil
}

func (s *session[T]) Eval(input string) (Result, error) {
	q, err := s.eval(input)
	if err != nil {
		return Result{}, err
	}
	r, err := s.result(input, q)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug("evaluated", "domain", s.domain.Name, "input", input, "result", r.Text)
	return r, nil
}

func (s *session[T]) Convert(input, unit string) (Conversion, error) {
	q, err := s.eval(input)
	if err != nil {
		return Conversion{}, err
	}
	u, err := s.eval(unit)
	if err != nil {
		return Conversion{}, fmt.Errorf("target unit: %w", err)
	}
	x, err := format.Convert(q, u)
	if err != nil {
		return Conversion{}, err
	}
	text, err := format.In(q, u, unit)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Input: input, Unit: unit, Value: x.String(), Text: text}, nil
}

func (s *session[T]) Units() []UnitInfo {
	us := s.reg.Units()
	out := make([]UnitInfo, 0, len(us))
	for _, u := range us {
		out = append(out, UnitInfo{
			Symbol:     u.Symbol,
			Prefixable: u.Prefixable,
			Scale:      u.Quantity.Magnitude().String(),
			Units:      format.Units(u.Quantity.Dimension()),
		})
	}
	return out
}

func (s *session[T]) Define(source string, defs []units.Definition) error {
	if err := s.reg.Apply(source, defs); err != nil {
		return err
	}
	s.logger.Debug("units defined", "source", source, "count", len(defs))
	return nil
}

func (s *session[T]) LoadUnits(path string) error {
	defs, err := units.LoadFile(path)
	if err != nil {
		return err
	}
	return s.Define(path, defs)
}

func (s *session[T]) Bind(name, input string) (Result, error) {
	if !store.ValidName(name) {
		return Result{}, fmt.Errorf("bind %q: %w", name, store.ErrInvalidName)
	}
	q, err := s.eval(input)
	if err != nil {
		return Result{}, err
	}
	s.env.Vars[name] = q
	return s.result(input, q)
}

func (s *session[T]) BindRecord(name string, rec codec.Record) error {
	if !store.ValidName(name) {
		return fmt.Errorf("bind %q: %w", name, store.ErrInvalidName)
	}
	q, err := codec.Decode(s.domain, rec)
	if err != nil {
		return err
	}
	s.env.Vars[name] = q
	return nil
}

func (s *session[T]) Vars() []string {
	names := make([]string, 0, len(s.env.Vars))
	for name := range s.env.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
