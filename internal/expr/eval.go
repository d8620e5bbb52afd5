package expr

import (
	"fmt"

	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
	"github.com/roach88/pval/internal/units"
)

// UnknownVariableError reports a "$name" with no binding.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable $%s", e.Name)
}

// Env supplies the number domain, unit symbols and variables for Eval.
// A nil Units resolves no symbols.
type Env[T num.Real[T]] struct {
	Domain num.Domain[T]
	Units  *units.Registry[T]
	Vars   map[string]quantity.Quantity[T]
}

// NewEnv returns an Env over reg's domain with no variables.
func NewEnv[T num.Real[T]](reg *units.Registry[T]) Env[T] {
	return Env[T]{Domain: reg.Domain(), Units: reg, Vars: make(map[string]quantity.Quantity[T])}
}

func (env Env[T]) parseNumber(n *Number) (T, error) {
	d := env.Domain
	if d.Parse == nil && env.Units != nil {
		d = env.Units.Domain()
	}
	if d.Parse == nil {
		var zero T
		return zero, fmt.Errorf("expr: env has no number domain")
	}
	x, err := d.Parse(n.Text)
	if err != nil {
		return x, &SyntaxError{Pos: n.At, Msg: err.Error()}
	}
	return x, nil
}

// Eval parses and evaluates input.
func Eval[T num.Real[T]](env Env[T], input string) (quantity.Quantity[T], error) {
	n, err := Parse(input)
	if err != nil {
		return quantity.Quantity[T]{}, err
	}
	return EvalNode(env, n)
}

// EvalNode evaluates a parsed expression. Dimension, division and domain
// failures are returned as *quantity.Error.
func EvalNode[T num.Real[T]](env Env[T], n Node) (quantity.Quantity[T], error) {
	switch n := n.(type) {
	case *Number:
		x, err := env.parseNumber(n)
		if err != nil {
			return quantity.Quantity[T]{}, err
		}
		return quantity.Scalar(x), nil

	case *Unit:
		if env.Units == nil {
			return quantity.Quantity[T]{}, &units.UnknownUnitError{Symbol: n.Symbol}
		}
		return env.Units.Lookup(n.Symbol)

	case *Var:
		q, ok := env.Vars[n.Name]
		if !ok {
			return quantity.Quantity[T]{}, &UnknownVariableError{Name: n.Name}
		}
		return q, nil

	case *Unary:
		x, err := EvalNode(env, n.X)
		if err != nil {
			return x, err
		}
		if n.Op == '-' {
			return x.Neg(), nil
		}
		return x, nil

	case *Binary:
		return evalBinary(env, n)
	}
	return quantity.Quantity[T]{}, fmt.Errorf("expr: unexpected node %T", n)
}

func evalBinary[T num.Real[T]](env Env[T], n *Binary) (quantity.Quantity[T], error) {
	x, err := EvalNode(env, n.X)
	if err != nil {
		return x, err
	}
	y, err := EvalNode(env, n.Y)
	if err != nil {
		return y, err
	}

	switch n.Op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Div(y)
	case "//":
		return x.FloorDiv(y)
	case "^", "**":
		exp, err := y.Value()
		if err != nil {
			return quantity.Quantity[T]{}, err
		}
		return x.Pow(exp)
	}
	return quantity.Quantity[T]{}, fmt.Errorf("expr: unknown operator %q", n.Op)
}
