package expr

import (
	"fmt"
	"sort"
)

// Node is a parsed expression.
type Node interface {
	// Pos is the byte offset of the node in the input.
	Pos() int
	String() string
	node()
}

// Number is a numeric literal, kept as text until a domain parses it.
type Number struct {
	Text string
	At   int
}

// Unit is a unit symbol such as "km" or "Ω".
type Unit struct {
	Symbol string
	At     int
}

// Var is a "$name" reference.
type Var struct {
	Name string
	At   int
}

// Unary is "-x" or "+x".
type Unary struct {
	Op byte
	X  Node
	At int
}

// Binary is an infix operation. Op is one of "+", "-", "*", "/", "//" or
// "^". Implicit marks multiplication written by juxtaposition.
type Binary struct {
	Op       string
	X, Y     Node
	Implicit bool
	At       int
}

func (n *Number) Pos() int { return n.At }
func (n *Unit) Pos() int   { return n.At }
func (n *Var) Pos() int    { return n.At }
func (n *Unary) Pos() int  { return n.At }
func (n *Binary) Pos() int { return n.At }

func (n *Number) String() string { return n.Text }
func (n *Unit) String() string   { return n.Symbol }
func (n *Var) String() string    { return "$" + n.Name }
func (n *Unary) String() string  { return fmt.Sprintf("(%c%s)", n.Op, n.X) }

func (n *Binary) String() string {
	if n.Implicit {
		return fmt.Sprintf("(%s %s)", n.X, n.Y)
	}
	return fmt.Sprintf("(%s %s %s)", n.X, n.Op, n.Y)
}

func (*Number) node() {}
func (*Unit) node()   {}
func (*Var) node()    {}
func (*Unary) node()  {}
func (*Binary) node() {}

// Vars returns the distinct variable names referenced by n, sorted.
func Vars(n Node) []string {
	seen := make(map[string]bool)
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Var:
			seen[n.Name] = true
		case *Unary:
			walk(n.X)
		case *Binary:
			walk(n.X)
			walk(n.Y)
		}
	}
	walk(n)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
