// Package calc binds the generic quantity packages to a number domain
// chosen at run time.
//
// num, quantity, units and expr are generic over the number type. A
// Calculator hides the type parameter behind a small interface whose inputs
// and outputs are strings and codec records, which is what the command line,
// scenario runner and store need.
//
//	c, _ := calc.New("rat")
//	r, _ := c.Eval("100 m / 9.58 s")
//	conv, _ := c.Convert("100 m / 9.58 s", "km/h")
package calc
