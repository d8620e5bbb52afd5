package num

import (
	"errors"
	"fmt"
	"strings"
)

// Real is the arithmetic capability bundle required of a magnitude or
// exponent type. Methods never mutate the receiver.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	// Quo returns x/y. The result for y == 0 is domain specific; callers
	// that need a defined failure must check IsZero first.
	Quo(T) T
	// Inv returns 1/x under the same rule as Quo.
	Inv() T
	Neg() T
	Floor() T
	// Pow returns x**y. The error wraps ErrDomain when no real result exists
	// and ErrInexact when the domain cannot represent the result.
	// ErrTooLarge marks a result that exists but exceeds a resource bound.
	Pow(T) (T, error)
	Cmp(T) int
	IsZero() bool
	String() string
}

var (
	// ErrDomain reports an operation with no real-valued result.
	ErrDomain = errors.New("no real result")

	// ErrInexact reports a result that exists but the domain cannot hold exactly.
	ErrInexact = errors.New("result not exactly representable")

	// ErrTooLarge reports an exact result too large to compute.
	ErrTooLarge = errors.New("result too large to compute exactly")

	// ErrSyntax reports a malformed number literal.
	ErrSyntax = errors.New("invalid number")
)

// Domain names.
const (
	NameFloat   = "float"
	NameRat     = "rat"
	NameDecimal = "decimal"
)

// Names lists the domains in the order they are documented.
func Names() []string {
	return []string{NameFloat, NameRat, NameDecimal}
}

// Valid reports whether name is a known domain.
func Valid(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Domain describes how to obtain values of T from text.
type Domain[T Real[T]] struct {
	Name  string
	Parse func(string) (T, error)
}

// MustParse parses s and panics on failure. Intended for literals known at
// compile time, such as built-in unit tables.
func (d Domain[T]) MustParse(s string) T {
	v, err := d.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("num: %s: %v", d.Name, err))
	}
	return v
}

// Floats, Rats and Decimals are the built-in domains.
var (
	Floats   = Domain[Float]{Name: NameFloat, Parse: ParseFloat}
	Rats     = Domain[Rat]{Name: NameRat, Parse: ParseRat}
	Decimals = Domain[Decimal]{Name: NameDecimal, Parse: ParseDecimal}
)

// Abs returns |x|.
func Abs[T Real[T]](x T) T {
	if Sign(x) < 0 {
		return x.Neg()
	}
	return x
}

// Sign returns -1, 0 or +1.
func Sign[T Real[T]](x T) int {
	var zero T
	return x.Cmp(zero)
}

// splitFraction splits "a/b" literals. ok is false when s has no slash.
func splitFraction(s string) (num, den string, ok bool) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return s, "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}

func syntaxError(domain, s string) error {
	return fmt.Errorf("%w: %s %q", ErrSyntax, domain, s)
}
