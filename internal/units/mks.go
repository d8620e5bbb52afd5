package units

import (
	"strconv"

	"github.com/roach88/pval/internal/dimension"
	"github.com/roach88/pval/internal/num"
	"github.com/roach88/pval/internal/quantity"
)

type builtin struct {
	symbol string
	scale  string
	dim    [dimension.Count]int
	prefix bool
}

// Exponents in canonical order: length, mass, time, charge, temperature,
// luminosity, amount.
var (
	dimLength  = [dimension.Count]int{1}
	dimMass    = [dimension.Count]int{0, 1}
	dimTime    = [dimension.Count]int{0, 0, 1}
	dimCharge  = [dimension.Count]int{0, 0, 0, 1}
	dimEnergy  = [dimension.Count]int{2, 1, -2}
	dimPress   = [dimension.Count]int{-1, 1, -2}
	dimVolume  = [dimension.Count]int{3}
	dimForce   = [dimension.Count]int{1, 1, -2}
	dimPower   = [dimension.Count]int{2, 1, -3}
	dimCurrent = [dimension.Count]int{0, 0, -1, 1}
	dimVoltage = [dimension.Count]int{2, 1, -2, -1}
	dimOhm     = [dimension.Count]int{2, 1, -1, -2}
)

var mksUnits = []builtin{
	// base units
	{"m", "1", dimLength, true},
	{"kg", "1", dimMass, false},
	{"s", "1", dimTime, true},
	{"C", "1", dimCharge, true},
	{"K", "1", [dimension.Count]int{0, 0, 0, 0, 1}, true},
	{"cd", "1", [dimension.Count]int{0, 0, 0, 0, 0, 1}, true},
	{"mol", "1", [dimension.Count]int{0, 0, 0, 0, 0, 0, 1}, true},

	// synonyms
	{"g", "1/1000", dimMass, true},
	{"sec", "1", dimTime, true},
	{"coul", "1", dimCharge, true},

	// named derived units
	{"Hz", "1", [dimension.Count]int{0, 0, -1}, true},
	{"N", "1", dimForce, true},
	{"Pa", "1", dimPress, true},
	{"J", "1", dimEnergy, true},
	{"W", "1", dimPower, true},
	{"A", "1", dimCurrent, true},
	{"V", "1", dimVoltage, true},
	{"Ω", "1", dimOhm, true},
	{"ohm", "1", dimOhm, true},
	{"S", "1", [dimension.Count]int{-2, -1, 1, 2}, true},
	{"F", "1", [dimension.Count]int{-2, -1, 2, 2}, true},
	{"Wb", "1", [dimension.Count]int{2, 1, -1, -1}, true},
	{"T", "1", [dimension.Count]int{0, 1, -1, -1}, true},
	{"H", "1", [dimension.Count]int{2, 1, 0, -2}, true},
	{"L", "1/1000", dimVolume, true},

	// customary
	{"min", "60", dimTime, false},
	{"h", "3600", dimTime, false},
	{"day", "86400", dimTime, false},
	{"in", "0.0254", dimLength, false},
	{"ft", "0.3048", dimLength, false},
	{"yd", "0.9144", dimLength, false},
	{"mi", "1609.344", dimLength, false},
	{"nmi", "1852", dimLength, false},
	{"lb", "0.45359237", dimMass, false},
	{"oz", "0.028349523125", dimMass, false},
	{"atm", "101325", dimPress, false},
	{"bar", "100000", dimPress, true},
	{"eV", "1.602176634e-19", dimEnergy, true},
	{"cal", "4.184", dimEnergy, true},
}

// NewMKS returns a registry holding the built-in unit table.
func NewMKS[T num.Real[T]](domain num.Domain[T]) *Registry[T] {
	r := NewRegistry(domain)
	for _, b := range mksUnits {
		var e [dimension.Count]T
		for i, x := range b.dim {
			e[i] = domain.MustParse(strconv.Itoa(x))
		}
		q := quantity.New(domain.MustParse(b.scale), dimension.FromArray(e))
		if err := r.Define(b.symbol, q, b.prefix); err != nil {
			panic("units: built-in table: " + err.Error())
		}
	}
	return r
}
