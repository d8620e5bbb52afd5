package dimension

// Base identifies one of the seven base dimensions. The numeric value is the
// position of the dimension in a Vector.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Charge
	Temperature
	Luminosity
	Amount
)

// Count is the number of base dimensions.
const Count = 7

var baseNames = [Count]string{"length", "mass", "time", "charge", "temperature", "luminosity", "amount"}

// MKS base unit symbols in canonical order.
var baseSymbols = [Count]string{"m", "kg", "s", "C", "K", "cd", "mol"}

// Bases returns every base dimension in canonical order.
func Bases() []Base {
	return []Base{Length, Mass, Time, Charge, Temperature, Luminosity, Amount}
}

// Name returns the lower-case dimension name, e.g. "length".
func (b Base) Name() string {
	if b < 0 || b >= Count {
		return "unknown"
	}
	return baseNames[b]
}

// Symbol returns the MKS base unit symbol, e.g. "kg".
func (b Base) Symbol() string {
	if b < 0 || b >= Count {
		return "?"
	}
	return baseSymbols[b]
}

func (b Base) String() string { return b.Name() }

// ParseBase resolves a dimension name or its MKS unit symbol.
func ParseBase(s string) (Base, bool) {
	for i := range Count {
		if baseNames[i] == s || baseSymbols[i] == s {
			return Base(i), true
		}
	}
	return 0, false
}
