package units

// Prefix is an SI multiplication prefix.
type Prefix struct {
	Symbol string
	Name   string
	Factor string
}

// Prefixes lists the SI prefixes, longest symbols first so that "da" is
// tried before "d".
var Prefixes = []Prefix{
	{"da", "deka", "1e1"},
	{"Y", "yotta", "1e24"},
	{"Z", "zetta", "1e21"},
	{"E", "exa", "1e18"},
	{"P", "peta", "1e15"},
	{"T", "tera", "1e12"},
	{"G", "giga", "1e9"},
	{"M", "mega", "1e6"},
	{"k", "kilo", "1e3"},
	{"h", "hecto", "1e2"},
	{"d", "deci", "1e-1"},
	{"c", "centi", "1e-2"},
	{"m", "milli", "1e-3"},
	{"μ", "micro", "1e-6"},
	{"u", "micro", "1e-6"},
	{"n", "nano", "1e-9"},
	{"p", "pico", "1e-12"},
	{"f", "femto", "1e-15"},
	{"a", "atto", "1e-18"},
	{"z", "zepto", "1e-21"},
	{"y", "yocto", "1e-24"},
}
