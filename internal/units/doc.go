// Package units maps unit symbols such as "m", "kN" or "µs" to quantities.
//
// A Registry is owned by its caller; there is no process-wide unit table.
// NewMKS returns a registry preloaded with the SI base units, the named
// derived units and common customary units. Further units can be defined in
// code with Define, or loaded from YAML or CUE definition files:
//
//	units:
//	  - symbol: furlong
//	    scale: 201.168
//	    of: m
//
//	units: {
//		furlong: {scale: 201.168, of: "m"}
//	}
//
// Symbols are NFKC-normalized, so the micro sign (U+00B5) and Greek mu
// (U+03BC) name the same prefix.
package units
