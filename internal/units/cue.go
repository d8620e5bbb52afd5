package units

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// unitSchema constrains CUE definition files. #Unit is closed, so unknown
// fields are reported with their position.
const unitSchema = `
#Unit: {
	scale:      *1 | number | string
	of?:        string
	dimension?: {[string]: number | string}
	prefix:     *false | bool
	aliases?: [...string]
}

units: [string]: #Unit
`

// LoadCUE compiles CUE source, validates it against the unit schema and
// returns the definitions under "units" in source order.
func LoadCUE(filename string, src []byte) ([]Definition, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(unitSchema, cue.Filename("units-schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile unit schema: %w", err)
	}

	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, formatCUEError(filename, err)
	}

	v := schema.Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(filename, err)
	}

	unitsVal := v.LookupPath(cue.ParsePath("units"))
	if !unitsVal.Exists() {
		return nil, nil
	}
	iter, err := unitsVal.Fields()
	if err != nil {
		return nil, formatCUEError(filename, err)
	}

	var defs []Definition
	for iter.Next() {
		def, err := decodeCUEUnit(iter.Selector().Unquoted(), iter.Value())
		if err != nil {
			return nil, formatCUEError(filename, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadCUEFile reads and loads the CUE file at path.
func LoadCUEFile(path string) ([]Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadCUE(filepath.Base(path), src)
}

// LoadFile dispatches on the file extension: .cue files go through LoadCUE,
// .yaml and .yml through LoadYAML.
func LoadFile(path string) ([]Definition, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return LoadCUEFile(path)
	case ".yaml", ".yml":
		return LoadYAMLFile(path)
	default:
		return nil, &LoadError{Source: path, Message: "unsupported definition file type (want .cue, .yaml or .yml)"}
	}
}

func decodeCUEUnit(symbol string, v cue.Value) (Definition, error) {
	def := Definition{Symbol: symbol}

	scale, err := cueScalar(v.LookupPath(cue.ParsePath("scale")))
	if err != nil {
		return def, err
	}
	def.Scale = scale

	if of := v.LookupPath(cue.ParsePath("of")); of.Exists() {
		if def.Of, err = of.String(); err != nil {
			return def, err
		}
	}

	if def.Prefix, err = withDefault(v.LookupPath(cue.ParsePath("prefix"))).Bool(); err != nil {
		return def, err
	}

	if dim := v.LookupPath(cue.ParsePath("dimension")); dim.Exists() {
		iter, err := dim.Fields()
		if err != nil {
			return def, err
		}
		def.Dimension = make(map[string]string)
		for iter.Next() {
			x, err := cueScalar(iter.Value())
			if err != nil {
				return def, err
			}
			def.Dimension[iter.Selector().Unquoted()] = x
		}
	}

	if aliases := v.LookupPath(cue.ParsePath("aliases")); aliases.Exists() {
		list, err := aliases.List()
		if err != nil {
			return def, err
		}
		for list.Next() {
			s, err := list.Value().String()
			if err != nil {
				return def, err
			}
			def.Aliases = append(def.Aliases, s)
		}
	}
	return def, nil
}

// cueScalar renders a number or string value as a literal. Numbers keep
// every digit of the CUE literal.
func cueScalar(v cue.Value) (string, error) {
	v = withDefault(v)
	switch v.Kind() {
	case cue.StringKind:
		return v.String()
	case cue.IntKind, cue.FloatKind, cue.NumberKind:
		d, err := v.Decimal()
		if err != nil {
			return "", err
		}
		return d.String(), nil
	default:
		return "", fmt.Errorf("expected number or string, got %s", v.Kind())
	}
}

func withDefault(v cue.Value) cue.Value {
	if d, ok := v.Default(); ok {
		return d
	}
	return v
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(source string, err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Source: source, Message: err.Error()}
	}
	first := errs[0]
	le := &LoadError{Source: source, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
