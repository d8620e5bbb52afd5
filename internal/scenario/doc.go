// Package scenario runs calculation scenarios: YAML files listing
// expressions together with the result or error each one must produce.
//
// # Scenario Format
//
//	name: falling_rock
//	description: "Free fall from rest"
//	domain: rat              # float, rat or decimal; default float
//	units:                   # definition files, relative to this file
//	  - extra-units.yaml
//	vars:                    # bound in order; later entries may use earlier ones
//	  g: 9.81 m/s^2
//	  t: 3 s
//	steps:
//	  - expr: $g * $t
//	    expect: 29.43 m/s
//	  - expr: $g * $t^2 / 2
//	    unit: m
//	    expect: 44.145
//	  - expr: $g + $t
//	    error: INCOMPATIBLE_DIMENSIONS
//
// A step passes when its result equals the expect expression exactly (same
// magnitude and dimension in the scenario's domain), or when it fails with
// the expected error code (see calc.ErrorCode). With unit set, the step is
// converted and the plain number is compared.
//
// # Golden Files
//
// RunWithGolden compares a JSON snapshot of the step results with
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/scenario -update
package scenario
