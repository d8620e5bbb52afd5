package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pval/internal/calc"
	"github.com/roach88/pval/internal/num"
)

// Scenario is a named list of calculation steps.
type Scenario struct {
	// Name identifies the scenario and its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description"`

	// Domain is the number domain; empty means float.
	Domain string `yaml:"domain,omitempty"`

	// Units lists unit definition files loaded before any step.
	Units []string `yaml:"units,omitempty"`

	// Vars are bound before the steps, in file order.
	Vars Bindings `yaml:"vars,omitempty"`

	// Steps are evaluated in order.
	Steps []Step `yaml:"steps"`
}

// Binding is one "name: expression" entry of vars.
type Binding struct {
	Name string
	Expr string
}

// Bindings keeps vars in file order.
type Bindings []Binding

// UnmarshalYAML decodes a mapping into ordered bindings.
func (b *Bindings) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: vars must be a mapping", value.Line)
	}
	out := make(Bindings, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: vars.%s must be an expression", v.Line, k.Value)
		}
		out = append(out, Binding{Name: k.Value, Expr: v.Value})
	}
	*b = out
	return nil
}

// Step is one expression and its expected outcome.
type Step struct {
	// Expr is the expression to evaluate.
	Expr string `yaml:"expr"`

	// Unit converts the result into this unit expression before comparing.
	Unit string `yaml:"unit,omitempty"`

	// Expect is an expression the result must equal exactly.
	Expect string `yaml:"expect,omitempty"`

	// Error is the error code the step must fail with.
	Error string `yaml:"error,omitempty"`
}

// DomainName returns the effective number domain.
func (s *Scenario) DomainName() string {
	if s.Domain == "" {
		return num.NameFloat
	}
	return s.Domain
}

// LoadScenario reads and parses a scenario YAML file. Unit file paths are
// resolved relative to the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i, u := range s.Units {
		if !filepath.IsAbs(u) {
			s.Units[i] = filepath.Join(base, u)
		}
	}
	return s, nil
}

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if !num.Valid(s.DomainName()) {
		return fmt.Errorf("unknown domain %q (want one of %v)", s.Domain, num.Names())
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	seen := make(map[string]bool)
	for i, b := range s.Vars {
		if b.Name == "" || b.Expr == "" {
			return fmt.Errorf("vars[%d]: name and expression are required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("vars[%d]: %q bound twice", i, b.Name)
		}
		seen[b.Name] = true
	}

	for i, step := range s.Steps {
		if step.Expr == "" {
			return fmt.Errorf("steps[%d]: expr is required", i)
		}
		if step.Expect != "" && step.Error != "" {
			return fmt.Errorf("steps[%d]: expect and error are mutually exclusive", i)
		}
		if step.Error != "" && !slices.Contains(calc.KnownCodes(), step.Error) {
			return fmt.Errorf("steps[%d]: unknown error code %q", i, step.Error)
		}
	}

	return nil
}
