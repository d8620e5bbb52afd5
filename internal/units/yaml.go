package units

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// definitionFile is the top-level shape of a YAML definition file.
type definitionFile struct {
	Units []Definition `yaml:"units"`
}

// LoadYAML reads definitions from r. Unknown keys are rejected.
func LoadYAML(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f definitionFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode unit definitions: %w", err)
	}
	return f.Units, nil
}

// LoadYAMLFile reads definitions from the YAML file at path.
func LoadYAMLFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := LoadYAML(f)
	if err != nil {
		return nil, &LoadError{Source: path, Message: err.Error()}
	}
	return defs, nil
}

// MarshalYAML renders definitions in the LoadYAML format.
func MarshalYAML(defs []Definition) ([]byte, error) {
	return yaml.Marshal(definitionFile{Units: defs})
}
