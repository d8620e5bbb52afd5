package scenario

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the golden-file form of a scenario run.
type Snapshot struct {
	Scenario string       `json:"scenario"`
	Domain   string       `json:"domain"`
	Pass     bool         `json:"pass"`
	Steps    []StepResult `json:"steps"`
}

// MarshalSnapshot renders the snapshot of a run as indented JSON with a
// trailing newline.
func MarshalSnapshot(s *Scenario, result *Result) ([]byte, error) {
	data, err := json.MarshalIndent(Snapshot{
		Scenario: s.Name,
		Domain:   s.DomainName(),
		Pass:     result.Pass,
		Steps:    result.Steps,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/scenario -update
//
// Returns error if the scenario cannot run. A snapshot mismatch fails t.
func RunWithGolden(t *testing.T, s *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(s)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, s, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against the golden file named
// after the scenario.
func AssertGolden(t *testing.T, s *Scenario, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(s, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)
	return nil
}
