package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/pval/internal/scenario"
)

// ScenarioResult holds the result of a single scenario file.
type ScenarioResult struct {
	File   string                `json:"file"`
	Name   string                `json:"name"`
	Pass   bool                  `json:"pass"`
	Steps  []scenario.StepResult `json:"steps,omitempty"`
	Errors []string              `json:"errors,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Run scenario files",
		Long: `Evaluate each step of one or more scenario files and compare the
results with their expectations. Arguments may be files or directories;
directories are searched for .yaml and .yml files.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (no scenarios found, unreadable path)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	files, err := findScenarioFiles(paths)
	if err != nil {
		_ = formatter.Error(CodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, CodeNotFound, err)
	}
	if len(files) == 0 {
		_ = formatter.Error(CodeNotFound, "no scenario files found", nil)
		return NewExitError(ExitCommandError, "no scenario files found")
	}

	runner := scenario.NewRunner(opts.logger())
	result := CheckResult{
		Scenarios: make([]ScenarioResult, 0, len(files)),
		Total:     len(files),
	}
	for _, file := range files {
		formatter.VerboseLog("Running %s", file)
		sr := runScenarioFile(runner, file)
		result.Scenarios = append(result.Scenarios, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = &CLIError{Code: "SCENARIO_FAILED", Message: fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total)}
		}
		if err := encodeJSON(formatter.Writer, resp); err != nil {
			return err
		}
	} else {
		writeCheckText(formatter, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}

func runScenarioFile(runner *scenario.Runner, file string) ScenarioResult {
	s, err := scenario.LoadScenario(file)
	if err != nil {
		return ScenarioResult{
			File:   file,
			Name:   filepath.Base(file),
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}
	}

	res, err := runner.Run(s)
	if err != nil {
		return ScenarioResult{
			File:   file,
			Name:   s.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	return ScenarioResult{
		File:   file,
		Name:   s.Name,
		Pass:   res.Pass,
		Steps:  res.Steps,
		Errors: res.Errors,
	}
}

func writeCheckText(formatter *OutputFormatter, result CheckResult) {
	w := formatter.Writer
	for _, sr := range result.Scenarios {
		if sr.Pass {
			fmt.Fprintf(w, "✓ %s\n", sr.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", sr.Name)
		for _, e := range sr.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
}

// findScenarioFiles expands directories into the YAML files they contain.
func findScenarioFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
