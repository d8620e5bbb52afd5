package scenario

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/pval/internal/calc"
)

// Runner executes scenarios.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner that logs to logger. A nil logger discards.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger}
}

// Run executes a scenario with a discarding logger.
func Run(s *Scenario) (*Result, error) {
	return NewRunner(nil).Run(s)
}

// Run executes s in a fresh Calculator and returns per-step results.
//
// An error is returned only when the scenario cannot start: an unknown
// domain, a bad unit file or a failing var binding. Step failures are
// recorded in the Result.
func (r *Runner) Run(s *Scenario) (*Result, error) {
	c, err := calc.New(s.DomainName(), calc.WithLogger(r.logger), calc.WithUnitFiles(s.Units...))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	for _, b := range s.Vars {
		if _, err := c.Bind(b.Name, b.Expr); err != nil {
			return nil, fmt.Errorf("scenario %s: var %s: %w", s.Name, b.Name, err)
		}
	}

	result := NewResult()
	for i, step := range s.Steps {
		sr := r.runStep(c, i, step)
		result.Steps = append(result.Steps, sr)
		if !sr.Pass {
			result.AddError(describeFailure(sr, step))
		}
	}

	r.logger.Info("scenario finished",
		"scenario", s.Name,
		"domain", c.Domain(),
		"steps", len(s.Steps),
		"failed", len(result.Errors),
	)
	return result, nil
}

func (r *Runner) runStep(c calc.Calculator, i int, step Step) StepResult {
	sr := StepResult{Index: i, Expr: step.Expr, Unit: step.Unit}

	got, err := evalStep(c, step)
	if err != nil {
		sr.Error = calc.ErrorCode(err)
		sr.Pass = step.Error == sr.Error
		r.logger.Debug("step failed", "step", i, "expr", step.Expr, "error", err)
		return sr
	}
	sr.Text = got.text

	switch {
	case step.Error != "":
		sr.Pass = false
	case step.Expect == "":
		sr.Pass = true
	default:
		want, err := c.Eval(step.Expect)
		if err != nil {
			sr.Error = calc.ErrorCode(err)
			r.logger.Warn("expect does not evaluate", "step", i, "expect", step.Expect, "error", err)
			return sr
		}
		sr.Pass = want.Digest == got.digest
	}

	r.logger.Debug("step evaluated", "step", i, "expr", step.Expr, "text", sr.Text, "pass", sr.Pass)
	return sr
}

type stepValue struct {
	text   string
	digest string
}

// evalStep evaluates the step, converting when a unit is set. A converted
// value is re-evaluated so that it compares like any other result.
func evalStep(c calc.Calculator, step Step) (stepValue, error) {
	if step.Unit == "" {
		res, err := c.Eval(step.Expr)
		if err != nil {
			return stepValue{}, err
		}
		return stepValue{text: res.Text, digest: res.Digest}, nil
	}

	conv, err := c.Convert(step.Expr, step.Unit)
	if err != nil {
		return stepValue{}, err
	}
	res, err := c.Eval(conv.Value)
	if err != nil {
		return stepValue{}, err
	}
	return stepValue{text: conv.Text, digest: res.Digest}, nil
}

func describeFailure(sr StepResult, step Step) string {
	switch {
	case step.Error != "" && sr.Error == "":
		return fmt.Sprintf("step %d: %s = %s, want error %s", sr.Index, step.Expr, sr.Text, step.Error)
	case step.Error != "":
		return fmt.Sprintf("step %d: %s failed with %s, want %s", sr.Index, step.Expr, sr.Error, step.Error)
	case sr.Error != "" && sr.Text == "":
		return fmt.Sprintf("step %d: %s failed with %s", sr.Index, step.Expr, sr.Error)
	case sr.Error != "":
		return fmt.Sprintf("step %d: expect %q failed with %s", sr.Index, step.Expect, sr.Error)
	default:
		return fmt.Sprintf("step %d: %s = %s, want %s", sr.Index, step.Expr, sr.Text, step.Expect)
	}
}
