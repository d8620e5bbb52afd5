package scenario

// StepResult is the outcome of one step.
type StepResult struct {
	Index int    `json:"index"`
	Expr  string `json:"expr"`
	Unit  string `json:"unit,omitempty"`

	// Text is the rendered result, or the converted value when Unit is set.
	Text string `json:"text,omitempty"`

	// Error is the error code, when the step failed.
	Error string `json:"error,omitempty"`

	Pass bool `json:"pass"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every step met its expectation.
	Pass bool `json:"pass"`

	Steps []StepResult `json:"steps"`

	// Errors holds one message per failed step. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Steps:  []StepResult{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
