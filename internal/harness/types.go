package harness

import "github.com/roach88/staffroll/internal/roster"

// Outcome records what a single step returned.
type Outcome struct {
	Step int    `json:"step"`
	Op   string `json:"op"`

	// Error is the roster.Kind of the returned error, empty on success.
	Error string `json:"error,omitempty"`

	// Removed is set for delete steps.
	Removed *bool `json:"removed,omitempty"`

	// Employee is the record returned by find or update.
	Employee *roster.Employee `json:"employee,omitempty"`

	// Order is the id order returned by list, longest tenure first.
	Order []string `json:"order,omitempty"`
}

// Result is what running one scenario produced.
type Result struct {
	// Pass is false once any step expectation failed.
	Pass bool `json:"pass"`

	// Trace contains one outcome per step, in order.
	Trace []Outcome `json:"trace"`

	// Errors lists every failed expectation, one message each.
	Errors []string `json:"errors,omitempty"`

	// Final is the ranked listing of the store after the last step.
	Final []roster.Ranked `json:"final"`
}

// NewResult returns an empty passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []Outcome{},
		Errors: []string{},
		Final:  []roster.Ranked{},
	}
}

// AddError records a failed expectation.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
