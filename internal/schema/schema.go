// Package schema validates employee record files against an embedded CUE
// schema before they are decoded into roster records.
//
// Validation runs on the generic decoded form of the file (maps, slices,
// scalars), so unknown fields are caught instead of silently dropped.
package schema

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/staffroll/internal/roster"
)

//go:embed employee.cue
var employeeCUE string

// Definition paths inside employee.cue.
const (
	DocumentPath = "#Document"
	EmployeePath = "#Employee"
)

// Validator checks decoded record data against the schema.
//
// A Validator owns a cue.Context and is not safe for concurrent use.
type Validator struct {
	ctx      *cue.Context
	document cue.Value
	employee cue.Value
}

// New compiles the embedded schema.
func New() (*Validator, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(employeeCUE, cue.Filename("employee.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile employee schema: %w", err)
	}

	doc := v.LookupPath(cue.ParsePath(DocumentPath))
	emp := v.LookupPath(cue.ParsePath(EmployeePath))
	if !doc.Exists() || !emp.Exists() {
		return nil, fmt.Errorf("employee schema: missing %s or %s", DocumentPath, EmployeePath)
	}

	return &Validator{ctx: ctx, document: doc, employee: emp}, nil
}

// ValidateDocument checks a whole record file: {employees: [...]}.
func (v *Validator) ValidateDocument(data any) error {
	return v.check(v.document, data)
}

// ValidateEmployee checks a single record.
func (v *Validator) ValidateEmployee(data any) error {
	return v.check(v.employee, data)
}

func (v *Validator) check(def cue.Value, data any) error {
	val := v.ctx.Encode(data)
	if err := val.Err(); err != nil {
		return newSchemaError(err)
	}
	if err := def.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return newSchemaError(err)
	}
	return nil
}

// Problem is one schema violation.
type Problem struct {
	// Path is the dotted location of the value, e.g. "employees.2.salary".
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// SchemaError lists every violation found in one validation. It matches
// roster.ErrInvalidInput.
type SchemaError struct {
	Problems []Problem
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	if len(parts) == 1 {
		return "schema: " + parts[0]
	}
	return fmt.Sprintf("schema: %d problems: %s", len(parts), strings.Join(parts, "; "))
}

// Is reports whether target is roster.ErrInvalidInput.
func (e *SchemaError) Is(target error) bool {
	return target == roster.ErrInvalidInput
}

func newSchemaError(err error) *SchemaError {
	var problems []Problem
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		problems = append(problems, Problem{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(problems) == 0 {
		problems = append(problems, Problem{Message: err.Error()})
	}

	// CUE does not promise an order; sort so messages are reproducible.
	slices.SortStableFunc(problems, func(a, b Problem) int {
		return strings.Compare(a.Path, b.Path)
	})
	problems = slices.Compact(problems)

	return &SchemaError{Problems: problems}
}
