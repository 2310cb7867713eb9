package roster

import (
	"math"
	"strings"
	"time"
)

// Validate checks the contract every record must meet before it reaches the
// store: non-empty id, name and department, a finite non-negative salary and a
// joining date in YYYY-MM form. The first violation is returned as a
// *ValidationError.
func Validate(e Employee) error {
	if strings.TrimSpace(e.ID) == "" {
		return invalid("id", "must not be empty")
	}
	if strings.TrimSpace(e.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if strings.TrimSpace(e.Department) == "" {
		return invalid("department", "must not be empty")
	}
	if math.IsNaN(e.Salary) || math.IsInf(e.Salary, 0) {
		return invalid("salary", "must be a finite number")
	}
	if e.Salary < 0 {
		return invalid("salary", "must not be negative, got %g", e.Salary)
	}
	if _, err := ParseJoiningDate(e.JoiningDate); err != nil {
		return &ValidationError{Field: "joining_date", Message: err.Error(), Cause: ErrInvalidFormat}
	}
	return nil
}

// EntryRules are the stricter checks applied to records typed in by a user:
// the department must come from a fixed list and the joining year must fall
// between MinYear and the current year.
type EntryRules struct {
	Departments []string
	MinYear     int
	Clock       Clock
}

// DefaultEntryRules returns the rules of the interactive form: the standard
// departments and joining years from 1960.
func DefaultEntryRules() EntryRules {
	return EntryRules{
		Departments: Departments,
		MinYear:     1960,
		Clock:       SystemClock{},
	}
}

// Check runs Validate and then the entry rules.
func (r EntryRules) Check(e Employee) error {
	if err := Validate(e); err != nil {
		return err
	}
	if err := r.checkDepartment(e.Department); err != nil {
		return err
	}

	// Validate already parsed it once.
	d, _ := ParseJoiningDate(e.JoiningDate)
	return r.checkYear(d)
}

// CheckUpdate applies the entry rules to the values an update sets. The
// Directory validates the merged record itself.
func (r EntryRules) CheckUpdate(req UpdateRequest) error {
	if err := r.checkDepartment(req.Department); err != nil {
		return err
	}
	if req.JoiningDate == "" {
		return nil
	}
	d, err := ParseJoiningDate(req.JoiningDate)
	if err != nil {
		return &ValidationError{Field: "joining_date", Message: err.Error(), Cause: ErrInvalidFormat}
	}
	return r.checkYear(d)
}

func (r EntryRules) checkDepartment(dept string) error {
	if len(r.Departments) > 0 && !contains(r.Departments, dept) {
		return invalid("department", "must be one of %s", strings.Join(r.Departments, ", "))
	}
	return nil
}

func (r EntryRules) checkYear(d JoiningDate) error {
	maxYear := r.now().Year()
	if d.Year < r.MinYear || d.Year > maxYear {
		return invalid("joining_date", "year must be between %d and %d", r.MinYear, maxYear)
	}
	return nil
}

func (r EntryRules) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock.Now()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
