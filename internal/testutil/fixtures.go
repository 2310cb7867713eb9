package testutil

import (
	"fmt"
	"time"

	"github.com/roach88/staffroll/internal/roster"
)

// JoinedMonthsAgo returns the YYYY-MM joining date that gives exactly n
// months of tenure at now.
func JoinedMonthsAgo(now time.Time, n int) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -n, 0)
	return roster.JoiningDate{Year: first.Year(), Month: int(first.Month())}.String()
}

// Employee builds a valid record with the given id and tenure at now.
// Name, department and salary are derived from the id so records stay distinct.
func Employee(id string, now time.Time, tenureMonths int) roster.Employee {
	return roster.Employee{
		ID:          id,
		Name:        "Employee " + id,
		Department:  roster.Departments[len(id)%len(roster.Departments)],
		Salary:      float64(40000 + 1000*tenureMonths),
		JoiningDate: JoinedMonthsAgo(now, tenureMonths),
	}
}

// Employees builds one record per tenure, with ids T1, T2, ... in order.
func Employees(now time.Time, tenures ...int) []roster.Employee {
	out := make([]roster.Employee, len(tenures))
	for i, months := range tenures {
		out[i] = Employee(fmt.Sprintf("T%d", i+1), now, months)
	}
	return out
}
