package roster

import (
	"fmt"
	"sort"
	"time"
)

// MonthsOfTenure returns the whole months between (joinYear, joinMonth) and
// the calendar month of today:
//
//	(today.Year - joinYear)*12 + (today.Month - joinMonth)
//
// The result is not clamped; a future joining date gives a negative value.
func MonthsOfTenure(joinYear, joinMonth int, today time.Time) int {
	return (today.Year()-joinYear)*12 + int(today.Month()) - joinMonth
}

// Ranked pairs a record with its tenure at ranking time.
type Ranked struct {
	Employee
	Months int `json:"tenure_months" yaml:"tenure_months"`
}

// Tenure returns the record's tenure in months at today.
func (e Employee) Tenure(today time.Time) (int, error) {
	d, err := e.Joined()
	if err != nil {
		return 0, err
	}
	return MonthsOfTenure(d.Year, d.Month, today), nil
}

// RankByTenure orders records longest-tenured first.
//
// The sort is stable: records with equal tenure keep their input order.
// A record whose joining date does not parse fails the whole ranking with an
// error wrapping ErrInvalidFormat that names the record.
func RankByTenure(emps []Employee, today time.Time) ([]Ranked, error) {
	ranked := make([]Ranked, 0, len(emps))
	for _, e := range emps {
		months, err := e.Tenure(today)
		if err != nil {
			return nil, fmt.Errorf("rank employee %q: %w", e.ID, err)
		}
		ranked = append(ranked, Ranked{Employee: e, Months: months})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Months > ranked[j].Months
	})

	return ranked, nil
}
