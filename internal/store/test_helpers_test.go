package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/staffroll/internal/roster"
)

// drivers lists every supported driver; tests that touch SQL run against both.
var drivers = []string{DriverCgo, DriverPureGo}

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// forEachDriver runs fn once per driver with a fresh store.
func forEachDriver(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Helper()
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			fn(t, createTestStore(t, WithDriver(driver)))
		})
	}
}

// createTestEmployee creates a valid employee record.
func createTestEmployee(id, name, department string, salary float64, joined string) roster.Employee {
	return roster.Employee{
		ID:          id,
		Name:        name,
		Department:  department,
		Salary:      salary,
		JoiningDate: joined,
	}
}

var (
	ann = createTestEmployee("E1", "Ann", "HR", 50000, "2019-03")
	bo  = createTestEmployee("E2", "Bo", "Developer", 70000, "2022-07")
	cy  = createTestEmployee("E3", "Cy", "Developer", 61250.5, "2021-01")
)
