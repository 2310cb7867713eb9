package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/staffroll/internal/roster"
)

func TestAdd(t *testing.T) {
	c := newTestCLI(t)

	r := c.mustRun("add", "--id", "E1", "--name", "Ann", "--department", "HR", "--salary", "50000", "--joined", "2019-03")
	assert.Equal(t, MsgInserted+"\n", r.Stdout)

	r = c.mustRun("find", "E1")
	assert.Contains(t, r.Stdout, "Ann")
	assert.Contains(t, r.Stdout, "50,000.00")
	assert.Contains(t, r.Stdout, "58 months")
}

func TestAdd_JSON(t *testing.T) {
	c := newTestCLI(t)

	r := c.mustRun("--format", "json", "add", "--id", " E1 ", "--name", "Ann", "--department", "HR", "--salary", "50000.5", "--joined", "2019-3")

	var emp roster.Employee
	resp := decodeResponse(t, r.Stdout, &emp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, roster.Employee{ID: "E1", Name: "Ann", Department: "HR", Salary: 50000.5, JoiningDate: "2019-3"}, emp)
}

func TestAdd_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"salary not a number", []string{"--department", "HR", "--salary", "lots", "--joined", "2020-01"}, CodeInvalid},
		{"negative salary", []string{"--department", "HR", "--salary", "-1", "--joined", "2020-01"}, CodeInvalid},
		{"unknown department", []string{"--department", "Finance", "--salary", "1", "--joined", "2020-01"}, CodeInvalid},
		{"month 13", []string{"--department", "HR", "--salary", "1", "--joined", "2020-13"}, CodeFormat},
		{"day included", []string{"--department", "HR", "--salary", "1", "--joined", "2020-01-01"}, CodeFormat},
		{"year before 1960", []string{"--department", "HR", "--salary", "1", "--joined", "1959-12"}, CodeInvalid},
		{"year after today", []string{"--department", "HR", "--salary", "1", "--joined", "2025-01"}, CodeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			args := append([]string{"--format", "json", "add", "--id", "E1", "--name", "Ann"}, tt.args...)

			r := c.run(args...)
			assert.Equal(t, ExitFailure, r.Code)
			resp := decodeResponse(t, r.Stdout, nil)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			r = c.run("find", "E1")
			assert.Equal(t, ExitFailure, r.Code, "rejected record must not be stored")
		})
	}
}

func TestAdd_DuplicateKeepsFirst(t *testing.T) {
	c := newTestCLI(t)
	c.addAnn()

	r := c.run("add", "--id", "E1", "--name", "Other", "--department", "HR", "--salary", "1", "--joined", "2020-01")
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, "Error ["+CodeDuplicate+"]")
	assert.Contains(t, r.Stdout, MsgDuplicate)
	assert.Empty(t, r.Stderr, "reported errors are not repeated")

	r = c.mustRun("find", "E1")
	assert.Contains(t, r.Stdout, "Ann")
}

func TestUpdate(t *testing.T) {
	c := newTestCLI(t)
	c.addAnn()

	r := c.mustRun("update", "--id", "E1", "--name", "Ann", "--department", "Manager", "--salary", "65000")
	assert.Equal(t, MsgUpdated+"\n", r.Stdout)

	var emp roster.Employee
	r = c.mustRun("--format", "json", "find", "E1")
	decodeResponse(t, r.Stdout, &emp)
	assert.Equal(t, roster.Employee{ID: "E1", Name: "Ann", Department: "Manager", Salary: 65000, JoiningDate: "2019-03"}, emp)

	c.mustRun("update", "--id", "E1", "--name", "Ann", "--department", "Manager", "--salary", "65000", "--joined", "2018-11")
	r = c.mustRun("--format", "json", "find", "E1")
	decodeResponse(t, r.Stdout, &emp)
	assert.Equal(t, "2018-11", emp.JoiningDate)
}

func TestUpdate_Failures(t *testing.T) {
	c := newTestCLI(t)
	c.addAnn()

	r := c.run("update", "--id", "E1", "--name", "Anne", "--department", "HR", "--salary", "1")
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, MsgNameMismatch)

	r = c.run("update", "--id", "E9", "--name", "Ann", "--department", "HR", "--salary", "1")
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, MsgNotFound)

	r = c.run("--format", "json", "update", "--id", "E1", "--name", "Ann", "--department", "Finance", "--salary", "1")
	assert.Equal(t, ExitFailure, r.Code)
	resp := decodeResponse(t, r.Stdout, nil)
	assert.Equal(t, CodeInvalid, resp.Error.Code)

	var emp roster.Employee
	r = c.mustRun("--format", "json", "find", "E1")
	decodeResponse(t, r.Stdout, &emp)
	assert.Equal(t, "HR", emp.Department, "failed updates leave the record alone")
	assert.Equal(t, 50000.0, emp.Salary)
}

func TestDelete(t *testing.T) {
	c := newTestCLI(t)
	c.addAnn()

	r := c.run("delete", "--id", "E1", "--name", "Anne")
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, MsgNotFound)
	c.mustRun("find", "E1")

	r = c.mustRun("--format", "json", "delete", "--id", "E1", "--name", "Ann")
	var res DeleteResult
	decodeResponse(t, r.Stdout, &res)
	assert.Equal(t, DeleteResult{ID: "E1", Removed: true}, res)

	r = c.run("--format", "json", "find", "E1")
	assert.Equal(t, ExitFailure, r.Code)
	resp := decodeResponse(t, r.Stdout, nil)
	assert.Equal(t, CodeNotFound, resp.Error.Code)
	assert.Equal(t, MsgNotFound, resp.Error.Message)
}

func TestList(t *testing.T) {
	c := newTestCLI(t)

	r := c.mustRun("list")
	assert.Equal(t, "No employees found.\n", r.Stdout)

	c.addBo()
	c.addAnn()

	r = c.mustRun("list")
	annAt := strings.Index(r.Stdout, "Ann")
	boAt := strings.Index(r.Stdout, "Bo")
	require.NotEqual(t, -1, annAt)
	require.NotEqual(t, -1, boAt)
	assert.Less(t, annAt, boAt, "longest tenure first:\n%s", r.Stdout)
	assert.Contains(t, r.Stdout, "Tenure (months)")
	assert.Contains(t, r.Stdout, "70,000.00")

	var res ListResult
	r = c.mustRun("--format", "json", "list")
	decodeResponse(t, r.Stdout, &res)
	assert.Equal(t, "2024-01", res.Today)
	require.Len(t, res.Employees, 2)
	assert.Equal(t, "E1", res.Employees[0].ID)
	assert.Equal(t, 58, res.Employees[0].Months)
	assert.Equal(t, "E2", res.Employees[1].ID)
	assert.Equal(t, 18, res.Employees[1].Months)

	r = c.mustRun("--format", "json", "list", "--department", "Developer")
	decodeResponse(t, r.Stdout, &res)
	require.Len(t, res.Employees, 1)
	assert.Equal(t, "E2", res.Employees[0].ID)

	r = c.mustRun("--format", "json", "list", "--name", "AN")
	decodeResponse(t, r.Stdout, &res)
	require.Len(t, res.Employees, 1)
	assert.Equal(t, "E1", res.Employees[0].ID)
}

func TestFind_Text(t *testing.T) {
	c := newTestCLI(t)
	c.addBo()

	r := c.mustRun("find", "E2")
	assert.Contains(t, r.Stdout, "Department:    Developer")
	assert.Contains(t, r.Stdout, "Joined:        2022-07")
	assert.Contains(t, r.Stdout, "Tenure:        18 months")
}

func TestBothDrivers(t *testing.T) {
	for _, driver := range []string{"sqlite3", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			c := newTestCLI(t)
			c.mustRun("--driver", driver, "add", "--id", "E1", "--name", "Ann", "--department", "HR", "--salary", "1", "--joined", "2020-01")
			r := c.mustRun("--driver", driver, "find", "E1")
			assert.Contains(t, r.Stdout, "Ann")
		})
	}
}

func TestFind_DecomposedID(t *testing.T) {
	c := newTestCLI(t)
	decomposed := "Jose\u0301"
	c.mustRun("add", "--id", decomposed, "--name", "Ann", "--department", "HR", "--salary", "1", "--joined", "2020-01")

	r := c.mustRun("find", decomposed)
	assert.Contains(t, r.Stdout, "Ann")

	r = c.mustRun("find", "Jos\u00e9")
	assert.Contains(t, r.Stdout, "Ann")
}

func TestAdd_DepartmentFromEnvironment(t *testing.T) {
	t.Setenv("STAFFROLL_DEPARTMENTS", "Human Resources,Finance")
	c := newTestCLI(t)

	c.mustRun("add", "--id", "E1", "--name", "Ann", "--department", "Human Resources", "--salary", "1", "--joined", "2020-01")

	r := c.run("add", "--id", "E2", "--name", "Bo", "--department", "Human", "--salary", "1", "--joined", "2020-01")
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, CodeInvalid)
}

func TestList_VerboseReportsMatchCount(t *testing.T) {
	c := newTestCLI(t)
	c.addAnn()
	c.addBo()

	r := c.mustRun("-v", "list", "--department", "HR")
	assert.Contains(t, r.Stderr, "1 of 2 employees match")

	r = c.mustRun("-v", "list")
	assert.NotContains(t, r.Stderr, "employees match")
}
