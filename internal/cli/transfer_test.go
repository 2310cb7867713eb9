package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/roach88/staffroll/internal/transfer"
)

func writeRecords(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const staffYAML = `employees:
  - {id: E1, name: Ann, department: HR, salary: 50000, joining_date: "2019-03"}
  - {id: E2, name: Bo, department: Developer, salary: 70000, joining_date: "2022-07"}
`

func TestImport(t *testing.T) {
	c := newTestCLI(t)
	path := writeRecords(t, "staff.yaml", staffYAML)

	r := c.mustRun("import", path)
	assert.Equal(t, "Imported 2 employees.\n", r.Stdout)

	r = c.mustRun("find", "E2")
	assert.Contains(t, r.Stdout, "Bo")
}

func TestImport_Existing(t *testing.T) {
	c := newTestCLI(t)
	c.addAnn()
	path := writeRecords(t, "staff.yaml", staffYAML)

	r := c.run("import", path)
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, CodeDuplicate)

	r = c.mustRun("--format", "json", "import", path, "--skip-existing")
	var res ImportResult
	decodeResponse(t, r.Stdout, &res)
	assert.Equal(t, ImportResult{Imported: 1, Skipped: []string{"E1"}}, res)
}

func TestImport_RejectsWholeFile(t *testing.T) {
	c := newTestCLI(t)
	path := writeRecords(t, "staff.json", `{"employees": [
		{"id": "E1", "name": "Ann", "department": "HR", "salary": 1, "joining_date": "2019-03"},
		{"id": "E2", "name": "Bo", "department": "HR", "salary": -5, "joining_date": "2019-03"}
	]}`)

	r := c.run("--format", "json", "import", path)
	assert.Equal(t, ExitFailure, r.Code)
	resp := decodeResponse(t, r.Stdout, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalid, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "salary")

	r = c.run("find", "E1")
	assert.Equal(t, ExitFailure, r.Code, "nothing is written when the file is invalid")
}

func TestImport_CommandErrors(t *testing.T) {
	c := newTestCLI(t)

	r := c.run("import", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, ExitCommandError, r.Code)

	r = c.run("import", writeRecords(t, "staff.txt", staffYAML))
	assert.Equal(t, ExitCommandError, r.Code)

	r = c.run("import", writeRecords(t, "staff.xlsx", "not a workbook"))
	assert.Equal(t, ExitCommandError, r.Code)

	r = c.run("import", writeRecords(t, "broken.json", "{"))
	assert.Equal(t, ExitCommandError, r.Code)
	assert.Contains(t, r.Stderr, "failed to read record file")

	c.mustRun("import", writeRecords(t, "staff.txt", staffYAML), "--as", "yaml")
}

func TestExport_RoundTrip(t *testing.T) {
	for _, ext := range []string{"yaml", "json"} {
		t.Run(ext, func(t *testing.T) {
			src := newTestCLI(t)
			src.addBo()
			src.addAnn()

			path := filepath.Join(t.TempDir(), "backup."+ext)
			r := src.mustRun("export", path)
			assert.Equal(t, "Exported 2 employees to "+path+".\n", r.Stdout)

			dst := newTestCLI(t)
			dst.mustRun("import", path)

			want := src.mustRun("--format", "json", "list").Stdout
			got := dst.mustRun("--format", "json", "list").Stdout
			assert.JSONEq(t, want, got)
		})
	}
}

func TestExport_Stdout(t *testing.T) {
	c := newTestCLI(t)
	c.addAnn()

	r := c.mustRun("export", "-", "--as", "json")
	assert.JSONEq(t, `{"employees": [
		{"id": "E1", "name": "Ann", "department": "HR", "salary": 50000, "joining_date": "2019-03"}
	]}`, r.Stdout)

	r = c.run("export", "-")
	assert.Equal(t, ExitCommandError, r.Code)

	r = c.run("export", "-", "--as", "xlsx")
	assert.Equal(t, ExitCommandError, r.Code)
}

func TestExport_XLSX(t *testing.T) {
	c := newTestCLI(t)
	c.addBo()
	c.addAnn()

	path := filepath.Join(t.TempDir(), "report.xlsx")
	r := c.mustRun("--format", "json", "export", path)
	var res ExportResult
	decodeResponse(t, r.Stdout, &res)
	assert.Equal(t, ExportResult{Path: path, Format: "xlsx", Exported: 2}, res)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(transfer.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "E1", rows[1][0], "ranked longest tenure first")
	assert.Equal(t, "58", rows[1][5])
	assert.Equal(t, "E2", rows[2][0])
}
