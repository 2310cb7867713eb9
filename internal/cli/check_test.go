package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const harnessScenarios = "../harness/testdata/scenarios"

func TestCheck_HarnessScenarios(t *testing.T) {
	c := newTestCLI(t)

	r := c.mustRun("check", harnessScenarios)
	assert.Contains(t, r.Stdout, "✓ employee_lifecycle")
	assert.Contains(t, r.Stdout, "✓ tenure_ranking")
	assert.Contains(t, r.Stdout, "2 passed, 0 failed, 2 total")

	_, err := os.Stat(c.db)
	assert.True(t, os.IsNotExist(err), "check must not create the --db file")
}

func TestCheck_Filter(t *testing.T) {
	c := newTestCLI(t)

	r := c.mustRun("--format", "json", "check", harnessScenarios, "--filter", "tenure*")
	var res CheckResult
	decodeResponse(t, r.Stdout, &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "tenure_ranking", res.Scenarios[0].Name)
}

func writeScenarioDir(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "scenarios")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const failingScenario = `name: wrong_order
description: expects the wrong ranking
today: "2024-01"
setup:
  - {id: A, name: Ada, department: HR, salary: 1, joining_date: "2020-01"}
  - {id: B, name: Ben, department: HR, salary: 1, joining_date: "2010-01"}
steps:
  - op: list
    expect: {order: [A, B]}
`

func TestCheck_Failures(t *testing.T) {
	c := newTestCLI(t)
	dir := writeScenarioDir(t, map[string]string{
		"wrong_order.yaml": failingScenario,
		"broken.yaml":      "name: broken\n",
	})

	r := c.run("check", dir)
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, "✗ wrong_order")
	assert.Contains(t, r.Stdout, "expected order [A B], got [B A]")
	assert.Contains(t, r.Stdout, "✗ broken.yaml")
	assert.Contains(t, r.Stdout, "0 passed, 2 failed, 2 total")
	assert.Empty(t, r.Stderr)
}

func TestCheck_UpdateWritesGolden(t *testing.T) {
	c := newTestCLI(t)
	dir := writeScenarioDir(t, map[string]string{
		"ok.yaml": `name: ok
description: one record
today: "2024-01"
setup:
  - {id: A, name: Ada, department: HR, salary: 1, joining_date: "2020-01"}
steps:
  - op: find
    id: A
`,
	})

	r := c.mustRun("check", dir, "--update")
	assert.Contains(t, r.Stdout, "✓ ok (golden updated)")

	golden := filepath.Join(filepath.Dir(dir), "golden", "ok.golden")
	data, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tenure_months": 48`)

	c.mustRun("check", dir)

	require.NoError(t, os.WriteFile(golden, []byte("{}\n"), 0o644))
	r = c.run("check", dir)
	assert.Equal(t, ExitFailure, r.Code)
	assert.Contains(t, r.Stdout, "does not match golden file")
}

func TestCheck_MissingDir(t *testing.T) {
	c := newTestCLI(t)
	r := c.run("check", filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, ExitCommandError, r.Code)
	assert.Contains(t, r.Stderr, "scenarios directory not found")
}

func TestCheck_Empty(t *testing.T) {
	c := newTestCLI(t)
	r := c.mustRun("check", writeScenarioDir(t, nil))
	assert.Equal(t, "No scenarios found.\n", r.Stdout)
}
