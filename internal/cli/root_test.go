package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "staffroll", cmd.Use)
	assert.Contains(t, cmd.Long, "ranked by tenure")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"add", "update", "delete", "find", "list", "import", "export", "seed", "check"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "employees.db", dbFlag.DefValue)

	driverFlag := cmd.PersistentFlags().Lookup("driver")
	require.NotNil(t, driverFlag)
	assert.Equal(t, "sqlite3", driverFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestExecute_CommandErrors(t *testing.T) {
	c := newTestCLI(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown command", []string{"promote"}, "unknown command"},
		{"unknown flag", []string{"list", "--colour"}, "unknown flag"},
		{"invalid format", []string{"list", "--format", "xml"}, "format"},
		{"invalid driver", []string{"list", "--driver", "postgres"}, "driver"},
		{"missing config file", []string{"list", "--config", filepath.Join(t.TempDir(), "none.yaml")}, "failed to load configuration"},
		{"missing required flag", []string{"delete", "--id", "E1"}, "required flag"},
		{"wrong arg count", []string{"find"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.run(tt.args...)
			assert.Equal(t, ExitCommandError, r.Code)
			assert.Contains(t, r.Stderr, tt.wantErr)
		})
	}
}

func TestExecute_StorageUnreachable(t *testing.T) {
	var c = newTestCLI(t)
	c.db = filepath.Join(t.TempDir(), "missing-dir", "employees.db")

	r := c.run("list")
	assert.Equal(t, ExitCommandError, r.Code)
	assert.Contains(t, r.Stderr, "failed to open database")
}

func TestExecute_ConfigFile(t *testing.T) {
	c := newTestCLI(t)
	cfg := filepath.Join(t.TempDir(), "staffroll.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("departments: [Sales]\nformat: json\n"), 0o644))

	r := c.run("--config", cfg, "add", "--id", "E1", "--name", "Ann", "--department", "HR", "--salary", "1", "--joined", "2020-01")
	assert.Equal(t, ExitFailure, r.Code)
	resp := decodeResponse(t, r.Stdout, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalid, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "must be one of Sales")

	c.mustRun("--config", cfg, "add", "--id", "E1", "--name", "Ann", "--department", "Sales", "--salary", "1", "--joined", "2020-01")
}

func TestExecute_VerboseLogsToStderr(t *testing.T) {
	c := newTestCLI(t)

	r := c.mustRun("-v", "add", "--id", "E1", "--name", "Ann", "--department", "HR", "--salary", "1", "--joined", "2020-01")
	assert.Contains(t, r.Stderr, "employee added")
	assert.Contains(t, r.Stderr, `msg="database opened"`)
	assert.Contains(t, r.Stderr, "driver=sqlite3")
	assert.NotContains(t, r.Stdout, "employee added")

	r = c.mustRun("add", "--id", "E2", "--name", "Bo", "--department", "HR", "--salary", "1", "--joined", "2020-01")
	assert.Empty(t, r.Stderr)
}
