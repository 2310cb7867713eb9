package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/staffroll/internal/roster"
)

// Snapshot is the golden-file form of a scenario run.
type Snapshot struct {
	Scenario string          `json:"scenario"`
	Today    string          `json:"today"`
	Pass     bool            `json:"pass"`
	Trace    []Outcome       `json:"trace"`
	Final    []roster.Ranked `json:"final"`
}

// NewSnapshot builds the snapshot of result for scenario.
func NewSnapshot(scenario *Scenario, result *Result) Snapshot {
	return Snapshot{
		Scenario: scenario.Name,
		Today:    scenario.Today,
		Pass:     result.Pass,
		Trace:    result.Trace,
		Final:    result.Final,
	}
}

// MarshalSnapshot renders a snapshot as indented JSON with a trailing newline.
// The output is deterministic for a given scenario.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares its snapshot against a golden
// file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against the scenario's golden file
// without re-running it.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(NewSnapshot(scenario, result))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
