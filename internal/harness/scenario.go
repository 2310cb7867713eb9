package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/staffroll/internal/roster"
)

// Scenario defines an employee-register scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Today is the frozen current month, "YYYY-MM". Tenure is computed from it.
	Today string `yaml:"today"`

	// Driver optionally selects the store driver ("sqlite3" or "sqlite").
	Driver string `yaml:"driver,omitempty"`

	// Setup records are inserted before the steps run and must succeed.
	Setup []roster.Employee `yaml:"setup,omitempty"`

	// Steps run in order against the directory.
	Steps []Step `yaml:"steps"`
}

// Step is one directory operation.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Employee is the record for add, and the new values for update.
	Employee *roster.Employee `yaml:"employee,omitempty"`

	// ID and Name address the record for find and delete.
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name,omitempty"`

	// Department and NameContains filter a list step.
	Department   string `yaml:"department,omitempty"`
	NameContains string `yaml:"name_contains,omitempty"`

	// Expect is checked against the step outcome when present.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies what a step must return.
type Expect struct {
	// Error is the expected roster.Kind of the error; empty means success.
	Error string `yaml:"error,omitempty"`

	// Removed is the expected result of a delete.
	Removed *bool `yaml:"removed,omitempty"`

	// Order is the expected id order of a list.
	Order []string `yaml:"order,omitempty"`

	// Employee is the expected record returned by find or update.
	Employee *roster.Employee `yaml:"employee,omitempty"`
}

// Step operations.
const (
	OpAdd    = "add"
	OpFind   = "find"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
)

var knownKinds = map[string]bool{
	roster.KindDuplicateKey:  true,
	roster.KindNotFound:      true,
	roster.KindInvalidFormat: true,
	roster.KindInvalidInput:  true,
	roster.KindNameMismatch:  true,
	roster.KindStorage:       true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := roster.ParseJoiningDate(s.Today); err != nil {
		return fmt.Errorf("today: %w", err)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, e := range s.Setup {
		if err := roster.Validate(e); err != nil {
			return fmt.Errorf("setup[%d]: %w", i, err)
		}
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks the fields a step's op requires.
func validateStep(index int, st *Step) error {
	switch st.Op {
	case OpAdd, OpUpdate:
		if st.Employee == nil {
			return fmt.Errorf("steps[%d]: employee is required for %s", index, st.Op)
		}
	case OpFind:
		if st.ID == "" {
			return fmt.Errorf("steps[%d]: id is required for find", index)
		}
	case OpDelete:
		if st.ID == "" || st.Name == "" {
			return fmt.Errorf("steps[%d]: id and name are required for delete", index)
		}
	case OpList:
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}

	if st.Expect == nil {
		return nil
	}
	if st.Expect.Error != "" && !knownKinds[st.Expect.Error] {
		return fmt.Errorf("steps[%d].expect: unknown error kind %q", index, st.Expect.Error)
	}
	if st.Expect.Removed != nil && st.Op != OpDelete {
		return fmt.Errorf("steps[%d].expect: removed only applies to delete", index)
	}
	if st.Expect.Order != nil && st.Op != OpList {
		return fmt.Errorf("steps[%d].expect: order only applies to list", index)
	}
	if st.Expect.Employee != nil && st.Op != OpFind && st.Op != OpUpdate {
		return fmt.Errorf("steps[%d].expect: employee only applies to find and update", index)
	}
	return nil
}
