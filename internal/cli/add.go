package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/roster"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	ID         string
	Name       string
	Department string
	Salary     string
	Joined     string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Long: `Add a new employee record.

The department must be one of the configured departments and the joining
year must lie between min-join-year and the current year.

Examples:
  staffroll add --id E1 --name "Ann Lee" --department HR --salary 50000 --joined 2019-03
  staffroll add --id E2 --name Bo --department Developer --salary 70000 --joined 2022-7 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "employee id (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "employee name (required)")
	cmd.Flags().StringVar(&opts.Department, "department", "", "department (required)")
	cmd.Flags().StringVar(&opts.Salary, "salary", "", "salary, a non-negative number (required)")
	cmd.Flags().StringVar(&opts.Joined, "joined", "", "joining month as YYYY-MM (required)")
	for _, name := range []string{"id", "name", "department", "salary", "joined"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	salary, err := parseSalary(opts.Salary)
	if err != nil {
		return reportError(out, err)
	}

	emp := roster.Normalize(roster.Employee{
		ID:          opts.ID,
		Name:        opts.Name,
		Department:  opts.Department,
		Salary:      salary,
		JoiningDate: opts.Joined,
	})
	if err := opts.entryRules().Check(emp); err != nil {
		return reportError(out, err)
	}

	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.dir.Add(cmd.Context(), emp); err != nil {
		return reportError(out, err)
	}
	return out.Done(MsgInserted, emp)
}

// parseSalary reads a salary typed by a user. Anything that is not a plain
// number is invalid input; range checks happen in validation.
func parseSalary(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &roster.ValidationError{Field: "salary", Message: "must be a number, got " + strconv.Quote(s)}
	}
	return v, nil
}
