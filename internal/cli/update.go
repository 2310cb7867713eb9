package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/roster"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	ID         string
	Name       string
	Department string
	Salary     string
	Joined     string
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an employee's department and salary",
		Long: `Update an existing employee.

The record is addressed by --id and --name together; a name that does not
match the stored one is rejected. The joining date is kept unless --joined
is given. The stored record is replaced in a single transaction.

Examples:
  staffroll update --id E1 --name "Ann Lee" --department Manager --salary 65000
  staffroll update --id E1 --name "Ann Lee" --department Manager --salary 65000 --joined 2018-11`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "employee id (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "current employee name (required)")
	cmd.Flags().StringVar(&opts.Department, "department", "", "new department (required)")
	cmd.Flags().StringVar(&opts.Salary, "salary", "", "new salary (required)")
	cmd.Flags().StringVar(&opts.Joined, "joined", "", "new joining month as YYYY-MM (default: keep)")
	for _, name := range []string{"id", "name", "department", "salary"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runUpdate(opts *UpdateOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	salary, err := parseSalary(opts.Salary)
	if err != nil {
		return reportError(out, err)
	}

	fields := roster.Normalize(roster.Employee{
		ID:          opts.ID,
		Name:        opts.Name,
		Department:  opts.Department,
		JoiningDate: opts.Joined,
	})
	req := roster.UpdateRequest{
		ID:          fields.ID,
		Name:        fields.Name,
		Department:  fields.Department,
		Salary:      salary,
		JoiningDate: fields.JoiningDate,
	}
	if err := opts.entryRules().CheckUpdate(req); err != nil {
		return reportError(out, err)
	}

	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.Close()

	updated, err := sess.dir.Update(cmd.Context(), req)
	if err != nil {
		return reportError(out, err)
	}
	return out.Done(MsgUpdated, updated)
}
