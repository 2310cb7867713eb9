package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/roster"
)

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <id>",
		Short: "Show one employee",
		Long: `Look up an employee by id.

Example:
  staffroll find E1
  staffroll find E1 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(rootOpts, roster.NormalizeID(args[0]), cmd)
		},
	}

	return cmd
}

func runFind(opts *RootOptions, id string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.Close()

	emp, err := sess.dir.Find(cmd.Context(), id)
	if err != nil {
		return reportError(out, err)
	}

	if out.Format == "json" {
		return out.Success(emp)
	}
	renderEmployee(out.Writer, emp, sess.dir.Today())
	return nil
}
