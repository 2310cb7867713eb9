package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/roster"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	ID   string
	Name string
}

// DeleteResult is the JSON payload of a successful delete.
type DeleteResult struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an employee",
		Long: `Delete the employee whose id and name both match.

A record whose name differs is left alone and reported as not found.

Example:
  staffroll delete --id E1 --name "Ann Lee"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "employee id (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "employee name (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runDelete(opts *DeleteOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	key := roster.Normalize(roster.Employee{ID: opts.ID, Name: opts.Name})

	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.Close()

	removed, err := sess.dir.Remove(cmd.Context(), key.ID, key.Name)
	if err != nil {
		return reportError(out, err)
	}
	if !removed {
		return reportError(out, fmt.Errorf("%w: no record with id %q and name %q", roster.ErrNotFound, key.ID, key.Name))
	}
	return out.Done(MsgDeleted, DeleteResult{ID: key.ID, Removed: true})
}
