package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/roster"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Department string
	Name       string
}

// ListResult is the JSON payload of the list command.
type ListResult struct {
	// Today is the month tenure was computed at, YYYY-MM.
	Today     string          `json:"today"`
	Employees []roster.Ranked `json:"employees"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees by tenure",
		Long: `List employees, longest tenure first. Employees with equal tenure keep
the order they were added in.

Examples:
  staffroll list
  staffroll list --department Developer
  staffroll list --name lee --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Department, "department", "", "only this department")
	cmd.Flags().StringVar(&opts.Name, "name", "", "only names containing this text (case-insensitive)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.Close()

	filter := roster.Filter{
		Department:   opts.Department,
		NameContains: opts.Name,
	}
	ranked, err := sess.dir.Ranked(cmd.Context(), filter)
	if err != nil {
		return reportError(out, err)
	}
	if !filter.IsZero() {
		total, err := sess.store.Count(cmd.Context())
		if err != nil {
			return reportError(out, err)
		}
		out.VerboseLog("%d of %d employees match", len(ranked), total)
	}

	if out.Format == "json" {
		return out.Success(ListResult{
			Today:     sess.dir.Today().Format("2006-01"),
			Employees: ranked,
		})
	}

	if len(ranked) == 0 {
		fmt.Fprintln(out.Writer, "No employees found.")
		return nil
	}
	renderRanked(out.Writer, ranked)
	return nil
}
