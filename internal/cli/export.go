package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/roster"
	"github.com/roach88/staffroll/internal/transfer"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	As string
}

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Exported int    `json:"exported"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write all employees to a YAML, JSON or xlsx file",
		Long: `Write every employee to a file.

YAML and JSON exports list records in the order they were added and can be
imported again. An xlsx export is a report: the tenure-ranked listing with
a tenure column, on a sheet named Employees.

Use "-" as the file to write YAML or JSON to standard output (--as required).

Examples:
  staffroll export backup.yaml
  staffroll export report.xlsx
  staffroll export - --as json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "file format (yaml|json|xlsx); default from the file extension")

	return cmd
}

func runExport(opts *ExportOptions, path string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	if path == "-" && opts.As == "" {
		return NewExitError(ExitCommandError, "--as is required when writing to standard output")
	}
	format, err := resolveFormat(opts.As, path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot determine file format", err)
	}
	if path == "-" && format == transfer.FormatXLSX {
		return NewExitError(ExitCommandError, "xlsx cannot be written to standard output")
	}

	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.Close()

	var (
		count int
		write func(io.Writer) error
	)
	if format == transfer.FormatXLSX {
		ranked, err := sess.dir.Ranked(cmd.Context(), roster.Filter{})
		if err != nil {
			return reportError(out, err)
		}
		count = len(ranked)
		write = func(w io.Writer) error { return transfer.WriteXLSX(w, ranked) }
	} else {
		emps, err := sess.store.ListAll(cmd.Context())
		if err != nil {
			return reportError(out, err)
		}
		count = len(emps)
		write = func(w io.Writer) error { return transfer.Write(w, format, emps) }
	}

	if path == "-" {
		if err := write(out.Writer); err != nil {
			return WrapExitError(ExitCommandError, "failed to write records", err)
		}
		return nil
	}

	if err := writeFile(path, write); err != nil {
		return WrapExitError(ExitCommandError, "failed to write records", err)
	}

	return out.Done(
		fmt.Sprintf("Exported %d employees to %s.", count, path),
		ExportResult{Path: path, Format: string(format), Exported: count},
	)
}

// writeFile creates path and closes it, reporting the first error.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
