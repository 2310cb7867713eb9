package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/roster"
	"github.com/roach88/staffroll/internal/transfer"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	As           string // file format; inferred from the extension when empty
	SkipExisting bool
}

// ImportResult is the JSON payload of the import command.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add employees from a YAML or JSON file",
		Long: `Add every employee listed in a record file.

The file is checked against the record schema before anything is written;
unknown fields, bad joining dates and ids repeated within the file reject
the whole file. Records are then added one at a time in file order. An id
that already exists stops the import unless --skip-existing is set.

File format:
  employees:
    - {id: E1, name: Ann, department: HR, salary: 50000, joining_date: "2019-03"}

Examples:
  staffroll import staff.yaml
  staffroll import export.json --skip-existing`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "file format (yaml|json); default from the file extension")
	cmd.Flags().BoolVar(&opts.SkipExisting, "skip-existing", false, "skip records whose id already exists")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	format, err := resolveFormat(opts.As, path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot determine file format", err)
	}
	if !format.Readable() {
		return NewExitError(ExitCommandError, fmt.Sprintf("cannot import %s files", format))
	}

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open record file", err)
	}
	defer f.Close()

	reader, err := transfer.NewReader()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load record schema", err)
	}
	records, err := reader.Read(f, format)
	if err != nil {
		if roster.Kind(err) == roster.KindUnknown {
			return WrapExitError(ExitCommandError, "failed to read record file", err)
		}
		return reportError(out, err)
	}

	sess, err := opts.open()
	if err != nil {
		return err
	}
	defer sess.Close()

	result := ImportResult{Skipped: []string{}}
	for _, e := range records {
		err := sess.dir.Add(cmd.Context(), e)
		switch {
		case err == nil:
			result.Imported++
		case opts.SkipExisting && errors.Is(err, roster.ErrDuplicateKey):
			result.Skipped = append(result.Skipped, e.ID)
			out.VerboseLog("skipped existing id %s", e.ID)
		default:
			out.VerboseLog("imported %d of %d records before failing", result.Imported, len(records))
			return reportError(out, fmt.Errorf("record %q: %w", e.ID, err))
		}
	}

	msg := fmt.Sprintf("Imported %d employees.", result.Imported)
	if n := len(result.Skipped); n > 0 {
		msg = fmt.Sprintf("Imported %d employees, skipped %d existing.", result.Imported, n)
	}
	return out.Done(msg, result)
}

// resolveFormat uses an explicit format name when given, else the extension.
func resolveFormat(as, path string) (transfer.Format, error) {
	if as != "" {
		return transfer.ParseFormat(as)
	}
	return transfer.FormatFromPath(path)
}
