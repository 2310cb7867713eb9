package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/staffroll/internal/config"
	"github.com/roach88/staffroll/internal/roster"
	"github.com/roach88/staffroll/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	DB         string
	Driver     string
	ConfigFile string

	// EnvFile overrides the dotenv file config loading reads.
	EnvFile string

	// Clock overrides the system clock. Tests freeze "today" with it.
	Clock roster.Clock

	// Config and Logger are resolved before any subcommand runs.
	Config *config.Config
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the staffroll CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts, so callers
// can preset fields that have no flag (Clock, EnvFile).
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staffroll",
		Short: "staffroll - a local employee register",
		Long: `staffroll keeps employee records in a local SQLite file and lists them
ranked by tenure.

Settings come from flags, STAFFROLL_* environment variables (a .env file is
read if present), or a config file (staffroll.yaml in the working directory,
or --config). Flags take precedence over environment variables, which take
precedence over the config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, config.KeyVerbose, "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, config.KeyFormat, config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DB, config.KeyDB, config.DefaultDB, "path to the SQLite database file")
	cmd.PersistentFlags().StringVar(&opts.Driver, config.KeyDriver, store.DriverCgo, "SQLite driver (sqlite3|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./staffroll.yaml if present)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors a command already reported are not printed again.
func Execute(args []string, stdout, stderr io.Writer) int {
	return ExecuteWithOptions(&RootOptions{}, args, stdout, stderr)
}

// ExecuteWithOptions is Execute with preset root options.
func ExecuteWithOptions(opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommandWithOptions(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		// Flag parsing, argument count and unknown commands.
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	if !exitErr.reported {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitErr.Code
}

// resolve loads configuration and sets up logging.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		ConfigFile: o.ConfigFile,
		EnvFile:    o.EnvFile,
		Flags:      cmd.Root().PersistentFlags(),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	o.Config = cfg
	o.DB = cfg.DB
	o.Driver = cfg.Driver
	o.Format = cfg.Format
	o.Verbose = cfg.Verbose

	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if cfg.File != "" {
		o.Logger.Debug("config file loaded", "path", cfg.File)
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *RootOptions) clock() roster.Clock {
	if o.Clock == nil {
		return roster.SystemClock{}
	}
	return o.Clock
}

func (o *RootOptions) entryRules() roster.EntryRules {
	if o.Config != nil {
		return o.Config.EntryRules(o.clock())
	}
	rules := roster.DefaultEntryRules()
	rules.Clock = o.clock()
	return rules
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	format := o.Format
	if format == "" {
		format = "text"
	}
	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// session is the open register for one command invocation.
type session struct {
	store *store.Store
	dir   *roster.Directory
}

// open opens the database. Failure is a command error: nothing was attempted.
func (o *RootOptions) open() (*session, error) {
	driver := o.Driver
	if driver == "" {
		driver = store.DriverCgo
	}
	st, err := store.Open(o.DB, store.WithDriver(driver), store.WithLogger(o.logger()))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to open database %s", o.DB), err)
	}
	o.logger().Debug("database opened", "path", o.DB, "driver", st.Driver())
	return &session{
		store: st,
		dir:   roster.NewDirectory(st, o.clock()).WithLogger(o.logger()),
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
