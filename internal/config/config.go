// Package config resolves staffroll settings from flags, environment, an
// optional config file and an optional .env file.
//
// Precedence, highest first: explicitly set flags, STAFFROLL_* environment
// variables (including those loaded from .env), the config file, defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roach88/staffroll/internal/roster"
	"github.com/roach88/staffroll/internal/store"
)

// EnvPrefix prefixes every environment variable, e.g. STAFFROLL_DB.
const EnvPrefix = "STAFFROLL"

// Setting keys. Flag names match.
const (
	KeyDB          = "db"
	KeyDriver      = "driver"
	KeyFormat      = "format"
	KeyVerbose     = "verbose"
	KeyDepartments = "departments"
	KeyMinJoinYear = "min-join-year"
)

// Defaults.
const (
	DefaultDB          = "employees.db"
	DefaultFormat      = "text"
	DefaultMinJoinYear = 1960
)

// Config is the resolved configuration.
type Config struct {
	DB          string
	Driver      string
	Format      string
	Verbose     bool
	Departments []string
	MinJoinYear int

	// File is the config file that was read, empty if none.
	File string
}

// Options tells Load where to look.
type Options struct {
	// ConfigFile is an explicit config file. Missing or unreadable is an error.
	// When empty, staffroll.yaml in the working directory is used if present.
	ConfigFile string

	// EnvFile is a dotenv file. Defaults to ".env"; a missing file is ignored.
	EnvFile string

	// Flags are bound so explicitly set flags win. May be nil.
	Flags *pflag.FlagSet
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault(KeyDB, DefaultDB)
	v.SetDefault(KeyDriver, store.DriverCgo)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyDepartments, roster.Departments)
	v.SetDefault(KeyMinJoinYear, DefaultMinJoinYear)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("staffroll")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for _, key := range []string{KeyDB, KeyDriver, KeyFormat, KeyVerbose} {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	cfg := &Config{
		DB:          v.GetString(KeyDB),
		Driver:      v.GetString(KeyDriver),
		Format:      v.GetString(KeyFormat),
		Verbose:     v.GetBool(KeyVerbose),
		Departments: listValue(v.Get(KeyDepartments)),
		MinJoinYear: v.GetInt(KeyMinJoinYear),
		File:        v.ConfigFileUsed(),
	}
	if err := cfg.Validate(time.Now()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency. now bounds min-join-year.
func (c *Config) Validate(now time.Time) error {
	if strings.TrimSpace(c.DB) == "" {
		return fmt.Errorf("config: %s must not be empty", KeyDB)
	}
	if c.Driver != store.DriverCgo && c.Driver != store.DriverPureGo {
		return fmt.Errorf("config: %s must be %q or %q, got %q", KeyDriver, store.DriverCgo, store.DriverPureGo, c.Driver)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("config: %s must be text or json, got %q", KeyFormat, c.Format)
	}
	if len(c.Departments) == 0 {
		return fmt.Errorf("config: %s must list at least one department", KeyDepartments)
	}
	if c.MinJoinYear > now.Year() {
		return fmt.Errorf("config: %s %d is after the current year", KeyMinJoinYear, c.MinJoinYear)
	}
	return nil
}

// EntryRules returns the interactive-entry rules these settings describe.
func (c *Config) EntryRules(clock roster.Clock) roster.EntryRules {
	if clock == nil {
		clock = roster.SystemClock{}
	}
	return roster.EntryRules{
		Departments: slices.Clone(c.Departments),
		MinYear:     c.MinJoinYear,
		Clock:       clock,
	}
}

// listValue reads a list setting. Environment variables carry one string,
// split on commas only so items may contain spaces; config files and
// defaults carry real lists whose items are kept whole.
func listValue(raw any) []string {
	switch val := raw.(type) {
	case nil:
		return nil
	case string:
		return splitList(val)
	case []string:
		return trimItems(val)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
		return trimItems(items)
	default:
		return splitList(fmt.Sprint(val))
	}
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(s string) []string {
	return trimItems(strings.Split(s, ","))
}

func trimItems(items []string) []string {
	var out []string
	for _, item := range items {
		if p := strings.TrimSpace(item); p != "" {
			out = append(out, p)
		}
	}
	return out
}
