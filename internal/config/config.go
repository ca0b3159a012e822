// Package config defines the application configuration and its sources:
// command-line flags, DIALSIM_* environment variables and an optional YAML
// file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	apperrors "github.com/agbru/dialsim/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variable overrides.
	EnvPrefix = "DIALSIM_"
	// DefaultInput is the instruction file read when none is given.
	DefaultInput = "input.txt"
	// DefaultCount selects the counters run when --count is not given.
	DefaultCount = "landings,crossings"
	// CountAll selects every registered counter.
	CountAll = "all"
	// StdinPath reads instructions from standard input.
	StdinPath = "-"
	// LogFormatConsole is the human-readable log format on stderr.
	LogFormatConsole = "console"
	// LogFormatJSON emits one JSON object per log entry.
	LogFormatJSON = "json"
)

var logFormats = []string{LogFormatConsole, LogFormatJSON}

// supportedShells lists the shells --completion can generate scripts for.
var supportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Input is the path of the instruction file, or "-" for stdin.
	Input string
	// Count is a comma-separated list of counter names, or "all".
	Count string
	// ConfigFile is an optional YAML file with defaults for the other fields.
	ConfigFile string
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// MetricsFile is the path of a Prometheus textfile export (empty to skip).
	MetricsFile string
	// Completion is the shell to generate a completion script for.
	Completion string
	// LogFormat selects the diagnostic log encoding: console or json.
	LogFormat string

	Quiet   bool
	Verbose bool
	// Trace prints one table row per instruction.
	Trace   bool
	NoColor bool
	REPL    bool
	TUI     bool
}

// Counters resolves Count against the available counter names.
func (c AppConfig) Counters(available []string) []string {
	if strings.TrimSpace(c.Count) == CountAll {
		return slices.Clone(available)
	}
	var names []string
	for _, name := range strings.Split(c.Count, ",") {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableCounters: The registered counter names.
//
// Returns:
//   - error: A ConfigError or ValidationError describing the first problem
//     found, or nil.
func (c AppConfig) Validate(availableCounters []string) error {
	if !slices.Contains(logFormats, c.LogFormat) {
		return apperrors.ValidationError{
			Field:   "log-format",
			Message: fmt.Sprintf("unknown format %q (want %s)", c.LogFormat, strings.Join(logFormats, " or ")),
		}
	}
	if c.Completion != "" {
		if !slices.Contains(supportedShells, c.Completion) {
			return apperrors.NewConfigError("unsupported shell %q for --completion (want one of %s)",
				c.Completion, strings.Join(supportedShells, ", "))
		}
		return nil
	}
	if c.REPL && c.TUI {
		return apperrors.NewConfigError("--repl and --tui cannot be combined")
	}
	if c.Quiet && c.Trace {
		return apperrors.NewConfigError("--quiet and --trace cannot be combined")
	}
	if c.REPL {
		return nil
	}
	if strings.TrimSpace(c.Input) == "" {
		return apperrors.NewConfigError("an input file is required (--input)")
	}
	names := c.Counters(availableCounters)
	if len(names) == 0 {
		return apperrors.NewConfigError("no counter selected (--count)")
	}
	for _, name := range names {
		if !slices.Contains(availableCounters, name) {
			return apperrors.NewConfigError("unknown counter %q for --count (want %s or %s)",
				name, strings.Join(availableCounters, ", "), CountAll)
		}
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig, then layers
// the optional YAML file and DIALSIM_* environment variables underneath the
// flags that were explicitly set.
//
// Priority: CLI flags > environment variables > config file > defaults.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The arguments to parse, without the program name.
//   - errorOutput: The writer for usage and parse errors.
//   - availableCounters: The registered counter names, for validation.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorOutput io.Writer, availableCounters []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)

	config := AppConfig{}
	fs.StringVar(&config.Input, "input", DefaultInput, "Instruction file to simulate (\"-\" for stdin).")
	fs.StringVar(&config.Input, "i", DefaultInput, "Shorthand for --input.")
	fs.StringVar(&config.Count, "count", DefaultCount,
		fmt.Sprintf("Counters to run, comma-separated (%s) or %q.", strings.Join(availableCounters, ", "), CountAll))
	fs.StringVar(&config.ConfigFile, "config", "", "YAML file with default settings.")
	fs.StringVar(&config.OutputFile, "output", "", "Save the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish and exit.")
	fs.StringVar(&config.LogFormat, "log-format", LogFormatConsole, "Diagnostic log format on stderr: console or json.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the counts, one per line.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.Trace, "trace", false, "Print a table of every instruction and its effect.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.REPL, "repl", false, "Start an interactive session on the dial.")
	fs.BoolVar(&config.TUI, "tui", false, "Replay the run in a full-screen viewer.")

	fs.Usage = func() {
		fmt.Fprintf(errorOutput, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errorOutput, "Simulates a 100-position dial starting at 50 and counts how often it reaches 0.\n\n")
		fmt.Fprintf(errorOutput, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorOutput, "\nEvery option can also be set through a %s-prefixed environment variable,\n", EnvPrefix)
		fmt.Fprintf(errorOutput, "e.g. %sINPUT=rotations.txt.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if !isFlagSet(fs, "config") {
		if val := lookupEnv("CONFIG"); val != "" {
			config.ConfigFile = val
		}
	}
	if config.ConfigFile != "" {
		file, err := LoadFile(config.ConfigFile)
		if err != nil {
			fmt.Fprintln(errorOutput, err)
			return AppConfig{}, err
		}
		file.apply(&config, fs)
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableCounters); err != nil {
		fmt.Fprintln(errorOutput, err)
		return AppConfig{}, err
	}
	return config, nil
}
