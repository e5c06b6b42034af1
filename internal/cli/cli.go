package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/amidakuji/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("amidakuji", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
amidakuji - draw a ghost-leg lottery in the terminal.

Usage:
  amidakuji [options] [START]

Arguments:
  START
    1-based lane to trace from. Omit to only draw the board.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	lanesFlag := flagSet.Int("lanes", 0, "Number of lanes.")
	rowsFlag := flagSet.Int("rows", 0, "Number of rung rows. 0 uses three rows per lane.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for the board. 0 picks one from the clock.")
	probFlag := flagSet.Float64("p", 0, "Probability of a rung in each cell.")
	exclusiveFlag := flagSet.Bool("exclusive", false, "Never place two rungs side by side in one row.")
	namesFlag := flagSet.String("names", "", "Comma-separated participant names.")
	startFlag := flagSet.Int("start", 0, "1-based lane to trace from (same as START).")
	allFlag := flagSet.Bool("all", false, "Print where every lane ends up.")
	pathFlag := flagSet.Bool("path", false, "Print the traced coordinates.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	start := *startFlag
	if flagSet.NArg() > 0 {
		n, err := strconv.Atoi(flagSet.Arg(0))
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid START %q: must be a lane number", flagSet.Arg(0))}
		}
		start = n
	}

	// Only flags given explicitly override the settings file.
	var overrides app.Overrides
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lanes":
			overrides.Lanes = lanesFlag
		case "rows":
			overrides.Rows = rowsFlag
		case "seed":
			overrides.Seed = seedFlag
		case "p":
			overrides.Probability = probFlag
		case "exclusive":
			overrides.ExclusiveRungs = exclusiveFlag
		case "names":
			overrides.Participants = splitNames(*namesFlag)
		}
	})
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SettingsPath: *configFlag,
		LogFormat:    *logFormatFlag,
		LogLevel:     *logLevelFlag,
		Start:        start,
		All:          *allFlag,
		ShowPath:     *pathFlag,
		Overrides:    overrides,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitNames splits a comma-separated list, trimming spaces. Empty entries
// are kept so that "Aoi,,Ren" leaves lane 2 unnamed.
func splitNames(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
