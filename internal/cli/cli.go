package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/autoprobe/autoprobe/internal/app"
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
	flagSet := flag.NewFlagSet("autoprobe", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
autoprobe - probes a build environment by compiling, linking, and running
synthesized test programs, as declared in an HCL suite.

Usage:
  autoprobe [options] [SUITE_PATH]

Arguments:
  SUITE_PATH
    Path to a single .hcl suite file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	suiteFlag := flagSet.String("suite", "", "Path to the suite file or directory.")
	sFlag := flagSet.String("s", "", "Path to the suite file or directory (shorthand).")
	ccFlag := flagSet.String("cc", "", "Compiler binary, overriding the suite's toolchain block.")
	keepGoingFlag := flagSet.Bool("keep-going", false, "Run remaining checks after a required check fails.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colorized results.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *suiteFlag != "" {
		path = *suiteFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Suite path determined.", "path", path)

	if path == "" {
		slog.Debug("No suite path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SuitePath: path,
		Compiler:  *ccFlag,
		KeepGoing: *keepGoingFlag,
		NoColor:   *noColorFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
