package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/autoprobe/autoprobe/internal/app"
	"github.com/autoprobe/autoprobe/internal/cli"
	"github.com/autoprobe/autoprobe/internal/hcl"
	"github.com/autoprobe/autoprobe/internal/report"
)

// main is the entrypoint for the autoprobe binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		var fatalErr *report.FatalError
		if errors.As(err, &fatalErr) {
			// The reporter already printed the two-line error form.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (such as an unparsable
	// suite); recover into a plain error for a clean exit message.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	probeApp := app.NewApp(outW, appConfig, loader)

	return probeApp.Run(context.Background())
}
