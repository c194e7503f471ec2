package probe

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/autoprobe/autoprobe/internal/ctxlog"
	"github.com/autoprobe/autoprobe/internal/toolchain"
)

// Depth is how far a probe proceeds through the toolchain.
type Depth int

const (
	// CompileOnly stops after the compile stage.
	CompileOnly Depth = iota
	// Link additionally produces an executable.
	Link
	// Run additionally executes the produced program.
	Run
	// RunCaptureOutput executes the program and captures its stdout.
	RunCaptureOutput
)

// String returns the depth name for logs.
func (d Depth) String() string {
	switch d {
	case CompileOnly:
		return "compile"
	case Link:
		return "link"
	case Run:
		return "run"
	case RunCaptureOutput:
		return "run_output"
	}
	return "unknown"
}

// Result is the outcome of one probe invocation. Output is populated only
// when the probe ran at RunCaptureOutput depth and succeeded; a failed probe
// never carries output, even if the process printed before exiting non-zero.
type Result struct {
	Ok     bool
	Output string
}

// Executor drives probes against one toolchain configuration. It holds no
// mutable state, so a single Executor is safe for concurrent probes; the
// unique scratch names issued by Materialize are the only isolation needed.
type Executor struct {
	tc *toolchain.Toolchain
}

// New returns an Executor bound to the given toolchain.
func New(tc *toolchain.Toolchain) *Executor {
	return &Executor{tc: tc}
}

// Toolchain exposes the executor's toolchain configuration.
func (e *Executor) Toolchain() *toolchain.Toolchain {
	return e.tc
}

// Execute synthesizes programText into a scratch source, drives the
// toolchain to the requested depth, and reduces the outcome to a Result.
// extraLinkFlags are appended to the sanitized link flag set; library checks
// use them for -l switches.
//
// Stage failures are answers, not errors: any non-zero exit (or failure to
// launch a stage at all) yields {Ok: false}. Execute returns a non-nil error
// only when the scratch source cannot be created, which means the probe
// could not be performed and must not be read as "feature absent". All
// scratch artifacts are removed before returning, whatever happened.
func (e *Executor) Execute(ctx context.Context, programText string, depth Depth, extraLinkFlags []string) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("depth", depth.String())

	// The banner records the compile stage as it will actually run; the
	// source path inside it is unknowable before the file exists, so the
	// banner names the flags only.
	banner := e.tc.CommandLine(toolchain.Sanitize(e.tc.BaseFlags))

	source, stem, err := Materialize(e.tc.WorkDir, banner, programText)
	if err != nil {
		return Result{}, err
	}

	object := stem + e.tc.ObjSuffix
	executable := stem + e.tc.ExeSuffix

	// Guaranteed cleanup on every exit path, including early returns from
	// failed stages. Removal errors are ignored: a stage that never ran
	// never created its artifact.
	defer func() {
		os.Remove(source)
		os.Remove(object)
		os.Remove(executable)
	}()

	if depth == CompileOnly {
		ok := e.invoke(ctx, logger, e.tc.Binary, e.tc.CompileArgs(source, object, true))
		return Result{Ok: ok}, nil
	}

	// Build the executable, either in one combined invocation or as an
	// explicit compile-then-link pair.
	if e.tc.Combined() {
		if !e.invoke(ctx, logger, e.tc.Binary, e.tc.CombinedArgs(source, executable, extraLinkFlags)) {
			return Result{}, nil
		}
	} else {
		if !e.invoke(ctx, logger, e.tc.Binary, e.tc.CompileArgs(source, object, true)) {
			return Result{}, nil
		}
		if !e.invoke(ctx, logger, e.tc.Binary, e.tc.LinkArgs(object, executable, extraLinkFlags)) {
			return Result{}, nil
		}
	}

	switch depth {
	case Link:
		return Result{Ok: true}, nil
	case Run:
		return Result{Ok: e.invoke(ctx, logger, executable, nil)}, nil
	case RunCaptureOutput:
		out, err := exec.CommandContext(ctx, executable).Output()
		if err != nil {
			// A failing exit or an inability to read output both count as a
			// negative probe, never as an engine error.
			logger.Debug("Probe run-capture stage failed.", "error", err)
			return Result{}, nil
		}
		return Result{Ok: true, Output: trimLineEnd(string(out))}, nil
	}
	return Result{Ok: true}, nil
}

// invoke runs one external stage and reduces it to a boolean. Only exit
// status is authoritative; output is neither captured nor inspected here.
func (e *Executor) invoke(ctx context.Context, logger *slog.Logger, binary string, args []string) bool {
	cmd := exec.CommandContext(ctx, binary, args...)
	err := cmd.Run()
	logger.Debug("Probe stage finished.", "binary", binary, "args", strings.Join(args, " "), "ok", err == nil)
	return err == nil
}

// trimLineEnd removes a single trailing line separator from captured output.
func trimLineEnd(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
