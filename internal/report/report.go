// Package report emits the human-readable progress lines the domain checks
// wrap around probes: a "--- Checking ..." prefix with no trailing line
// break, then a result with one. It also carries the warning and fatal
// message forms. Reporting is presentation only; no probe logic lives here.
package report

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Reporter writes progress and diagnostic lines to a sink.
type Reporter struct {
	out     io.Writer
	noColor bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithoutColor disables ANSI styling, for tests and non-terminal sinks.
func WithoutColor() Option {
	return func(r *Reporter) { r.noColor = true }
}

// New returns a Reporter writing to out.
func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Checking emits the "--- Checking for X... " prefix without a line break;
// the matching Result or Found call completes the line.
func (r *Reporter) Checking(what string) {
	fmt.Fprintf(r.out, "--- Checking for %s... ", what)
}

// Found completes a Checking line with "found" or "NOT found".
func (r *Reporter) Found(ok bool) {
	if ok {
		fmt.Fprintln(r.out, r.green("found"))
		return
	}
	fmt.Fprintln(r.out, r.red("NOT found"))
}

// Result completes a Checking line with arbitrary text, such as the located
// path of a program check.
func (r *Reporter) Result(text string) {
	fmt.Fprintln(r.out, text)
}

// Warn emits a one-line warning.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintf(r.out, "*** WARNING: "+format+"\n", args...)
}

// Fatal emits the two-line error form and returns a FatalError for the
// caller to terminate the process with. The engine never calls this on its
// own; only explicit caller choice after interpreting a check does.
func (r *Reporter) Fatal(format string, args ...any) *FatalError {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.out, "*** ERROR: %s\n***\n", r.red(msg))
	return &FatalError{Message: msg}
}

func (r *Reporter) green(s string) string {
	if r.noColor {
		return s
	}
	return color.Green.Sprint(s)
}

func (r *Reporter) red(s string) string {
	if r.noColor {
		return s
	}
	return color.Red.Sprint(s)
}

// FatalError marks a failure the suite author declared fatal. The process
// exits non-zero when one propagates out of a run.
type FatalError struct {
	Message string
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	return e.Message
}
