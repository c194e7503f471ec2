package probe

import "context"

// The four derived probes are thin configurations of Execute differing only
// in depth. Each takes the caller's program text as its sole required input;
// the toolchain environment is the Executor's standing configuration.

// Compile reports whether programText compiles.
func (e *Executor) Compile(ctx context.Context, programText string) (bool, error) {
	res, err := e.Execute(ctx, programText, CompileOnly, nil)
	return res.Ok, err
}

// TryLink reports whether programText compiles and links, with
// extraLinkFlags appended to the toolchain's link flag set.
func (e *Executor) TryLink(ctx context.Context, programText string, extraLinkFlags []string) (bool, error) {
	res, err := e.Execute(ctx, programText, Link, extraLinkFlags)
	return res.Ok, err
}

// TryRun reports whether programText compiles, links, and exits zero.
func (e *Executor) TryRun(ctx context.Context, programText string) (bool, error) {
	res, err := e.Execute(ctx, programText, Run, nil)
	return res.Ok, err
}

// RunOutput runs programText and captures its standard output. It is the
// only probe whose result carries text in addition to a boolean.
func (e *Executor) RunOutput(ctx context.Context, programText string) (Result, error) {
	return e.Execute(ctx, programText, RunCaptureOutput, nil)
}
