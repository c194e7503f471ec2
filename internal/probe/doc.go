// Package probe implements the probe execution engine: it materializes a
// synthesized source program into a scratch file, drives the external
// toolchain through compile, link, and run stages to a requested depth, and
// reduces the outcome to a boolean (plus captured output at the deepest
// depth).
//
// The engine converts toolchain failures into ordinary negative results; it
// returns an error only when the probe itself cannot be set up, such as a
// scratch file that cannot be written. Every scratch artifact a probe creates
// is removed before the call returns, on every exit path.
package probe
