// Package toolchain describes the external compiler/linker a probe drives
// and assembles the command lines for its individual stages.
//
// The toolchain is treated as an opaque program identified by a command line.
// Only process exit status is ever interpreted; nothing here parses compiler
// output.
package toolchain

import (
	"os/exec"
	"strings"
)

// Toolchain is the standing environment a probe inherits: the compiler
// binary, its base flag sets, and the naming conventions for the artifacts
// each stage produces.
type Toolchain struct {
	// Binary is the compiler driver, either an absolute path or a name
	// resolved through PATH at invocation time.
	Binary string

	// BaseFlags are passed to the compile stage of every probe. They are
	// sanitized before use; see Sanitize.
	BaseFlags []string

	// IncludeDirs are rendered as -I flags on the compile stage.
	IncludeDirs []string

	// LinkFlags are passed to the link stage (or to the combined stage when
	// compile and link share one invocation).
	LinkFlags []string

	// OutputFlag names the compile-stage output. LinkOutputFlag names the
	// link-stage output. When the two are the same flag the driver combines
	// both stages into a single invocation.
	OutputFlag     string
	LinkOutputFlag string

	// CompileOnlyFlag stops the driver after the compile stage.
	CompileOnlyFlag string

	// ObjSuffix and ExeSuffix are appended to a probe's source stem to derive
	// the object and executable paths. ExeSuffix is empty on POSIX systems.
	ObjSuffix string
	ExeSuffix string

	// WorkDir is where probe scratch files are created. Empty means the
	// system temporary directory.
	WorkDir string
}

// Default returns the conventional Unix C toolchain configuration.
func Default() *Toolchain {
	return &Toolchain{
		Binary:          "cc",
		OutputFlag:      "-o",
		LinkOutputFlag:  "-o",
		CompileOnlyFlag: "-c",
		ObjSuffix:       ".o",
		ExeSuffix:       "",
	}
}

// Combined reports whether the driver names compile and link output with the
// same flag, in which case a Link-depth probe is a single invocation instead
// of an explicit object-then-executable two-stage build.
func (t *Toolchain) Combined() bool {
	return t.OutputFlag == t.LinkOutputFlag
}

// Locate resolves the compiler binary through PATH. A failure here means the
// environment cannot run probes at all, which callers must treat as fatal
// rather than as a negative check result.
func (t *Toolchain) Locate() (string, error) {
	return exec.LookPath(t.Binary)
}

// CompileArgs assembles the argument list for the compile stage: sanitized
// base flags, include paths, the output-naming flag, the source file, and the
// compile-only switch when the stage must not link.
func (t *Toolchain) CompileArgs(source, output string, compileOnly bool) []string {
	args := append([]string{}, Sanitize(t.BaseFlags)...)
	for _, dir := range t.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, t.OutputFlag, output, source)
	if compileOnly {
		args = append(args, t.CompileOnlyFlag)
	}
	return args
}

// CombinedArgs assembles a single compile-and-link invocation for drivers
// where OutputFlag and LinkOutputFlag coincide.
func (t *Toolchain) CombinedArgs(source, output string, extraLinkFlags []string) []string {
	args := append([]string{}, Sanitize(t.BaseFlags)...)
	for _, dir := range t.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, t.OutputFlag, output, source)
	args = append(args, Sanitize(t.LinkFlags)...)
	args = append(args, Sanitize(extraLinkFlags)...)
	return args
}

// LinkArgs assembles the explicit link stage over a previously produced
// object file.
func (t *Toolchain) LinkArgs(object, output string, extraLinkFlags []string) []string {
	args := []string{t.LinkOutputFlag, output, object}
	args = append(args, Sanitize(t.LinkFlags)...)
	args = append(args, Sanitize(extraLinkFlags)...)
	return args
}

// CommandLine renders the binary plus arguments as a single display string,
// used for the banner comment in synthesized probe sources.
func (t *Toolchain) CommandLine(args []string) string {
	return strings.Join(append([]string{t.Binary}, args...), " ")
}
