package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Model is the unified representation of a loaded probe suite.
type Model struct {
	Toolchain *ToolchainConfig
	Checks    []*Check
}

// ToolchainConfig describes the compiler environment a suite declares. All
// fields are optional; unset fields fall back to toolchain defaults, and the
// compiler itself can be discovered through a program check.
type ToolchainConfig struct {
	Compiler    string
	Flags       []string
	IncludeDirs []string
	LinkFlags   []string
	WorkDir     string
}

// Check is one declared check. Kind selects the registered handler
// ("header", "library", "program", "compile", "link", "run", "run_output"),
// Name labels the result for reporting and cross-check references, and Body
// holds the undecoded arguments; the executor decodes them against the
// handler's input struct with the suite's evaluation context, so later
// checks can reference earlier outcomes.
type Check struct {
	Kind     string
	Name     string
	Required bool
	Body     hcl.Body
	Range    hcl.Range
}

// Loader is the interface a format-specific suite loader implements.
type Loader interface {
	// Load reads every suite file reachable from the given paths and
	// translates them into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
