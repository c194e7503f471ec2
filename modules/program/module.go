// Package program provides the `check "program"` kind: is one of the named
// executables present on the search path. It never invokes the toolchain.
package program

import (
	"context"
	"fmt"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/memo"
	"github.com/autoprobe/autoprobe/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a program check. Names are tried in order;
// the first match wins.
type Input struct {
	Names []string `hcl:"names"`
}

// OnRunProgram is the handler for the 'program' check kind. The outcome
// carries the located path in addition to the boolean.
func OnRunProgram(ctx context.Context, env *checks.Env, input any) (*checks.Outcome, error) {
	in := input.(*Input)
	if len(in.Names) == 0 {
		return nil, fmt.Errorf("program check requires at least one name")
	}
	path, ok := checks.ProgramVerbose(env.Reporter, in.Names)
	return &checks.Outcome{Found: ok, Path: path}, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCheck("program", &registry.RegisteredCheck{
		NewInput: func() any { return new(Input) },
		Key: func(input any) string {
			return memo.Key("program", input.(*Input).Names...)
		},
		Fn: OnRunProgram,
	})
}
