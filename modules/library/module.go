// Package library provides the `check "library"` kind: can each named
// function be resolved by the linker against the named libraries.
package library

import (
	"context"
	"fmt"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/memo"
	"github.com/autoprobe/autoprobe/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a library check. Libraries may be empty,
// which probes symbol resolution against the default runtime alone.
type Input struct {
	Libraries []string `hcl:"libraries,optional"`
	Functions []string `hcl:"functions"`
}

// OnRunLibrary is the handler for the 'library' check kind.
func OnRunLibrary(ctx context.Context, env *checks.Env, input any) (*checks.Outcome, error) {
	in := input.(*Input)
	if len(in.Functions) == 0 {
		return nil, fmt.Errorf("library check requires at least one function")
	}
	found, err := checks.LibraryVerbose(ctx, env.Probe, env.Reporter, in.Libraries, in.Functions)
	if err != nil {
		return nil, err
	}
	return &checks.Outcome{Found: found}, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCheck("library", &registry.RegisteredCheck{
		NewInput: func() any { return new(Input) },
		Key: func(input any) string {
			in := input.(*Input)
			// The empty element keeps the two lists from aliasing each other.
			args := append(append([]string{}, in.Libraries...), "")
			args = append(args, in.Functions...)
			return memo.Key("library", args...)
		},
		Fn: OnRunLibrary,
	})
}
