// Package header provides the `check "header"` kind: does each named header
// exist and parse under the suite's toolchain.
package header

import (
	"context"
	"fmt"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/memo"
	"github.com/autoprobe/autoprobe/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a header check.
type Input struct {
	Headers []string `hcl:"headers"`
}

// OnRunHeader is the handler for the 'header' check kind.
func OnRunHeader(ctx context.Context, env *checks.Env, input any) (*checks.Outcome, error) {
	in := input.(*Input)
	if len(in.Headers) == 0 {
		return nil, fmt.Errorf("header check requires at least one header")
	}
	found, err := checks.HeaderVerbose(ctx, env.Probe, env.Reporter, in.Headers)
	if err != nil {
		return nil, err
	}
	return &checks.Outcome{Found: found}, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCheck("header", &registry.RegisteredCheck{
		NewInput: func() any { return new(Input) },
		Key: func(input any) string {
			return memo.Key("header", input.(*Input).Headers...)
		},
		Fn: OnRunHeader,
	})
}
