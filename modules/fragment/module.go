// Package fragment provides the four raw probe kinds — `check "compile"`,
// `check "link"`, `check "run"`, and `check "run_output"` — for suite
// authors who need to probe an arbitrary program fragment rather than a
// header, library, or program.
package fragment

import (
	"context"
	"fmt"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/memo"
	"github.com/autoprobe/autoprobe/internal/probe"
	"github.com/autoprobe/autoprobe/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a fragment check. Source is the complete
// program text; Libraries adds -l switches at link depth and beyond.
type Input struct {
	Source    string   `hcl:"source"`
	Libraries []string `hcl:"libraries,optional"`
}

// handlerFor builds the handler for one probe depth. All four kinds share
// the same input shape and differ only in how deep the probe proceeds.
func handlerFor(kind string, depth probe.Depth) *registry.RegisteredCheck {
	return &registry.RegisteredCheck{
		NewInput: func() any { return new(Input) },
		Key: func(input any) string {
			in := input.(*Input)
			args := append([]string{in.Source}, in.Libraries...)
			return memo.Key(kind, args...)
		},
		Fn: func(ctx context.Context, env *checks.Env, input any) (*checks.Outcome, error) {
			in := input.(*Input)
			if in.Source == "" {
				return nil, fmt.Errorf("%s check requires a source fragment", kind)
			}

			var linkFlags []string
			for _, lib := range in.Libraries {
				linkFlags = append(linkFlags, "-l"+lib)
			}

			env.Reporter.Checking(fmt.Sprintf("%s of fragment", kind))
			res, err := env.Probe.Execute(ctx, in.Source, depth, linkFlags)
			if err != nil {
				return nil, err
			}
			env.Reporter.Found(res.Ok)
			return &checks.Outcome{Found: res.Ok, Output: res.Output}, nil
		},
	}
}

// Register registers the four probe-depth handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCheck("compile", handlerFor("compile", probe.CompileOnly))
	r.RegisterCheck("link", handlerFor("link", probe.Link))
	r.RegisterCheck("run", handlerFor("run", probe.Run))
	r.RegisterCheck("run_output", handlerFor("run_output", probe.RunCaptureOutput))
}
