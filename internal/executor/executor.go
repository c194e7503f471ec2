// Package executor runs the checks of a loaded suite in declaration order.
// It owns the caller-side concerns the probe engine deliberately does not:
// the run-at-most-once memoization of identical checks, the exposure of
// earlier outcomes to later check arguments, and the decision to abort when
// a required check comes back negative.
package executor

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/config"
	"github.com/autoprobe/autoprobe/internal/ctxlog"
	"github.com/autoprobe/autoprobe/internal/memo"
	"github.com/autoprobe/autoprobe/internal/registry"
)

// Executor performs one suite run.
type Executor struct {
	registry  *registry.Registry
	model     *config.Model
	env       *checks.Env
	store     *memo.Store
	keepGoing bool

	// outcomes mirrors the memo store but is keyed by kind and name, feeding
	// the HCL evaluation context for cross-check references.
	outcomes map[string]map[string]cty.Value
}

// Summary aggregates a run for the closing report line.
type Summary struct {
	Total    int
	Found    int
	Missing  int
	Replayed int
}

// New creates an Executor over a validated suite.
func New(reg *registry.Registry, model *config.Model, env *checks.Env, store *memo.Store, keepGoing bool) *Executor {
	return &Executor{
		registry:  reg,
		model:     model,
		env:       env,
		store:     store,
		keepGoing: keepGoing,
		outcomes:  make(map[string]map[string]cty.Value),
	}
}

// Run performs every check in declaration order. Negative outcomes are data,
// not errors; Run fails only on environment errors (a probe that could not
// be set up, an argument that does not decode) or when a required check is
// negative, in which case the returned error is the reporter's FatalError.
// With keepGoing set, a required failure is remembered and returned after
// the remaining checks have run.
func (e *Executor) Run(ctx context.Context) (*Summary, error) {
	logger := ctxlog.FromContext(ctx)
	summary := &Summary{Total: len(e.model.Checks)}
	var fatal error

	for _, chk := range e.model.Checks {
		chkLogger := logger.With("kind", chk.Kind, "name", chk.Name)

		rc := e.registry.Checks[chk.Kind]
		input := rc.NewInput()
		if diags := gohcl.DecodeBody(chk.Body, e.evalContext(), input); diags.HasErrors() {
			return summary, fmt.Errorf("failed to decode arguments for check %s.%s: %w", chk.Kind, chk.Name, diags)
		}

		key := rc.Key(input)
		outcome, cached := e.store.Get(key)
		if cached {
			// Replay: the first occurrence already ran and reported.
			chkLogger.Debug("Replayed cached outcome.", "found", outcome.Found)
			summary.Replayed++
		} else {
			var err error
			outcome, err = rc.Fn(ctx, e.env, input)
			if err != nil {
				return summary, fmt.Errorf("check %s.%s could not be performed: %w", chk.Kind, chk.Name, err)
			}
			e.store.Put(key, outcome)
		}

		if outcome.Found {
			summary.Found++
		} else {
			summary.Missing++
		}

		if err := e.record(chk, outcome); err != nil {
			return summary, err
		}

		if chk.Required && !outcome.Found {
			err := e.env.Reporter.Fatal("required check %s.%s failed", chk.Kind, chk.Name)
			if !e.keepGoing {
				return summary, err
			}
			fatal = err
		}
	}

	logger.Debug("Suite run finished.", "found", summary.Found, "missing", summary.Missing, "replayed", summary.Replayed)
	return summary, fatal
}

// record exposes a finished check's outcome to later checks as
// check.<kind>.<name> with found/path/output attributes.
func (e *Executor) record(chk *config.Check, outcome *checks.Outcome) error {
	ty, err := gocty.ImpliedType(*outcome)
	if err != nil {
		return fmt.Errorf("deriving outcome type: %w", err)
	}
	val, err := gocty.ToCtyValue(*outcome, ty)
	if err != nil {
		return fmt.Errorf("converting outcome of %s.%s: %w", chk.Kind, chk.Name, err)
	}

	byName := e.outcomes[chk.Kind]
	if byName == nil {
		byName = make(map[string]cty.Value)
		e.outcomes[chk.Kind] = byName
	}
	byName[chk.Name] = val
	return nil
}

// evalContext builds the HCL evaluation context holding every outcome
// recorded so far.
func (e *Executor) evalContext() *hcl.EvalContext {
	byKind := make(map[string]cty.Value, len(e.outcomes))
	for kind, byName := range e.outcomes {
		byKind[kind] = cty.ObjectVal(byName)
	}
	vars := map[string]cty.Value{}
	if len(byKind) > 0 {
		vars["check"] = cty.ObjectVal(byKind)
	}
	return &hcl.EvalContext{Variables: vars}
}
