package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/config"
)

// Module is the interface all check modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredCheck holds the compiled Go parts of one check kind.
type RegisteredCheck struct {
	// NewInput allocates the input struct the check's HCL body decodes into.
	NewInput func() any

	// Key derives the memoization identity of a decoded input. Two checks
	// with equal keys share one outcome per process.
	Key func(input any) string

	// Fn performs the check.
	Fn func(ctx context.Context, env *checks.Env, input any) (*checks.Outcome, error)
}

// Registry maps check kinds to their registered handlers.
type Registry struct {
	Checks map[string]*RegisteredCheck
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{Checks: make(map[string]*RegisteredCheck)}
}

// RegisterCheck registers a handler for a check kind. Registering the same
// kind twice is a programmer error.
func (r *Registry) RegisterCheck(kind string, c *RegisteredCheck) {
	if _, exists := r.Checks[kind]; exists {
		panic(fmt.Sprintf("check handler for kind '%s' already registered", kind))
	}
	slog.Debug("Registering check handler.", "kind", kind)
	r.Checks[kind] = c
}

// Validate verifies that every check kind the suite names has a registered
// handler, so a typo in a suite fails up front instead of mid-run.
func (r *Registry) Validate(model *config.Model) error {
	var unknown []string
	for _, chk := range model.Checks {
		if _, ok := r.Checks[chk.Kind]; !ok {
			unknown = append(unknown, fmt.Sprintf("%s (check %q at %s)", chk.Kind, chk.Name, chk.Range.String()))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown check kinds:\n- %s", strings.Join(unknown, "\n- "))
	}
	return nil
}
