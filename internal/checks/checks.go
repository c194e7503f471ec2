package checks

import (
	"strings"

	"github.com/autoprobe/autoprobe/internal/probe"
	"github.com/autoprobe/autoprobe/internal/report"
)

// Env is the standing environment a check runs against.
type Env struct {
	Probe    *probe.Executor
	Reporter *report.Reporter
}

// Outcome is the externally visible unit of information a check produces.
// Path is populated by program checks, Output by run-capture checks; both
// are empty otherwise.
type Outcome struct {
	Found  bool   `cty:"found"`
	Path   string `cty:"path"`
	Output string `cty:"output"`
}

// plural picks the singular or plural noun by item count and joins the items
// for display. Used by the verbose check variants.
func plural(singular, pluralForm string, items []string) string {
	word := singular
	if len(items) > 1 {
		word = pluralForm
	}
	return word + " " + strings.Join(items, ", ")
}
