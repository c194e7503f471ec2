package checks

import (
	"context"
	"fmt"

	"github.com/autoprobe/autoprobe/internal/probe"
	"github.com/autoprobe/autoprobe/internal/report"
	"github.com/autoprobe/autoprobe/internal/srcgen"
)

// Library reports whether every named function resolves when linking against
// the named libraries. The synthesized program declares each function with
// external linkage and references all of them from main, so the linker must
// resolve every symbol. With no libraries it degenerates to a link probe
// against the default runtime.
func Library(ctx context.Context, p *probe.Executor, libraries, functions []string) (bool, error) {
	text := srcgen.Join(
		srcgen.ExternDecls(functions),
		srcgen.MainCalling(functions),
	)
	var linkFlags []string
	for _, lib := range libraries {
		linkFlags = append(linkFlags, "-l"+lib)
	}
	return p.TryLink(ctx, text, linkFlags)
}

// LibraryVerbose is Library wrapped with progress reporting. The message
// pluralizes "function" and "library" by count.
func LibraryVerbose(ctx context.Context, p *probe.Executor, r *report.Reporter, libraries, functions []string) (bool, error) {
	what := plural("function", "functions", functions)
	if len(libraries) > 0 {
		what = fmt.Sprintf("%s in %s", what, plural("library", "libraries", libraries))
	}
	r.Checking(what)
	found, err := Library(ctx, p, libraries, functions)
	if err != nil {
		return false, err
	}
	r.Found(found)
	return found, nil
}
