package checks

import (
	"context"

	"github.com/autoprobe/autoprobe/internal/probe"
	"github.com/autoprobe/autoprobe/internal/report"
	"github.com/autoprobe/autoprobe/internal/srcgen"
)

// Header reports whether every named header exists and parses. The
// synthesized program includes <stdio.h> first so the requested headers are
// parsed in a realistic translation unit, then each header in order, then a
// trivial main.
func Header(ctx context.Context, p *probe.Executor, headers []string) (bool, error) {
	text := srcgen.Join(
		srcgen.Includes(append([]string{"stdio.h"}, headers...)),
		srcgen.TrivialMain(),
	)
	return p.Compile(ctx, text)
}

// HeaderVerbose is Header wrapped with progress reporting.
func HeaderVerbose(ctx context.Context, p *probe.Executor, r *report.Reporter, headers []string) (bool, error) {
	r.Checking(plural("header", "headers", headers))
	found, err := Header(ctx, p, headers)
	if err != nil {
		return false, err
	}
	r.Found(found)
	return found, nil
}
