package app

import (
	"context"
	"fmt"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/ctxlog"
	"github.com/autoprobe/autoprobe/internal/executor"
	"github.com/autoprobe/autoprobe/internal/memo"
	"github.com/autoprobe/autoprobe/internal/probe"
	"github.com/autoprobe/autoprobe/internal/report"
	"github.com/autoprobe/autoprobe/internal/toolchain"
)

// Run executes the loaded suite: validate the registry against the model,
// resolve the toolchain, run every check, and print the closing summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.registry.Validate(a.model); err != nil {
		return err
	}
	a.logger.Debug("Registry validation passed.")

	opts := []report.Option{}
	if a.config.NoColor {
		opts = append(opts, report.WithoutColor())
	}
	reporter := report.New(a.outW, opts...)

	tc, err := a.resolveToolchain(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("🔎 Starting suite run.", "compiler", tc.Binary, "checks", len(a.model.Checks))

	env := &checks.Env{
		Probe:    probe.New(tc),
		Reporter: reporter,
	}
	exec := executor.New(a.registry, a.model, env, memo.New(), a.config.KeepGoing)
	summary, runErr := exec.Run(ctx)

	fmt.Fprintf(a.outW, "--- %d check(s): %d found, %d missing\n", summary.Total, summary.Found, summary.Missing)
	if runErr != nil {
		return runErr
	}
	a.logger.Info("🏁 Suite run finished.")
	return nil
}

// resolveToolchain merges defaults, the suite's toolchain block, and the CLI
// compiler override. When no compiler is named anywhere, the conventional
// drivers are searched on PATH; finding none is an environment failure, not
// a check outcome.
func (a *App) resolveToolchain(ctx context.Context) (*toolchain.Toolchain, error) {
	tc := toolchain.Default()

	if cfg := a.model.Toolchain; cfg != nil {
		if cfg.Compiler != "" {
			tc.Binary = cfg.Compiler
		}
		tc.BaseFlags = cfg.Flags
		tc.IncludeDirs = cfg.IncludeDirs
		tc.LinkFlags = cfg.LinkFlags
		tc.WorkDir = cfg.WorkDir
	}
	if a.config.Compiler != "" {
		tc.Binary = a.config.Compiler
	}

	declared := a.config.Compiler != "" || (a.model.Toolchain != nil && a.model.Toolchain.Compiler != "")
	if !declared {
		path, ok := checks.ProgramFirst([]string{"cc", "gcc", "clang"})
		if !ok {
			return nil, fmt.Errorf("no C compiler found on PATH (tried cc, gcc, clang); declare one in the toolchain block")
		}
		tc.Binary = path
		a.logger.Debug("Discovered compiler on PATH.", "path", path)
		return tc, nil
	}

	if _, err := tc.Locate(); err != nil {
		return nil, fmt.Errorf("toolchain binary %q not found: %w", tc.Binary, err)
	}
	return tc, nil
}
