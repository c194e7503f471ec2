package executor_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/config"
	"github.com/autoprobe/autoprobe/internal/executor"
	"github.com/autoprobe/autoprobe/internal/hcl"
	"github.com/autoprobe/autoprobe/internal/memo"
	"github.com/autoprobe/autoprobe/internal/probe"
	"github.com/autoprobe/autoprobe/internal/registry"
	"github.com/autoprobe/autoprobe/internal/report"
	"github.com/autoprobe/autoprobe/internal/testutil"
	"github.com/autoprobe/autoprobe/modules/fragment"
	"github.com/autoprobe/autoprobe/modules/header"
	"github.com/autoprobe/autoprobe/modules/library"
	"github.com/autoprobe/autoprobe/modules/program"
)

// loadSuite parses suite text into a model through the real HCL loader.
func loadSuite(t *testing.T, suite string) *config.Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.hcl")
	require.NoError(t, os.WriteFile(path, []byte(suite), 0o600))
	model, err := hcl.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	return model
}

// newEnv builds a check environment over the fake toolchain, reporting into
// the returned buffer.
func newEnv(t *testing.T) (*checks.Env, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &checks.Env{
		Probe:    probe.New(testutil.FakeToolchain(t)),
		Reporter: report.New(&buf, report.WithoutColor()),
	}, &buf
}

func coreRegistry() *registry.Registry {
	reg := registry.New()
	for _, m := range []registry.Module{
		&header.Module{}, &library.Module{}, &program.Module{}, &fragment.Module{},
	} {
		m.Register(reg)
	}
	return reg
}

func TestRun_MixedSuite(t *testing.T) {
	t.Parallel()

	model := loadSuite(t, `
check "header" "stdio" { headers = ["stdio.h"] }
check "program" "shell" { names = ["sh"] }
check "run_output" "greeting" { source = "//run:echo hello\n" }
check "compile" "broken" { source = "// PROBE_FAIL_COMPILE\n" }
`)
	env, buf := newEnv(t)

	summary, err := executor.New(coreRegistry(), model, env, memo.New(), false).Run(context.Background())
	require.NoError(t, err, "negative outcomes are data, not errors")

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 3, summary.Found)
	assert.Equal(t, 1, summary.Missing)
	assert.Equal(t, 0, summary.Replayed)

	out := buf.String()
	assert.Contains(t, out, "--- Checking for header stdio.h... found")
	assert.Contains(t, out, "--- Checking for program sh... ")
	assert.Contains(t, out, "NOT found")
}

func TestRun_MemoizesIdenticalChecks(t *testing.T) {
	t.Parallel()

	// Distinct names, identical kind and arguments: one probe, one replay.
	model := loadSuite(t, `
check "header" "stdio_a" { headers = ["stdio.h"] }
check "header" "stdio_b" { headers = ["stdio.h"] }
`)
	env, buf := newEnv(t)

	calls := 0
	reg := registry.New()
	reg.RegisterCheck("header", &registry.RegisteredCheck{
		NewInput: func() any { return new(header.Input) },
		Key: func(input any) string {
			return memo.Key("header", input.(*header.Input).Headers...)
		},
		Fn: func(ctx context.Context, env *checks.Env, input any) (*checks.Outcome, error) {
			calls++
			return header.OnRunHeader(ctx, env, input)
		},
	})

	summary, err := executor.New(reg, model, env, memo.New(), false).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "the second identical check must replay, not re-run")
	assert.Equal(t, 1, summary.Replayed)
	assert.Equal(t, 2, summary.Found, "a replayed outcome still counts")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Checking")), "replays do not re-report")
}

func TestRun_RequiredFailureStops(t *testing.T) {
	t.Parallel()

	model := loadSuite(t, `
check "compile" "broken" {
  required = true
  source   = "// PROBE_FAIL_COMPILE\n"
}
check "header" "after" { headers = ["stdio.h"] }
`)
	env, buf := newEnv(t)

	summary, err := executor.New(coreRegistry(), model, env, memo.New(), false).Run(context.Background())

	var fatal *report.FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Contains(t, buf.String(), "*** ERROR: required check compile.broken failed")
	assert.Equal(t, 1, summary.Found+summary.Missing, "the second check must not have run")
}

func TestRun_KeepGoingFinishesButStillFails(t *testing.T) {
	t.Parallel()

	model := loadSuite(t, `
check "compile" "broken" {
  required = true
  source   = "// PROBE_FAIL_COMPILE\n"
}
check "header" "after" { headers = ["stdio.h"] }
`)
	env, _ := newEnv(t)

	summary, err := executor.New(coreRegistry(), model, env, memo.New(), true).Run(context.Background())

	var fatal *report.FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, 2, summary.Found+summary.Missing, "keep-going runs the remaining checks")
}

func TestRun_CrossCheckReference(t *testing.T) {
	t.Parallel()

	// The second check's source is the first check's captured output.
	model := loadSuite(t, `
check "run_output" "gen" { source = "//run:echo 'int main() { return 0; }'\n" }
check "compile" "generated" { source = check.run_output.gen.output }
`)
	env, _ := newEnv(t)

	summary, err := executor.New(coreRegistry(), model, env, memo.New(), false).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Found)
}

func TestRun_UndecodableArgumentsPropagate(t *testing.T) {
	t.Parallel()

	model := loadSuite(t, `check "header" "bad" { headers = "not-a-list" }`)
	env, _ := newEnv(t)

	_, err := executor.New(coreRegistry(), model, env, memo.New(), false).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode arguments")
}
