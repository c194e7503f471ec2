package checks_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoprobe/autoprobe/internal/checks"
	"github.com/autoprobe/autoprobe/internal/probe"
	"github.com/autoprobe/autoprobe/internal/report"
	"github.com/autoprobe/autoprobe/internal/testutil"
)

func TestHeaderVerbose_ReportsAndSucceeds(t *testing.T) {
	t.Parallel()

	e := probe.New(testutil.FakeToolchain(t))
	var buf bytes.Buffer
	r := report.New(&buf, report.WithoutColor())

	found, err := checks.HeaderVerbose(context.Background(), e, r, []string{"stdio.h"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "--- Checking for header stdio.h... found\n", buf.String())
}

func TestHeaderVerbose_PluralizesByCount(t *testing.T) {
	t.Parallel()

	e := probe.New(testutil.FakeToolchain(t))
	var buf bytes.Buffer
	r := report.New(&buf, report.WithoutColor())

	_, err := checks.HeaderVerbose(context.Background(), e, r, []string{"stdio.h", "stdlib.h"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "headers stdio.h, stdlib.h")
}

func TestLibraryVerbose_MessageForms(t *testing.T) {
	t.Parallel()

	e := probe.New(testutil.FakeToolchain(t))

	cases := []struct {
		libraries []string
		functions []string
		want      string
	}{
		{nil, []string{"printf"}, "--- Checking for function printf... "},
		{[]string{"z"}, []string{"inflate"}, "--- Checking for function inflate in library z... "},
		{[]string{"z", "m"}, []string{"inflate", "sin"}, "--- Checking for functions inflate, sin in libraries z, m... "},
	}
	for _, tt := range cases {
		var buf bytes.Buffer
		r := report.New(&buf, report.WithoutColor())
		_, err := checks.LibraryVerbose(context.Background(), e, r, tt.libraries, tt.functions)
		require.NoError(t, err)
		assert.Equal(t, tt.want+"found\n", buf.String())
	}
}

func TestProgram_FindsShellAndMissesNonsense(t *testing.T) {
	t.Parallel()

	path, ok := checks.Program("sh")
	assert.True(t, ok)
	assert.NotEmpty(t, path)

	_, ok = checks.Program("definitely-not-a-real-program-xyz")
	assert.False(t, ok)
}

func TestProgramFirst_ReturnsFirstMatch(t *testing.T) {
	t.Parallel()

	path, ok := checks.ProgramFirst([]string{"definitely-not-a-real-program-xyz", "sh"})
	require.True(t, ok)
	assert.NotEmpty(t, path)
}

func TestProgramVerbose_PrintsLocationOrNotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := report.New(&buf, report.WithoutColor())

	path, ok := checks.ProgramVerbose(r, []string{"sh"})
	require.True(t, ok)
	assert.Equal(t, "--- Checking for program sh... "+path+"\n", buf.String())

	buf.Reset()
	_, ok = checks.ProgramVerbose(r, []string{"definitely-not-a-real-program-xyz"})
	assert.False(t, ok)
	assert.Equal(t, "--- Checking for program definitely-not-a-real-program-xyz... NOT found\n", buf.String())
}

// The remaining tests exercise a real C toolchain and assert only what any
// standard C environment guarantees. They skip when no compiler is on PATH.

func TestHeader_RealToolchain(t *testing.T) {
	t.Parallel()

	e := probe.New(testutil.RequireCC(t))
	ctx := context.Background()

	found, err := checks.Header(ctx, e, []string{"stdio.h"})
	require.NoError(t, err)
	assert.True(t, found, "stdio.h must exist in any standard C environment")

	found, err = checks.Header(ctx, e, []string{"definitely_missing_header_xyz.h"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLibrary_RealToolchain(t *testing.T) {
	t.Parallel()

	e := probe.New(testutil.RequireCC(t))
	ctx := context.Background()

	found, err := checks.Library(ctx, e, nil, []string{"printf"})
	require.NoError(t, err)
	assert.True(t, found, "printf must resolve against the default runtime")

	found, err = checks.Library(ctx, e, []string{"nonexistent_lib_xyz"}, []string{"foo"})
	require.NoError(t, err)
	assert.False(t, found)
}
