package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecking_HasNoTrailingLineBreak(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(&buf, WithoutColor())

	r.Checking("header stdio.h")
	assert.Equal(t, "--- Checking for header stdio.h... ", buf.String())
}

func TestFound_CompletesTheLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(&buf, WithoutColor())

	r.Checking("x")
	r.Found(true)
	assert.Equal(t, "--- Checking for x... found\n", buf.String())

	buf.Reset()
	r.Checking("y")
	r.Found(false)
	assert.Equal(t, "--- Checking for y... NOT found\n", buf.String())
}

func TestWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(&buf, WithoutColor())

	r.Warn("header %s is deprecated", "old.h")
	assert.Equal(t, "*** WARNING: header old.h is deprecated\n", buf.String())
}

func TestFatal_EmitsTwoLinesAndReturnsError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(&buf, WithoutColor())

	err := r.Fatal("required check %s failed", "library.z")
	require.Error(t, err)
	assert.Equal(t, "required check library.z failed", err.Message)
	assert.Equal(t, "*** ERROR: required check library.z failed\n***\n", buf.String())
}
