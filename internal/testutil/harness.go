// Package testutil provides helpers for exercising the probe engine in
// tests without a real C compiler. The fake toolchain is a POSIX shell
// script that honors the flag shapes the executor emits, so every stage and
// cleanup path can be driven hermetically and deterministically.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/autoprobe/autoprobe/internal/toolchain"
)

// Markers understood by the fake compiler. A probe source containing one of
// these fails the corresponding stage.
const (
	MarkCompileFail = "PROBE_FAIL_COMPILE"
	MarkLinkFail    = "PROBE_FAIL_LINK"
)

// fakeCC mimics a C compiler driver. Sources containing MarkCompileFail fail
// the compile stage and MarkLinkFail the link stage. Lines beginning with
// "//run:" become the body of the produced executable, so run-depth tests
// can script arbitrary exit codes and output.
const fakeCC = `#!/bin/sh
out=""
src=""
compile_only=0
while [ $# -gt 0 ]; do
	case "$1" in
	-o|-out) out="$2"; shift ;;
	-c) compile_only=1 ;;
	-*) ;;
	*) src="$1" ;;
	esac
	shift
done
[ -n "$src" ] || exit 64
grep -q PROBE_FAIL_COMPILE "$src" && exit 1
if [ "$compile_only" = 1 ]; then
	cp "$src" "$out"
	exit 0
fi
grep -q PROBE_FAIL_LINK "$src" && exit 1
{
	printf '#!/bin/sh\n'
	sed -n 's|^//run:||p' "$src"
} > "$out"
chmod +x "$out"
exit 0
`

// FakeToolchain writes the fake compiler into a temp directory and returns a
// combined-stage toolchain configuration pointing at it, with a dedicated
// scratch directory so tests can assert the cleanup property by listing it.
func FakeToolchain(t *testing.T) *toolchain.Toolchain {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain is a POSIX shell script")
	}

	dir := t.TempDir()
	binary := filepath.Join(dir, "fakecc")
	if err := os.WriteFile(binary, []byte(fakeCC), 0o755); err != nil {
		t.Fatalf("writing fake compiler: %v", err)
	}

	tc := toolchain.Default()
	tc.Binary = binary
	tc.WorkDir = t.TempDir()
	return tc
}

// FakeToolchainTwoStage is FakeToolchain with distinct compile and link
// output flags, forcing the executor down the explicit object-then-link
// path. The fake compiler accepts -out as the link output flag.
func FakeToolchainTwoStage(t *testing.T) *toolchain.Toolchain {
	t.Helper()
	tc := FakeToolchain(t)
	tc.LinkOutputFlag = "-out"
	return tc
}

// ScratchFiles lists the names currently present in the toolchain's scratch
// directory. An empty result after a probe is the cleanup guarantee.
func ScratchFiles(t *testing.T, tc *toolchain.Toolchain) []string {
	t.Helper()
	entries, err := os.ReadDir(tc.WorkDir)
	if err != nil {
		t.Fatalf("reading scratch dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
