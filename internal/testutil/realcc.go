package testutil

import (
	"os/exec"
	"testing"

	"github.com/autoprobe/autoprobe/internal/toolchain"
)

// RequireCC returns a toolchain bound to a real C compiler found on PATH,
// skipping the test when none is installed. Tests using it probe the actual
// host environment, so they only assert facts any standard C toolchain
// guarantees.
func RequireCC(t *testing.T) *toolchain.Toolchain {
	t.Helper()
	for _, name := range []string{"cc", "gcc", "clang"} {
		if path, err := exec.LookPath(name); err == nil {
			tc := toolchain.Default()
			tc.Binary = path
			tc.WorkDir = t.TempDir()
			return tc
		}
	}
	t.Skip("no C compiler on PATH")
	return nil
}
