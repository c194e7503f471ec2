package checks

import (
	"os/exec"

	"github.com/autoprobe/autoprobe/internal/report"
)

// Program searches the process's executable search path for name and returns
// the first match. It never touches the toolchain. A lookup miss is an
// ordinary negative answer, not an error.
func Program(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// ProgramFirst returns the location of the first of names present on the
// search path. Suites use it for interchangeable tools (cc/gcc/clang,
// make/gmake).
func ProgramFirst(names []string) (string, bool) {
	for _, name := range names {
		if path, ok := Program(name); ok {
			return path, true
		}
	}
	return "", false
}

// ProgramVerbose is ProgramFirst wrapped with progress reporting; the
// located path itself is the positive result text.
func ProgramVerbose(r *report.Reporter, names []string) (string, bool) {
	r.Checking(plural("program", "programs", names))
	path, ok := ProgramFirst(names)
	if ok {
		r.Result(path)
	} else {
		r.Found(false)
	}
	return path, ok
}
