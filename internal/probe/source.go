package probe

import (
	"fmt"
	"os"
	"strings"
)

// sourceSuffix is the suffix of synthesized probe sources.
const sourceSuffix = ".c"

// Materialize writes programText to a uniquely named scratch file in dir
// (the system temporary directory when dir is empty). The file begins with a
// banner comment recording the command that will consume it, so a failed
// probe can be reproduced by hand while debugging a suite.
//
// It returns the source path and the stem from which the object and
// executable paths are derived (same directory, same unique base name,
// toolchain-appropriate suffixes). Concurrent calls never collide: the
// operating system picks the unique name.
func Materialize(dir, command, programText string) (path string, stem string, err error) {
	f, err := os.CreateTemp(dir, "probe-*"+sourceSuffix)
	if err != nil {
		return "", "", fmt.Errorf("creating probe source: %w", err)
	}

	banner := fmt.Sprintf("/* Synthesized probe source.\n   Command: %s */\n", command)
	if _, err := f.WriteString(banner + programText); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", "", fmt.Errorf("writing probe source: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", "", fmt.Errorf("closing probe source: %w", err)
	}

	path = f.Name()
	stem = strings.TrimSuffix(path, sourceSuffix)
	return path, stem, nil
}
