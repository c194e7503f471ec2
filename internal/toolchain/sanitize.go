package toolchain

import "strings"

// warningsAsErrors lists the exact spellings, across driver families, of the
// switch that promotes warnings to hard errors.
var warningsAsErrors = map[string]struct{}{
	"-Werror":      {},
	"/WX":          {},
	"--warn-error": {},
}

// Sanitize returns a copy of flags with every warnings-as-errors spelling
// removed. A probe tests whether something is possible, not whether it is
// warning-clean, so the ambient build's strictness policy must not turn a
// probe into a false negative. The relative order of all other flags is
// preserved and the input slice is never mutated. Unrecognized flags pass
// through unchanged.
func Sanitize(flags []string) []string {
	if len(flags) == 0 {
		return nil
	}
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if _, banned := warningsAsErrors[f]; banned {
			continue
		}
		// -Werror=foo promotes one warning; still a policy flag, not a
		// capability flag. -Wno-error=foo is the opposite and passes through.
		if strings.HasPrefix(f, "-Werror=") {
			continue
		}
		out = append(out, f)
	}
	return out
}
