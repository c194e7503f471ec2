// Package checks answers specific questions about the build environment:
// whether headers parse, whether symbols resolve against libraries, and
// whether programs exist on the search path. Header and library checks
// synthesize a program and delegate to a derived probe; the program check
// bypasses the toolchain entirely.
//
// Each check is a single-shot boolean decision with no state beyond
// reporting and the probe's transient scratch files. Running a check at most
// once per suite is the caller's memoization concern, not this package's.
package checks
