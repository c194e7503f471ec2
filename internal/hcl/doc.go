// Package hcl provides the concrete HCL implementation of the suite loader
// interface defined in the config package. It is responsible for file
// discovery, parsing, and translation of toolchain and check blocks into the
// format-agnostic model.
package hcl
