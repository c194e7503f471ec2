package hcl

import "github.com/autoprobe/autoprobe/internal/config"

// translateToolchain converts the HCL toolchain schema into the agnostic model.
func translateToolchain(b *toolchainBlock) *config.ToolchainConfig {
	return &config.ToolchainConfig{
		Compiler:    b.Compiler,
		Flags:       b.Flags,
		IncludeDirs: b.IncludeDirs,
		LinkFlags:   b.LinkFlags,
		WorkDir:     b.WorkDir,
	}
}

// translateCheck converts the HCL check schema into the agnostic model. The
// body stays undecoded; the executor decodes it against the handler's input
// struct once earlier outcomes are available in the evaluation context.
func translateCheck(b *checkBlock) *config.Check {
	return &config.Check{
		Kind:     b.Kind,
		Name:     b.Name,
		Required: b.Required,
		Body:     b.Body,
		Range:    b.Body.MissingItemRange(),
	}
}
