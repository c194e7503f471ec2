package hcl

import "github.com/hashicorp/hcl/v2"

// toolchainBlock is the HCL schema of a `toolchain` block.
type toolchainBlock struct {
	Compiler    string   `hcl:"compiler,optional"`
	Flags       []string `hcl:"flags,optional"`
	IncludeDirs []string `hcl:"include_dirs,optional"`
	LinkFlags   []string `hcl:"link_flags,optional"`
	WorkDir     string   `hcl:"work_dir,optional"`
}

// checkBlock is the HCL schema of a `check` block. The kind label selects a
// registered check handler; the remaining body is handler-specific and is
// decoded later, against the suite's evaluation context.
type checkBlock struct {
	Kind     string   `hcl:"kind,label"`
	Name     string   `hcl:"name,label"`
	Required bool     `hcl:"required,optional"`
	Body     hcl.Body `hcl:",remain"`
}

// fileRoot decodes all recognized top-level blocks from any suite file.
type fileRoot struct {
	Toolchain *toolchainBlock `hcl:"toolchain,block"`
	Checks    []*checkBlock   `hcl:"check,block"`
	Remain    hcl.Body        `hcl:",remain"`
}
