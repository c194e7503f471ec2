package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/autoprobe/autoprobe/internal/config"
	"github.com/autoprobe/autoprobe/internal/ctxlog"
	"github.com/autoprobe/autoprobe/internal/fsutil"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL suite loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .hcl file reachable from the given paths, parses
// them, and merges their blocks into one model. Checks keep their
// declaration order within a file; files are processed in discovery order.
// At most one toolchain block is allowed across the whole suite.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl suite files found under %v", paths)
	}
	logger.Debug("Discovered suite files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	seen := make(map[string]struct{})

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse suite file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode suite file %s: %w", file, diags)
		}

		if root.Toolchain != nil {
			if model.Toolchain != nil {
				return nil, fmt.Errorf("duplicate toolchain block in %s; a suite declares at most one", file)
			}
			model.Toolchain = translateToolchain(root.Toolchain)
		}

		for _, blk := range root.Checks {
			id := blk.Kind + "." + blk.Name
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("duplicate check %q in %s", id, file)
			}
			seen[id] = struct{}{}
			model.Checks = append(model.Checks, translateCheck(blk))
		}
	}

	logger.Debug("HCL loading complete.", "checks", len(model.Checks), "has_toolchain", model.Toolchain != nil)
	return model, nil
}
