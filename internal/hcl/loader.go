package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tickseq/internal/config"
	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/vk/tickseq/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL script loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and collects their actions
// in file order, then declaration order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Actions {
			action, err := translateAction(block, file)
			if err != nil {
				return nil, nil, err
			}
			model.Actions = append(model.Actions, action)
		}
		logger.Debug("Loaded HCL file.", "file", file, "actions", len(root.Actions))
	}

	logger.Debug("HCL loading complete.", "actions", len(model.Actions))
	return model, NewConverter(), nil
}

// translateAction converts the HCL-specific action block into the agnostic model.
func translateAction(b *actionBlock, file string) (*config.Action, error) {
	attrs, diags := b.Arguments.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("action '%s' in %s: %w", b.Name, file, diags)
	}

	args := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		args[name] = attr.Expr
	}

	return &config.Action{
		Kind:      b.Kind,
		Name:      b.Name,
		Arguments: args,
		DependsOn: b.DependsOn,
		Source:    file,
	}, nil
}
