package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/nclbridge/internal/ctxlog"
	"github.com/vk/nclbridge/internal/module"
	"github.com/vk/nclbridge/internal/schema"
)

// Loader parses HCL module data files into the format-agnostic model.
type Loader struct{}

// NewLoader creates a new HCL module file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile parses a single module data file and translates it into the model.
func (l *Loader) LoadFile(ctx context.Context, path string) (*module.Module, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Module loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse module file %s: %w", path, diags)
	}

	var root schema.ModuleFile
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode module file %s: %w", path, diags)
	}

	mod, err := l.translateModule(&root)
	if err != nil {
		return nil, fmt.Errorf("failed to translate module file %s: %w", path, err)
	}

	logger.Debug("Module file loaded.", "path", path,
		"has_input", mod.Input != nil, "has_output", mod.Output != nil)
	return mod, nil
}
