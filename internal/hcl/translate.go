package hcl

import (
	"sort"

	"github.com/vk/nclbridge/internal/module"
	"github.com/vk/nclbridge/internal/schema"
)

// translateModule converts the HCL-specific module schema into the agnostic
// model.
func (l *Loader) translateModule(root *schema.ModuleFile) (*module.Module, error) {
	mod := &module.Module{}

	if root.Input != nil {
		in := &module.Input{}
		var err error
		if in.Atmosphere, err = l.translateFields(root.Input.Atmosphere); err != nil {
			return nil, err
		}
		if in.Aerosols, err = l.translateFields(root.Input.Aerosols); err != nil {
			return nil, err
		}
		if in.Gases, err = l.translateFields(root.Input.Gases); err != nil {
			return nil, err
		}
		if in.User, err = l.translateFields(root.Input.User); err != nil {
			return nil, err
		}
		mod.Input = in
	}

	if root.Output != nil {
		out := &module.Output{}
		var err error
		if out.Aerosols, err = l.translateFields(root.Output.Aerosols); err != nil {
			return nil, err
		}
		if out.Gases, err = l.translateFields(root.Output.Gases); err != nil {
			return nil, err
		}
		if out.Metrics, err = l.translateFields(root.Output.Metrics); err != nil {
			return nil, err
		}
		mod.Output = out
	}

	return mod, nil
}

// translateFields extracts the attributes of a sub-section body into an
// ordered field list. Names are sorted so repeated runs over the same module
// produce byte-identical output.
func (l *Loader) translateFields(block *schema.FieldBody) (module.Fields, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make(module.Fields, 0, len(names))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		fields = append(fields, module.Field{Name: name, Value: val})
	}
	return fields, nil
}
