// Package schema defines the HCL decoding structures for module data files.
package schema

import "github.com/hashicorp/hcl/v2"

// FieldBody holds the raw attribute body of a sub-section block. Field names
// and values are extracted from it by the loader, so the set of fields inside
// a sub-section stays open-ended.
type FieldBody struct {
	Body hcl.Body `hcl:",remain"`
}

// InputSection is the `input` block of a module file. Only the recognized
// sub-section blocks are decoded.
type InputSection struct {
	Atmosphere *FieldBody `hcl:"atmosphere,block"`
	Aerosols   *FieldBody `hcl:"aerosols,block"`
	Gases      *FieldBody `hcl:"gases,block"`
	User       *FieldBody `hcl:"user,block"`
	Body       hcl.Body   `hcl:",remain"`
}

// OutputSection is the `output` block of a module file.
type OutputSection struct {
	Aerosols *FieldBody `hcl:"aerosols,block"`
	Gases    *FieldBody `hcl:"gases,block"`
	Metrics  *FieldBody `hcl:"metrics,block"`
	Body     hcl.Body   `hcl:",remain"`
}

// ModuleFile is the top-level structure of a module data file.
type ModuleFile struct {
	Input  *InputSection  `hcl:"input,block"`
	Output *OutputSection `hcl:"output,block"`
	Body   hcl.Body       `hcl:",remain"`
}
