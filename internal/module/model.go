package module

import "github.com/zclconf/go-cty/cty"

// Module is the root of a loaded module data file. Either section may be
// absent. The model is read-only once built; the translator never mutates it.
type Module struct {
	Input  *Input
	Output *Output
}

// Input holds the recognized input sub-sections. A nil field set means the
// sub-section was not present in the source file.
type Input struct {
	Atmosphere Fields
	Aerosols   Fields
	Gases      Fields
	User       Fields
}

// Output holds the recognized output sub-sections.
type Output struct {
	Aerosols Fields
	Gases    Fields
	Metrics  Fields
}

// Field is a single named value within a sub-section. The value stays in its
// cty form; whether it is a scalar or a sequence is decided at translation
// time.
type Field struct {
	Name  string
	Value cty.Value
}

// Fields is an ordered collection of fields. Loaders establish alphabetical
// order by name, which makes repeated translations of the same module
// byte-identical.
type Fields []Field
