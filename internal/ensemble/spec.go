package ensemble

import "strings"

// DefaultModelImpl is the model implementation entry expected in the process
// section of an ensemble spec.
const DefaultModelImpl = "haero"

// Parameter group prefixes for dotted parameter names.
const (
	groupAtmosphere = "atmosphere."
	groupAerosols   = "aerosols."
	groupGases      = "gases."
)

// Spec is the parsed form of a YAML ensemble specification: the process under
// study, the reference input, and the parameter sweeps that generate the
// ensemble.
type Spec struct {
	Process   string
	Reference Input
	Sweeps    map[string][]float64
}

// Input is one member of an ensemble: the reference values with zero or more
// swept parameters overridden. Parameters are addressed by dotted name, e.g.
// "atmosphere.temperature", "gases.SO2" or "aerosols.interstitial.accum.SO4".
type Input struct {
	Dt        float64
	TotalTime float64

	Atmosphere map[string]float64
	Aerosols   map[string]float64
	Gases      map[string]float64
}

// Clone returns a deep copy of the input so ensemble members can be
// overridden independently of the reference.
func (in Input) Clone() Input {
	clone := in
	clone.Atmosphere = make(map[string]float64, len(in.Atmosphere))
	for k, v := range in.Atmosphere {
		clone.Atmosphere[k] = v
	}
	clone.Aerosols = make(map[string]float64, len(in.Aerosols))
	for k, v := range in.Aerosols {
		clone.Aerosols[k] = v
	}
	clone.Gases = make(map[string]float64, len(in.Gases))
	for k, v := range in.Gases {
		clone.Gases[k] = v
	}
	return clone
}

// Set overrides one parameter by dotted name. Names outside the recognized
// groups are ignored.
func (in *Input) Set(param string, value float64) {
	switch {
	case strings.HasPrefix(param, groupAtmosphere):
		in.Atmosphere[strings.TrimPrefix(param, groupAtmosphere)] = value
	case strings.HasPrefix(param, groupAerosols):
		in.Aerosols[strings.TrimPrefix(param, groupAerosols)] = value
	case strings.HasPrefix(param, groupGases):
		in.Gases[strings.TrimPrefix(param, groupGases)] = value
	}
}
