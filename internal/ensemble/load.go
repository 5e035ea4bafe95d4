package ensemble

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/nclbridge/internal/ctxlog"
)

// specFile mirrors the YAML layout of an ensemble specification.
type specFile struct {
	Process      map[string]string                        `yaml:"process"`
	Timestepping *timesteppingSection                     `yaml:"timestepping"`
	Ensemble     *ensembleSection                         `yaml:"ensemble"`
	Atmosphere   map[string]float64                       `yaml:"atmosphere"`
	Aerosols     map[string]map[string]map[string]float64 `yaml:"aerosols"`
	Gases        map[string]float64                       `yaml:"gases"`
}

type timesteppingSection struct {
	Dt        *float64 `yaml:"dt"`
	TotalTime *float64 `yaml:"total_time"`
}

// ensembleSection holds the swept parameter values, grouped the same way the
// reference sections are. Unrecognized groups are ignored.
type ensembleSection struct {
	Atmosphere map[string][]float64                       `yaml:"atmosphere"`
	Aerosols   map[string]map[string]map[string][]float64 `yaml:"aerosols"`
	Gases      map[string][]float64                       `yaml:"gases"`
}

// atmosphereParams are the reference values every spec must provide.
var atmosphereParams = []string{
	"temperature",
	"pressure",
	"relative_humidity",
	"height",
	"hydrostatic_dp",
	"planetary_boundary_layer_height",
}

// LoadSpec reads a YAML ensemble specification from the given path. The
// modelImpl argument names the entry expected in the process section
// (normally DefaultModelImpl).
func LoadSpec(ctx context.Context, path string, modelImpl string) (*Spec, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Ensemble spec loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw specFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ensemble spec %s: %w", path, err)
	}

	spec := &Spec{
		Reference: Input{
			Atmosphere: make(map[string]float64),
			Aerosols:   make(map[string]float64),
			Gases:      make(map[string]float64),
		},
		Sweeps: make(map[string][]float64),
	}

	if raw.Process == nil {
		return nil, errors.New("did not find a valid process section")
	}
	process, ok := raw.Process[modelImpl]
	if !ok {
		return nil, fmt.Errorf("%q entry not found in process section", modelImpl)
	}
	spec.Process = process

	if raw.Timestepping == nil {
		return nil, errors.New("did not find a valid timestepping section")
	}
	if raw.Timestepping.Dt == nil {
		return nil, errors.New("'dt' not found in timestepping section")
	}
	if raw.Timestepping.TotalTime == nil {
		return nil, errors.New("'total_time' not found in timestepping section")
	}
	spec.Reference.Dt = *raw.Timestepping.Dt
	spec.Reference.TotalTime = *raw.Timestepping.TotalTime

	if raw.Ensemble == nil {
		return nil, errors.New("did not find a valid ensemble section")
	}
	if err := parseSweeps(raw.Ensemble, spec.Sweeps); err != nil {
		return nil, err
	}

	if raw.Atmosphere == nil {
		return nil, errors.New("did not find a valid atmosphere section")
	}
	for _, name := range atmosphereParams {
		value, ok := raw.Atmosphere[name]
		if !ok {
			return nil, fmt.Errorf("did not find %q in the atmosphere section", name)
		}
		spec.Reference.Atmosphere[name] = value
	}

	if raw.Aerosols == nil {
		return nil, errors.New("did not find a valid aerosols section")
	}
	for mode, groups := range raw.Aerosols {
		for group, species := range groups {
			if group != "cloud" && group != "interstitial" {
				continue
			}
			if _, ok := species["number_conc"]; !ok {
				return nil, fmt.Errorf("did not find 'number_conc' in %s %q mode", group, mode)
			}
			for name, value := range species {
				spec.Reference.Aerosols[group+"."+mode+"."+name] = value
			}
		}
	}

	if raw.Gases == nil {
		return nil, errors.New("did not find a valid gases section")
	}
	for name, value := range raw.Gases {
		spec.Reference.Gases[name] = value
	}

	logger.Debug("Ensemble spec loaded.", "process", spec.Process, "swept_parameters", len(spec.Sweeps))
	return spec, nil
}

// parseSweeps flattens the ensemble section into dotted parameter names and
// applies the sweep value encoding to each.
func parseSweeps(section *ensembleSection, sweeps map[string][]float64) error {
	for name, values := range section.Atmosphere {
		param := groupAtmosphere + name
		expanded, err := expandValues(param, values)
		if err != nil {
			return err
		}
		sweeps[param] = expanded
	}

	for mode, groups := range section.Aerosols {
		for group, species := range groups {
			if group != "cloud" && group != "interstitial" {
				return fmt.Errorf("invalid entry in parameter 'aerosols:%s': %s", mode, group)
			}
			for name, values := range species {
				param := groupAerosols + group + "." + mode + "." + name
				expanded, err := expandValues(param, values)
				if err != nil {
					return err
				}
				sweeps[param] = expanded
			}
		}
	}

	for name, values := range section.Gases {
		param := groupGases + name
		expanded, err := expandValues(param, values)
		if err != nil {
			return err
		}
		sweeps[param] = expanded
	}

	return nil
}

// expandValues applies the sweep value encoding: a 3-element sequence
// [start, stop, step] with step <= stop is an arithmetic ramp from start to
// stop; any other sequence is a literal list of values. A 3-element sequence
// whose first value is not below its second, or whose step is not positive,
// is rejected.
func expandValues(param string, values []float64) ([]float64, error) {
	if len(values) != 3 {
		return values, nil
	}

	start, stop, step := values[0], values[1], values[2]
	if start >= stop {
		return nil, fmt.Errorf("invalid values for %q: second must be greater than first", param)
	}
	if step > stop {
		// Three ascending values, taken literally.
		return values, nil
	}
	if step <= 0 {
		return nil, fmt.Errorf("invalid values for %q: step must be positive", param)
	}

	n := int((stop-start)/step) + 1
	ramp := make([]float64, n)
	for j := range ramp {
		ramp[j] = start + float64(j)*step
	}
	return ramp, nil
}
