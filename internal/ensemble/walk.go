package ensemble

import (
	"fmt"
	"sort"
)

// Walk describes a parameter walk: a reference input and the swept parameter
// values whose cartesian product generates the ensemble.
type Walk struct {
	Reference Input
	Sweeps    map[string][]float64
}

// GatherInputs expands the sweeps into one input per combination, each
// starting from a copy of the reference input. Between 1 and 5 parameters may
// be swept at once. Parameters are ordered by name and the last one varies
// fastest, so member order is stable across runs.
func (w *Walk) GatherInputs() ([]Input, error) {
	names := make([]string, 0, len(w.Sweeps))
	for name := range w.Sweeps {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) < 1 || len(names) > 5 {
		return nil, fmt.Errorf("invalid number of swept parameters (%d, must be 1-5)", len(names))
	}

	total := 1
	for _, name := range names {
		total *= len(w.Sweeps[name])
	}

	inputs := make([]Input, total)
	for l := 0; l < total; l++ {
		in := w.Reference.Clone()
		idx := l
		for i := len(names) - 1; i >= 0; i-- {
			values := w.Sweeps[names[i]]
			in.Set(names[i], values[idx%len(values)])
			idx /= len(values)
		}
		inputs[l] = in
	}
	return inputs, nil
}
