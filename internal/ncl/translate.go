package ncl

import (
	"context"
	"io"
	"strings"

	"github.com/vk/nclbridge/internal/ctxlog"
	"github.com/vk/nclbridge/internal/module"
)

// Variable name prefixes, fixed by the naming convention of the downstream
// NCL scripts.
const (
	PrefixAtmosphere  = "atm"
	PrefixAerosolsIn  = "aero_in"
	PrefixGasesIn     = "gases_in"
	PrefixUser        = "user"
	PrefixAerosolsOut = "aero_out"
	PrefixGasesOut    = "gases_out"
	PrefixMetrics     = "metrics"
)

// separator marks field names reserved for internal bookkeeping. Fields whose
// name contains it are never emitted.
const separator = "_"

// Translate walks the module and writes one NCL variable declaration per
// field to the given stream. Sections are visited in a fixed order (input:
// atmosphere, aerosols, gases, user; output: aerosols, gases, metrics), so
// translating the same module twice yields byte-identical output. The first
// write or type failure aborts the run.
func Translate(ctx context.Context, mod *module.Module, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	w := NewWriter(out)

	if mod.Input != nil {
		if err := writeFields(w, PrefixAtmosphere, mod.Input.Atmosphere); err != nil {
			return err
		}
		if err := writeFields(w, PrefixAerosolsIn, mod.Input.Aerosols); err != nil {
			return err
		}
		if err := writeFields(w, PrefixGasesIn, mod.Input.Gases); err != nil {
			return err
		}
		if err := writeFields(w, PrefixUser, mod.Input.User); err != nil {
			return err
		}
	}

	if mod.Output != nil {
		if err := writeFields(w, PrefixAerosolsOut, mod.Output.Aerosols); err != nil {
			return err
		}
		if err := writeFields(w, PrefixGasesOut, mod.Output.Gases); err != nil {
			return err
		}
		if err := writeFields(w, PrefixMetrics, mod.Output.Metrics); err != nil {
			return err
		}
	}

	logger.Debug("Module translated.")
	return nil
}

// writeFields emits one declaration per field under the given prefix,
// skipping names that contain the separator.
func writeFields(w *Writer, prefix string, fields module.Fields) error {
	for _, f := range fields {
		if strings.Contains(f.Name, separator) {
			continue
		}
		if err := w.WriteVariable(prefix+separator+f.Name, f.Value); err != nil {
			return err
		}
	}
	return nil
}
