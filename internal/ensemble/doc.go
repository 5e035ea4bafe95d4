// Package ensemble implements the producer side of the pipeline: it parses a
// YAML ensemble specification (reference simulation inputs plus swept
// parameters), expands the sweeps into individual ensemble members via a
// cartesian parameter walk, and serializes the result as a module data file
// for the translator.
package ensemble
