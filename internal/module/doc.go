// Package module defines the format-agnostic model of a simulation data
// module: two optional sections (input and output) holding named groups of
// numeric fields. It is the single source of truth for the `ncl` translator;
// concrete file formats are parsed into it by separate packages.
package module
