// Package ncl implements the translation of a module data model into NCAR
// Command Language (NCL) source text. Every numeric field in the model
// becomes one named variable declaration in the output stream. For more
// information about NCL, see https://www.ncl.ucar.edu.
package ncl
