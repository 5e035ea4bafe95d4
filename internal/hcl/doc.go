// Package hcl provides the concrete HCL implementation of module data file
// loading. It is responsible for file parsing, HCL-to-model translation, and
// establishing the stable field order the translator relies on.
package hcl
