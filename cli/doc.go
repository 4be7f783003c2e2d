// Package cli implements the jtl command-line interface.
//
// The interface is declared as a [CLI] struct parsed by kong. Commands
// live in the cmd subpackage; this package wires them together with the
// logging flags and, when built with the pprof tag, the profiling flags.
package cli
