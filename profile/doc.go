// Package profile provides optional runtime profiling for the jtl
// command.
//
// It wraps [github.com/pkg/profile] behind the "pprof" build tag. When
// built without the tag (the default), every operation is a no-op with
// zero runtime overhead, and the command exposes no profiling flags.
//
// When built with the tag, the supported modes are listed by [Modes]
// and selected through the command's --pprof-mode flag. Profile files
// are written to the directory given by --pprof-dir with names matching
// the mode (e.g. cpu.pprof), ready for go tool pprof.
package profile
