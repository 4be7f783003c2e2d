// Package log provides structured logging for jtl built on log/slog.
//
// A [Logger] wraps *slog.Logger with a small configuration surface:
// minimum level (including a Trace level below slog's Debug), text or
// JSON output, timestamp layout, caller information, and a colorized
// pretty text handler for terminals.
//
// Loggers are immutable values. [Make] creates a logger from functional
// options, and [Logger.Wrap] derives a reconfigured copy. The zero
// Logger is valid and discards all messages, which lets library code
// accept a Logger without nil checks.
//
// Package-level functions (Info, Error, ...) write through a process
// default logger configured with [Config].
package log
