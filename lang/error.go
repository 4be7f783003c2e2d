package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrMissingHeader          = NewError("missing or invalid header")
	ErrUnexpectedDirective    = NewError("unexpected directive")
	ErrUnexpectedStatement    = NewError("unexpected statement")
	ErrMalformedEnvAssignment = NewError("malformed environment assignment")
	ErrMalformedElementLine   = NewError("malformed element line")
	ErrUndefinedEnvReference  = NewError("undefined environment reference")
	ErrUnterminatedSection    = NewError("unterminated section")
	ErrReadInput              = NewError("failed to read input")
	ErrPredicateCompile       = NewError("predicate compilation failed")
	ErrPredicateEvaluate      = NewError("predicate evaluation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	pos   *Position   // Offending statement position, if known
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a sentinel this error was derived from.
// Derived errors produced by [Error.With], [Error.Wrap], and
// [Error.WithStatement] share their sentinel's message, which serves as
// the identity for errors.Is.
func (e *Error) Is(target error) bool {
	te := &Error{}
	if !errors.As(target, &te) {
		return false
	}

	return e.msg == te.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		pos:   e.pos,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		pos:   e.pos,
	}
}

// WithStatement annotates the error with the offending statement text and
// its position in the source.
func (e *Error) WithStatement(st statement) *Error {
	ee := e.With(
		slog.String("statement", st.text),
		slog.Int("line", st.pos.Line),
		slog.Int("column", st.pos.Column),
		slog.Int("offset", st.pos.Offset),
	)
	ee.pos = &st.pos

	return ee
}

// Position returns the position of the offending statement.
// Returns (Position{}, false) if the error carries no position.
func (e *Error) Position() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}

	return *e.pos, true
}

// Position identifies a statement's location in its source document.
// Offset is a byte offset from the start of the document; Line and Column
// are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// FormatSnippet renders the source line at pos with a caret marking the
// position, for terminal-friendly error reports:
//
//	  4 | >key="value">element_id>$env:baz
//	      ^
func FormatSnippet(source string, pos Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	line := lines[pos.Line-1]
	num := strconv.Itoa(pos.Line)

	var buf strings.Builder

	buf.WriteString("  ")
	buf.WriteString(num)
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := len(num) + 5
	if pos.Column > 0 {
		padding += pos.Column - 1
	}

	buf.WriteString(strings.Repeat(" ", padding) + "^\n")

	return buf.String()
}
