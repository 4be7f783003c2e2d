package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	base := NewError("base message")

	if base.Error() != "base message" {
		t.Errorf("Error() = %q", base.Error())
	}

	wrapped := base.Wrap(errors.New("cause"))
	if wrapped.Error() != "base message: cause" {
		t.Errorf("Error() = %q", wrapped.Error())
	}

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost identity")
	}
}

func TestError_SentinelIdentity(t *testing.T) {
	// Derived errors still match their sentinel with errors.Is.
	derived := ErrUndefinedEnvReference.
		With(slog.String("name", "foo")).
		WithStatement(statement{
			text: ">k>$env:foo",
			pos:  Position{Offset: 10, Line: 3, Column: 1},
		})

	if !errors.Is(derived, ErrUndefinedEnvReference) {
		t.Error("derived error does not match sentinel")
	}

	if errors.Is(derived, ErrMalformedElementLine) {
		t.Error("derived error matches wrong sentinel")
	}

	// A further wrap through fmt still matches.
	twice := fmt.Errorf("outer: %w", derived)
	if !errors.Is(twice, ErrUndefinedEnvReference) {
		t.Error("fmt-wrapped error does not match sentinel")
	}
}

func TestError_Position(t *testing.T) {
	st := statement{
		text: ">k>$env:foo",
		pos:  Position{Offset: 10, Line: 3, Column: 2},
	}

	err := ErrUndefinedEnvReference.WithStatement(st)

	pos, ok := err.Position()
	if !ok {
		t.Fatal("position not carried")
	}

	if pos != st.pos {
		t.Errorf("position = %+v, want %+v", pos, st.pos)
	}

	// Position survives further annotation and wrapping.
	annotated := err.With(slog.String("extra", "attr")).Wrap(errors.New("cause"))

	if pos, ok := annotated.Position(); !ok || pos != st.pos {
		t.Errorf("annotated position = (%+v, %v)", pos, ok)
	}

	if _, ok := NewError("plain").Position(); ok {
		t.Error("plain error carries a position")
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrMalformedElementLine.
		Wrap(errors.New("cause")).
		With(slog.String("segment", "bad"))

	val := err.LogValue()
	if val.Kind() != slog.KindGroup {
		t.Fatalf("kind = %v, want group", val.Kind())
	}

	found := map[string]bool{}
	for _, attr := range val.Group() {
		found[attr.Key] = true
	}

	for _, key := range []string{"error", "cause", "segment"} {
		if !found[key] {
			t.Errorf("attribute %q missing from log value", key)
		}
	}
}

func TestWrapError(t *testing.T) {
	plain := errors.New("plain")

	wrapped := WrapError(plain)
	if !errors.Is(wrapped, plain) {
		t.Error("wrapped error lost cause")
	}

	// Wrapping an Error returns it unchanged.
	if got := WrapError(ErrMissingHeader); got != ErrMissingHeader {
		t.Error("WrapError re-wrapped an Error")
	}
}

func TestFormatSnippet(t *testing.T) {
	src := "DOCTYPE=JTL\n>>>ENV;\nbadline;\n>>>BEGIN;"

	snippet := FormatSnippet(src, Position{Offset: 20, Line: 3, Column: 1})

	if !strings.Contains(snippet, "3 | badline;") {
		t.Errorf("snippet missing source line:\n%s", snippet)
	}

	lines := strings.Split(strings.TrimRight(snippet, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("snippet has %d lines, want 2:\n%s", len(lines), snippet)
	}

	caret := strings.IndexByte(lines[1], '^')
	source := strings.Index(lines[0], "badline;")

	if caret != source {
		t.Errorf("caret at column %d, source starts at %d:\n%s",
			caret, source, snippet)
	}
}

func TestFormatSnippet_OutOfRange(t *testing.T) {
	if got := FormatSnippet("one line", Position{Line: 9}); got != "" {
		t.Errorf("expected empty snippet, got %q", got)
	}

	if got := FormatSnippet("one line", Position{Line: 0}); got != "" {
		t.Errorf("expected empty snippet, got %q", got)
	}
}
