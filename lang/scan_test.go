package lang

import (
	"errors"
	"testing"
)

func collect(src string, pos Position, comments bool) []statement {
	var out []statement
	for st := range statements(src, pos, comments) {
		out = append(out, st)
	}

	return out
}

func TestSplitHeader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		rest    string
		wantErr bool
	}{
		{
			name:  "exact header",
			input: "DOCTYPE=JTL\nrest",
			rest:  "rest",
		},
		{
			name:  "header with surrounding whitespace",
			input: "  DOCTYPE=JTL  \nrest",
			rest:  "rest",
		},
		{
			name:  "header only",
			input: "DOCTYPE=JTL",
			rest:  "",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong doctype",
			input:   "DOCTYPE=XML\nrest",
			wantErr: true,
		},
		{
			name:    "header not first",
			input:   "\nDOCTYPE=JTL\nrest",
			wantErr: true,
		},
		{
			name:    "embedded in longer line",
			input:   "XDOCTYPE=JTLX\nrest",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, pos, err := splitHeader(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrMissingHeader) {
					t.Fatalf("expected ErrMissingHeader, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}

			if pos.Line != 2 {
				t.Errorf("pos.Line = %d, want 2", pos.Line)
			}
		})
	}
}

func TestStatements_Splitting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple statements",
			input: "a; b; c;",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty statements skipped",
			input: ";;  ;a;",
			want:  []string{"a"},
		},
		{
			name:  "trailing statement without terminator",
			input: "a; b",
			want:  []string{"a", "b"},
		},
		{
			name:  "whitespace trimmed",
			input: "  a  ;\n\t b \t;",
			want:  []string{"a", "b"},
		},
		{
			name:  "statements span lines",
			input: "a\nb; c;",
			want:  []string{"a\nb", "c"},
		},
		{
			name:  "blank input",
			input: " \n \t \n ",
			want:  nil,
		},
		{
			name:  "inline comment statement skipped",
			input: "a; >//> note; b;",
			want:  []string{"a", "b"},
		},
		{
			name:  "unterminated inline comment ends at line break",
			input: "a; >//> note\nb;",
			want:  []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sts := collect(tt.input, Position{Line: 1, Column: 1}, true)

			if len(sts) != len(tt.want) {
				t.Fatalf("got %d statements, want %d", len(sts), len(tt.want))
			}

			for i, st := range sts {
				if st.text != tt.want[i] {
					t.Errorf("statement %d = %q, want %q", i, st.text, tt.want[i])
				}
			}
		})
	}
}

func TestStatements_Positions(t *testing.T) {
	src := "first;\n  second;\nthird;"
	sts := collect(src, Position{Offset: 0, Line: 1, Column: 1}, true)

	want := []Position{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 9, Line: 2, Column: 3},
		{Offset: 17, Line: 3, Column: 1},
	}

	if len(sts) != len(want) {
		t.Fatalf("got %d statements, want %d", len(sts), len(want))
	}

	for i, st := range sts {
		if st.pos != want[i] {
			t.Errorf("statement %d position = %+v, want %+v", i, st.pos, want[i])
		}
	}
}

func TestStatements_BasePosition(t *testing.T) {
	// A scan starting mid-document carries the base position through.
	sts := collect("a;", Position{Offset: 12, Line: 2, Column: 1}, true)

	if len(sts) != 1 {
		t.Fatalf("got %d statements, want 1", len(sts))
	}

	if sts[0].pos != (Position{Offset: 12, Line: 2, Column: 1}) {
		t.Errorf("position = %+v", sts[0].pos)
	}
}

func TestStatements_Lazy(t *testing.T) {
	// The sequence stops when the consumer does.
	count := 0
	for range statements("a; b; c;", Position{Line: 1, Column: 1}, true) {
		count++

		break
	}

	if count != 1 {
		t.Errorf("consumed %d statements, want 1", count)
	}
}

func TestBlankComments(t *testing.T) {
	src := "keep;\n/* comment\n*/\n>//> note\nalso;"
	got := blankComments(src)

	want := "keep;\n          \n  \n         \nalso;"
	if got != want {
		t.Errorf("blankComments = %q, want %q", got, want)
	}

	if len(got) != len(src) {
		t.Errorf("length changed: %d != %d", len(got), len(src))
	}
}
