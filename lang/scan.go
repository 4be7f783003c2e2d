package lang

import (
	"iter"
	"log/slog"
	"strings"
)

// Header is the fixed first line required of every JTL document.
const Header = "DOCTYPE=JTL"

// commentPrefix marks an inline comment statement.
const commentPrefix = ">//>"

// commentLinePrefixes mark whole lines that are discarded before
// statement scanning.
var commentLinePrefixes = []string{"/*", "*/", commentPrefix}

// statement is one semicolon-terminated unit of JTL source, trimmed of
// surrounding whitespace, with the position of its first character.
type statement struct {
	text string
	pos  Position
}

// splitHeader verifies the document header and returns the remaining
// source along with the position at which it begins.
func splitHeader(src string) (string, Position, error) {
	first, rest, found := strings.Cut(src, "\n")

	if strings.TrimSpace(first) != Header {
		return "", Position{}, ErrMissingHeader.With(
			slog.String("want", Header),
			slog.String("line", strings.TrimSpace(first)),
		)
	}

	pos := Position{Offset: len(first) + 1, Line: 2, Column: 1}
	if !found {
		rest = ""
	}

	return rest, pos, nil
}

// blankComments replaces each comment line with same-length whitespace so
// that statement positions in the remaining text are unaffected.
func blankComments(src string) string {
	lines := strings.Split(src, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range commentLinePrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				lines[i] = strings.Repeat(" ", len(line))

				break
			}
		}
	}

	return strings.Join(lines, "\n")
}

// statements returns a lazy sequence of trimmed statements in src, which
// begins at position pos of the original document. The terminator is
// stripped, statements that are empty after trimming are skipped, and a
// trailing statement without a terminator is yielded as-is. With
// comments enabled, statements beginning with ">//>" are skipped and end
// at the line break if unterminated. The sequence is finite and
// single-use.
func statements(src string, pos Position, comments bool) iter.Seq[statement] {
	return func(yield func(statement) bool) {
		var (
			line      = pos.Line
			lineStart = pos.Offset - (pos.Column - 1)
			start     = -1 // index in src of first non-space statement byte
			startPos  Position
		)

		emit := func(end int) bool {
			if start < 0 {
				return true
			}

			text := strings.TrimRight(src[start:end], " \t\r\n")
			start = -1

			if text == "" {
				return true
			}

			if comments && strings.HasPrefix(text, commentPrefix) {
				return true
			}

			return yield(statement{text: text, pos: startPos})
		}

		for i := 0; i < len(src); i++ {
			switch c := src[i]; {
			case c == ';':
				if !emit(i) {
					return
				}

			case c == '\n':
				// An unterminated inline comment ends at the line break
				// rather than swallowing the following statement.
				if comments && start >= 0 &&
					strings.HasPrefix(src[start:i], commentPrefix) {
					start = -1
				}

				line++
				lineStart = pos.Offset + i + 1

			case start < 0 && !isSpace(c):
				start = i
				startPos = Position{
					Offset: pos.Offset + i,
					Line:   line,
					Column: pos.Offset + i - lineStart + 1,
				}
			}
		}

		emit(len(src))
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
