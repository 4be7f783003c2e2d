package lang

import (
	"iter"
	"log/slog"
	"regexp"
	"strings"
)

// Reserved attribute names present on every parsed element.
const (
	// AttrKey holds the element's identifier token.
	AttrKey = "KEY"

	// AttrContent and AttrContents both hold the element's resolved
	// content string. The duplicate alias is intentional, for caller
	// convenience; the two are always equal.
	AttrContent  = "Content"
	AttrContents = "Contents"
)

// envRefPrefix marks a content expression resolved against the
// environment table.
const envRefPrefix = "$env:"

// attrAssign matches one explicit attribute assignment segment. The
// quotes are mandatory and the value is the literal text between them;
// there is no escape processing, so a value cannot contain a quote.
var attrAssign = regexp.MustCompile(`^(\w+)="([^"]*)"$`)

// Element is one parsed body statement: an ordered mapping from
// attribute name to value. Every element carries the reserved attributes
// [AttrKey], [AttrContent], and [AttrContents] in addition to the
// explicit assignments from its line.
type Element struct {
	attrs Object
	pos   Position
}

// Key returns the element's identifier token.
func (e *Element) Key() string {
	v, _ := e.attrs.Get(AttrKey)
	s, _ := v.AsString()

	return s
}

// Content returns the element's resolved content string.
func (e *Element) Content() string {
	v, _ := e.attrs.Get(AttrContent)
	s, _ := v.AsString()

	return s
}

// Get returns the value bound to the named attribute.
// Returns (nil, false) if the attribute is not present.
func (e *Element) Get(name string) (*Value, bool) {
	return e.attrs.Get(name)
}

// Len returns the number of attributes, reserved attributes included.
func (e *Element) Len() int {
	return e.attrs.Len()
}

// Attrs returns an iterator over attributes in insertion order.
func (e *Element) Attrs() iter.Seq2[string, *Value] {
	return e.attrs.All()
}

// Pos returns the position of the element's statement in the source
// document.
func (e *Element) Pos() Position {
	return e.pos
}

// Value returns the element as the object variant of [Value], mirroring
// how elements appear inside a marshalled document.
func (e *Element) Value() *Value {
	return NewObject(&e.attrs)
}

// ToNative converts the element to a native Go map of attribute name to
// attribute value. Insertion order is not represented.
func (e *Element) ToNative() map[string]any {
	return e.attrs.ToNative()
}

// parseElement parses one body statement into an element, resolving its
// content expression against env.
//
// The statement is split on '>'. The last segment is the content
// expression, the second-to-last is the key token, and every earlier
// segment must be an attribute assignment of the form name="value".
// Assignments apply left to right; a repeated name takes the later value.
func parseElement(st statement, env *Environment) (*Element, error) {
	body, found := strings.CutPrefix(st.text, ">")
	if !found {
		return nil, ErrMalformedElementLine.WithStatement(st).
			With(slog.String("reason", "missing '>' prefix"))
	}

	seg := strings.Split(body, ">")
	if len(seg) < 2 {
		return nil, ErrMalformedElementLine.WithStatement(st).
			With(slog.String("reason", "no key/content pair"))
	}

	key, expr := seg[len(seg)-2], seg[len(seg)-1]
	if key == "" || expr == "" {
		return nil, ErrMalformedElementLine.WithStatement(st).
			With(slog.String("reason", "empty key or content"))
	}

	el := &Element{pos: st.pos}

	for _, s := range seg[:len(seg)-2] {
		m := attrAssign.FindStringSubmatch(s)
		if m == nil {
			return nil, ErrMalformedElementLine.WithStatement(st).
				With(
					slog.String("reason", "malformed attribute assignment"),
					slog.String("segment", s),
				)
		}

		el.attrs.Set(m[1], NewString(m[2]))
	}

	content, err := resolveContent(st, expr, env)
	if err != nil {
		return nil, err
	}

	// Reserved attributes are set last so an explicit assignment can
	// never mask them.
	el.attrs.Set(AttrKey, NewString(key))
	el.attrs.Set(AttrContent, NewString(content))
	el.attrs.Set(AttrContents, NewString(content))

	return el, nil
}

// resolveContent resolves a content expression: a $env:NAME reference is
// replaced by the value bound to NAME, and anything else is taken
// verbatim.
func resolveContent(
	st statement,
	expr string,
	env *Environment,
) (string, error) {
	name, found := strings.CutPrefix(expr, envRefPrefix)
	if !found {
		return expr, nil
	}

	value, ok := env.Lookup(name)
	if !ok {
		return "", ErrUndefinedEnvReference.WithStatement(st).
			With(slog.String("name", name))
	}

	return value, nil
}
