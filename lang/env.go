package lang

import "iter"

// Environment is the per-parse table of named values declared in a
// document's ENV section. It is populated while the parser collects the
// ENV section and read-only once the body section begins.
//
// An Environment is scoped to a single parse call. It is never shared
// between calls, so concurrent parses of independent documents cannot
// interfere with one another.
type Environment struct {
	names  []string
	values map[string]string
}

// define binds name to value. A repeated name takes the new value.
func (e *Environment) define(name, value string) {
	if e.values == nil {
		e.values = make(map[string]string)
	}

	if _, exists := e.values[name]; !exists {
		e.names = append(e.names, name)
	}

	e.values[name] = value
}

// Lookup returns the value bound to name.
// Returns ("", false) if name is not defined.
func (e *Environment) Lookup(name string) (string, bool) {
	if e == nil {
		return "", false
	}

	v, ok := e.values[name]

	return v, ok
}

// Len returns the number of defined names.
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}

	return len(e.names)
}

// All returns an iterator over definitions in declaration order.
func (e *Environment) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if e == nil {
			return
		}

		for _, name := range e.names {
			if !yield(name, e.values[name]) {
				return
			}
		}
	}
}
