package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompilePredicate compiles an expr-lang boolean expression for use with
// [Document.Select]. Attribute names of an element are visible as
// top-level variables; attributes absent from an element evaluate to nil.
func CompilePredicate(source string) (*vm.Program, error) {
	program, err := expr.Compile(source,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, ErrPredicateCompile.Wrap(err).
			With(slog.String("predicate", source))
	}

	return program, nil
}

// Select returns the elements for which the compiled predicate is true,
// in body order. The predicate runs against each element's attribute map,
// so expressions like these work as expected:
//
//	KEY == "element_id"
//	Content != "" && lang == "en"
func (d *Document) Select(
	ctx context.Context,
	program *vm.Program,
) ([]*Element, error) {
	var matched []*Element

	for el := range d.All() {
		result, err := expr.Run(program, el.ToNative())
		if err != nil {
			return nil, ErrPredicateEvaluate.Wrap(err).
				With(
					slog.String("key", el.Key()),
					slog.Int("line", el.Pos().Line),
				)
		}

		if ok, _ := result.(bool); ok {
			matched = append(matched, el)
		}
	}

	return matched, nil
}

// SelectString compiles source and selects matching elements in one call.
func (d *Document) SelectString(
	ctx context.Context,
	source string,
) ([]*Element, error) {
	program, err := CompilePredicate(source)
	if err != nil {
		return nil, err
	}

	return d.Select(ctx, program)
}
