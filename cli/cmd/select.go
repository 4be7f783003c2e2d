package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	"github.com/jtl-lang/jtl/lang"
	"github.com/jtl-lang/jtl/log"
)

// Select prints the elements matching a predicate expression.
type Select struct {
	Where string `help:"Predicate expression applied to each element (e.g. 'KEY == \"login\"')" required:"" short:"w"`

	Paths []string `arg:"" default:"-" help:"Input file(s) or '-' for stdin" name:"path" optional:""`
}

// Run executes the select command. The predicate is compiled once and
// evaluated against every element of every document; matches print as a
// single JSON array.
func (s *Select) Run(ctx context.Context) error {
	program, err := lang.CompilePredicate(s.Where)
	if err != nil {
		return err
	}

	matched := make([]*lang.Element, 0)

	for _, path := range s.Paths {
		doc, err := parsePath(ctx, path)
		if err != nil {
			return err
		}

		els, err := doc.Select(ctx, program)
		if err != nil {
			return lang.WrapError(err).
				With(slog.String("source", sourceLabel(path)))
		}

		log.DebugContext(ctx, "predicate applied",
			slog.String("source", sourceLabel(path)),
			slog.Int("matched", len(els)),
		)

		matched = append(matched, els...)
	}

	data, err := json.MarshalIndent(matched, "", "  ")
	if err != nil {
		return lang.WrapError(err)
	}

	fmt.Fprintln(os.Stdout, string(data))

	return nil
}
