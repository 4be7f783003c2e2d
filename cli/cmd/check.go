package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jtl-lang/jtl/lang"
	"github.com/jtl-lang/jtl/log"
)

// Check validates documents without printing them.
type Check struct {
	Paths []string `arg:"" default:"-" help:"Input file(s) or '-' for stdin" name:"path" optional:""`
}

// Run executes the check command. The first invalid document aborts the
// run with its parse error, after printing a source snippet marking the
// offending statement when its position is known.
func (c *Check) Run(ctx context.Context) error {
	for _, path := range c.Paths {
		src, err := readSource(path)
		if err != nil {
			return lang.ErrReadInput.Wrap(err).
				With(slog.String("source", sourceLabel(path)))
		}

		doc, err := lang.ParseString(ctx, src,
			lang.WithLogger(log.Default()),
		)
		if err != nil {
			perr := &lang.Error{}
			if errors.As(err, &perr) {
				if pos, ok := perr.Position(); ok {
					fmt.Fprint(os.Stderr, lang.FormatSnippet(src, pos))
				}
			}

			return lang.WrapError(err).
				With(slog.String("source", sourceLabel(path)))
		}

		log.InfoContext(ctx, "document valid",
			slog.String("source", sourceLabel(path)),
			slog.Int("elements", doc.Len()),
		)
	}

	return nil
}
