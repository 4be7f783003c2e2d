package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/jtl-lang/jtl/lang"
	"github.com/jtl-lang/jtl/log"
)

// Parse parses documents and prints them in a structured format.
type Parse struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format"              short:"f"`
	Indent int    `default:"2"                     help:"Indent width for JSON output" short:"i"`

	Paths []string `arg:"" default:"-" help:"Input file(s) or '-' for stdin" name:"path" optional:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) error {
	for _, path := range p.Paths {
		doc, err := parsePath(ctx, path)
		if err != nil {
			return err
		}

		data, err := p.render(doc)
		if err != nil {
			return lang.WrapError(err).
				With(slog.String("source", sourceLabel(path)))
		}

		fmt.Fprintln(os.Stdout, string(data))
	}

	return nil
}

// render marshals a document in the selected output format.
func (p *Parse) render(doc *lang.Document) ([]byte, error) {
	if p.Format == "yaml" {
		return yaml.Marshal(doc.ToNative())
	}

	if p.Indent > 0 {
		return json.MarshalIndent(doc, "", spaces(p.Indent))
	}

	return json.Marshal(doc)
}

func spaces(n int) string {
	const width = "        "

	if n > len(width) {
		n = len(width)
	}

	return width[:n]
}

// parsePath reads and parses one source, logging progress.
func parsePath(ctx context.Context, path string) (*lang.Document, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, lang.ErrReadInput.Wrap(err).
			With(slog.String("source", sourceLabel(path)))
	}

	doc, err := lang.ParseString(ctx, src,
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return nil, lang.WrapError(err).
			With(slog.String("source", sourceLabel(path)))
	}

	log.DebugContext(ctx, "parsed document",
		slog.String("source", sourceLabel(path)),
		slog.Int("elements", doc.Len()),
	)

	return doc, nil
}
