package lang

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/jtl-lang/jtl/log"
)

// Section directives.
const (
	dirPrefix = ">>>"
	dirEnv    = dirPrefix + "ENV"
	dirBegin  = dirPrefix + "BEGIN"
	dirEnd    = dirPrefix + "END"
)

// section is a state of the parser's section automaton.
type section int

const (
	sectionAwaitingEnv   section = iota // AwaitingEnvSection
	sectionCollectingEnv                // CollectingEnv
	sectionBody                         // InBody
	sectionDone                         // Done
)

// String returns the state name used in error reports.
func (s section) String() string {
	switch s {
	case sectionAwaitingEnv:
		return "AwaitingEnvSection"
	case sectionCollectingEnv:
		return "CollectingEnv"
	case sectionBody:
		return "InBody"
	case sectionDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Document is the ordered sequence of elements parsed from one JTL
// document. Elements appear in body-section order; elements with equal
// keys are never merged. A Document is an immutable snapshot: it is
// created once per parse call and has no mutation API.
type Document struct {
	elements []*Element
}

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.elements)
}

// Element returns the i'th element in body order.
func (d *Document) Element(i int) *Element {
	return d.elements[i]
}

// All returns an iterator over elements in body order.
func (d *Document) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if d == nil {
			return
		}

		for _, el := range d.elements {
			if !yield(el) {
				return
			}
		}
	}
}

// ParseReader parses a JTL document from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	// Wrap reader with async read-ahead for concurrent I/O.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a complete JTL document from a string.
//
// On success it returns the full document; on failure, exactly one
// descriptive error and no document. There is no partial result.
func ParseString(
	ctx context.Context,
	src string,
	opts ...Option,
) (*Document, error) {
	cfg := makeOptions(opts...)

	rest, pos, err := splitHeader(src)
	if err != nil {
		return nil, err
	}

	if cfg.comments {
		rest = blankComments(rest)
	}

	p := &parser{
		env:    new(Environment),
		doc:    new(Document),
		state:  sectionAwaitingEnv,
		logger: cfg.logger,
	}

	for st := range statements(rest, pos, cfg.comments) {
		if err := p.consume(ctx, st); err != nil {
			return nil, err
		}
	}

	if p.state != sectionDone {
		return nil, ErrUnterminatedSection.With(
			slog.String("state", p.state.String()),
		)
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("element_count", p.doc.Len()),
		slog.Int("env_count", p.env.Len()),
	)

	return p.doc, nil
}

// parser holds the per-call parse state. The environment table and the
// document under construction are local to one invocation.
type parser struct {
	env    *Environment
	doc    *Document
	state  section
	logger log.Logger
}

// consume advances the automaton by one statement. The automaton is
// strict, single-pass, and non-backtracking: no statement is revisited,
// and any statement outside its expected state is fatal.
func (p *parser) consume(ctx context.Context, st statement) error {
	switch {
	case st.text == dirEnv:
		if p.state != sectionAwaitingEnv {
			return p.unexpected(st)
		}

		p.state = sectionCollectingEnv

	case st.text == dirBegin:
		if p.state != sectionCollectingEnv {
			return p.unexpected(st)
		}

		p.state = sectionBody

	case st.text == dirEnd:
		if p.state != sectionBody {
			return p.unexpected(st)
		}

		p.state = sectionDone

	case strings.HasPrefix(st.text, dirPrefix):
		if p.state != sectionCollectingEnv {
			return p.unexpected(st)
		}

		return p.defineEnv(ctx, st)

	default:
		if p.state != sectionBody {
			return ErrUnexpectedStatement.WithStatement(st).
				With(slog.String("state", p.state.String()))
		}

		el, err := parseElement(st, p.env)
		if err != nil {
			return err
		}

		p.doc.elements = append(p.doc.elements, el)
	}

	return nil
}

// defineEnv handles one ENV-section assignment: >>>name=value.
// The value is taken verbatim; no quotes are required or stripped.
func (p *parser) defineEnv(ctx context.Context, st statement) error {
	name, value, found := strings.Cut(
		strings.TrimPrefix(st.text, dirPrefix), "=",
	)
	if !found {
		return ErrMalformedEnvAssignment.WithStatement(st)
	}

	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	p.env.define(name, value)

	p.logger.TraceContext(ctx, "env defined",
		slog.String("name", name),
		slog.String("value", value),
	)

	return nil
}

// unexpected reports a directive encountered outside its expected state.
func (p *parser) unexpected(st statement) error {
	return ErrUnexpectedDirective.WithStatement(st).
		With(slog.String("state", p.state.String()))
}
