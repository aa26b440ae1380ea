// Package outline extracts the named, invocable declarations of a JavaScript
// or TypeScript source text: function declarations, function and arrow
// expressions bound to a variable or object property, class methods and
// object methods.
//
// Extraction is a pure function of the input. Syntax errors never fail it;
// the parser recovers and whatever could be recognized is returned.
package outline

import (
	"log/slog"
	"sort"
	"sync"

	"fnoutline/internal/core/errors"
	"fnoutline/internal/engine/parser"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Extractor outlines source text of one dialect. It is safe for concurrent
// use; parsers are leased from a pool per call.
type Extractor struct {
	parser  *parser.Parser
	dialect parser.Dialect
}

type Option func(*Extractor)

// WithDialect selects the grammar. The default is parser.DefaultDialect.
func WithDialect(d parser.Dialect) Option {
	return func(e *Extractor) { e.dialect = d }
}

// WithParser shares an existing parser (and its pools) between extractors.
func WithParser(p *parser.Parser) Option {
	return func(e *Extractor) { e.parser = p }
}

func New(opts ...Option) (*Extractor, error) {
	e := &Extractor{dialect: parser.DefaultDialect}
	for _, opt := range opts {
		opt(e)
	}
	if !e.dialect.Valid() {
		return nil, errors.AddContext(errors.New(errors.CodeValidationError, "unknown dialect"), errors.CtxDialect, string(e.dialect))
	}
	if e.parser == nil {
		loader, err := parser.NewGrammarLoader()
		if err != nil {
			return nil, err
		}
		e.parser = parser.NewParser(loader)
	}
	return e, nil
}

func (e *Extractor) Dialect() parser.Dialect {
	return e.dialect
}

// Extract returns the declarations of src sorted by name line.
func (e *Extractor) Extract(src []byte) []Declaration {
	return e.Analyze(src).Declarations
}

// Analyze is Extract plus parse diagnostics.
func (e *Extractor) Analyze(src []byte) Result {
	tree, err := e.parser.Parse(e.dialect, src)
	if err != nil {
		return Result{Declarations: []Declaration{}}
	}
	defer tree.Close()

	root := tree.RootNode()
	return Result{
		Declarations: collect(root, src),
		Recovered:    root.HasError(),
	}
}

func collect(root *sitter.Node, src []byte) []Declaration {
	w := &walker{src: src, out: []Declaration{}}
	if root != nil {
		w.walk(root)
	}
	sort.SliceStable(w.out, func(i, j int) bool {
		return w.out[i].NameLine < w.out[j].NameLine
	})
	return w.out
}

var (
	defaultOnce      sync.Once
	defaultExtractor *Extractor
)

// Extract outlines src with the default dialect.
func Extract(src []byte) []Declaration {
	defaultOnce.Do(func() {
		defaultExtractor = loadDefault(New)
	})
	if defaultExtractor == nil {
		return []Declaration{}
	}
	return defaultExtractor.Extract(src)
}

// loadDefault builds the shared extractor. A failure is logged here once;
// Extract then returns empty outlines.
func loadDefault(build func(...Option) (*Extractor, error)) *Extractor {
	e, err := build()
	if err != nil {
		slog.Error("default extractor unavailable", "error", err)
		return nil
	}
	return e
}
