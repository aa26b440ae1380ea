package parser

import (
	"sync"
	"sync/atomic"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ParserPool recycles tree-sitter parsers for one grammar. A *sitter.Parser
// is not safe for concurrent use, so each extraction leases its own.
//
//	sp := pool.Get()
//	defer pool.Put(sp)
//	tree := sp.Parse(source, nil)
type ParserPool struct {
	lang   *sitter.Language
	pool   sync.Pool
	leased atomic.Int64
}

// NewParserPool creates a pool for the given grammar. The language must stay
// valid for the lifetime of the pool.
func NewParserPool(lang *sitter.Language) *ParserPool {
	p := &ParserPool{lang: lang}
	p.pool.New = func() any {
		sp := sitter.NewParser()
		sp.SetLanguage(lang)
		return sp
	}
	return p
}

// Get leases a parser configured for the pool's grammar.
func (p *ParserPool) Get() *sitter.Parser {
	sp := p.pool.Get().(*sitter.Parser)
	// Reset() clears the language on some binding versions.
	sp.SetLanguage(p.lang)
	p.leased.Add(1)
	return sp
}

// Put resets sp and returns it to the pool. Callers must not use sp after
// calling Put. Trees produced by sp remain valid until closed.
func (p *ParserPool) Put(sp *sitter.Parser) {
	if sp == nil {
		return
	}
	p.leased.Add(-1)
	sp.Reset()
	p.pool.Put(sp)
}

// Stats returns the number of parsers currently leased.
func (p *ParserPool) Stats() int {
	return int(p.leased.Load())
}
