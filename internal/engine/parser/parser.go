package parser

import (
	"fnoutline/internal/core/errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Parser turns source text into a tree-sitter syntax tree. tree-sitter never
// aborts on invalid input: unparseable regions become ERROR or MISSING nodes
// and the rest of the tree is still built.
type Parser struct {
	loader *GrammarLoader
	pools  map[Dialect]*ParserPool
}

func NewParser(loader *GrammarLoader) *Parser {
	p := &Parser{
		loader: loader,
		pools:  make(map[Dialect]*ParserPool),
	}
	for _, d := range loader.Dialects() {
		lang, _ := loader.Language(d)
		p.pools[d] = NewParserPool(lang)
	}
	return p
}

func (p *Parser) Loader() *GrammarLoader {
	return p.loader
}

// Parse parses src with the grammar of d. The caller owns the returned tree
// and must Close it.
func (p *Parser) Parse(d Dialect, src []byte) (*sitter.Tree, error) {
	pool, ok := p.pools[d]
	if !ok {
		return nil, errors.AddContext(errors.New(errors.CodeNotSupported, "unsupported dialect"), errors.CtxDialect, string(d))
	}

	sp := pool.Get()
	defer pool.Put(sp)

	tree := sp.Parse(src, nil)
	if tree == nil {
		return nil, errors.AddContext(errors.New(errors.CodeInternal, "parse failed"), errors.CtxDialect, string(d))
	}
	return tree, nil
}

// Leased reports the number of parsers currently in use for d.
func (p *Parser) Leased(d Dialect) int {
	if pool, ok := p.pools[d]; ok {
		return pool.Stats()
	}
	return 0
}
