package parser

import (
	"testing"

	"fnoutline/internal/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	loader, err := NewGrammarLoader()
	require.NoError(t, err)
	return NewParser(loader)
}

func TestGrammarLoader_AllDialects(t *testing.T) {
	loader, err := NewGrammarLoader()
	require.NoError(t, err)

	assert.Equal(t, []Dialect{DialectJavaScript, DialectTSX, DialectTypeScript}, loader.Dialects())
	for _, d := range loader.Dialects() {
		lang, err := loader.Language(d)
		require.NoError(t, err)
		assert.NotNil(t, lang)
	}

	_, err = loader.Language("coffeescript")
	assert.True(t, errors.IsCode(err, errors.CodeNotSupported))
}

func TestGrammarLoader_Paths(t *testing.T) {
	loader, err := NewGrammarLoader()
	require.NoError(t, err)

	assert.True(t, loader.IsSupportedPath("a/b/c.tsx"))
	assert.False(t, loader.IsSupportedPath("a/b/c.py"))
	assert.Contains(t, loader.SupportedExtensions(), ".mjs")
}

func TestParser_ParseEachDialect(t *testing.T) {
	p := newTestParser(t)

	cases := map[Dialect]string{
		DialectJavaScript: "const el = <div onClick={() => go()} />\n",
		DialectTypeScript: "function add(a: number, b: number): number { return a + b }\n",
		DialectTSX:        "const C = (p: Props) => <span>{p.x}</span>\n",
	}
	for d, src := range cases {
		t.Run(string(d), func(t *testing.T) {
			tree, err := p.Parse(d, []byte(src))
			require.NoError(t, err)
			defer tree.Close()

			root := tree.RootNode()
			assert.Equal(t, "program", root.Kind())
			assert.False(t, root.HasError(), root.ToSexp())
			assert.Equal(t, 0, p.Leased(d))
		})
	}
}

func TestParser_RecoversFromSyntaxErrors(t *testing.T) {
	p := newTestParser(t)

	tree, err := p.Parse(DialectTSX, []byte("function broken( {\n  const x = \nclass {"))
	require.NoError(t, err)
	defer tree.Close()

	assert.True(t, tree.RootNode().HasError())
}

func TestParser_UnsupportedDialect(t *testing.T) {
	p := newTestParser(t)

	_, err := p.Parse("coffeescript", []byte("x = 1"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotSupported))
}
