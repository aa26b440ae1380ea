package parser

import (
	"testing"

	"fnoutline/internal/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLanguageRegistry_Defaults(t *testing.T) {
	registry, err := BuildLanguageRegistry(nil)
	require.NoError(t, err)

	assert.Contains(t, registry[DialectJavaScript].Extensions, ".js")
	assert.Contains(t, registry[DialectTypeScript].Extensions, ".ts")
	assert.Equal(t, []string{".tsx"}, registry[DialectTSX].Extensions)
}

func TestBuildLanguageRegistry_OverrideNormalizes(t *testing.T) {
	registry, err := BuildLanguageRegistry(map[string][]string{
		"JavaScript": {"JS", ".es6", "js"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".es6", ".js"}, registry[DialectJavaScript].Extensions)
}

func TestBuildLanguageRegistry_RejectsDuplicateExtensions(t *testing.T) {
	_, err := BuildLanguageRegistry(map[string][]string{
		"javascript": {".ts"},
	})
	assert.Error(t, err)
}

func TestBuildLanguageRegistry_RejectsUnknownLanguage(t *testing.T) {
	_, err := BuildLanguageRegistry(map[string][]string{
		"coffeescript": {".coffee"},
	})
	assert.Error(t, err)
}

func TestDialectForPath(t *testing.T) {
	registry := DefaultLanguageRegistry()

	cases := []struct {
		path string
		want Dialect
		ok   bool
	}{
		{"src/app.js", DialectJavaScript, true},
		{"src/App.JSX", DialectJavaScript, true},
		{"lib/index.mjs", DialectJavaScript, true},
		{"lib/types.ts", DialectTypeScript, true},
		{"lib/types.d.mts", DialectTypeScript, true},
		{"ui/Button.tsx", DialectTSX, true},
		{"README.md", "", false},
		{"Makefile", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := DialectForPath(registry, tc.path)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDialect, d)

	d, err = ParseDialect(" TypeScript ")
	require.NoError(t, err)
	assert.Equal(t, DialectTypeScript, d)

	_, err = ParseDialect("flow")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidationError))
}
