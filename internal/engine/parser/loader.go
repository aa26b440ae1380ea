package parser

import (
	"sort"

	"fnoutline/internal/core/errors"
	"fnoutline/internal/shared/util"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// GrammarLoader owns the compiled tree-sitter grammars for every dialect and
// the extension registry used to pick one for a path.
type GrammarLoader struct {
	languages map[Dialect]*sitter.Language
	registry  map[Dialect]LanguageSpec
}

func NewGrammarLoader() (*GrammarLoader, error) {
	return NewGrammarLoaderWithRegistry(nil)
}

func NewGrammarLoaderWithRegistry(registry map[Dialect]LanguageSpec) (*GrammarLoader, error) {
	if registry == nil {
		registry = DefaultLanguageRegistry()
	}
	if err := validateLanguageRegistry(registry); err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "invalid language registry")
	}

	gl := &GrammarLoader{
		languages: make(map[Dialect]*sitter.Language, len(registry)),
		registry:  cloneLanguageRegistry(registry),
	}
	for _, d := range util.SortedStringKeys(gl.registry) {
		switch d {
		case DialectJavaScript:
			gl.languages[d] = sitter.NewLanguage(tree_sitter_javascript.Language())
		case DialectTypeScript:
			gl.languages[d] = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
		case DialectTSX:
			gl.languages[d] = sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
		default:
			return nil, errors.AddContext(errors.New(errors.CodeNotSupported, "no grammar for dialect"), errors.CtxDialect, string(d))
		}
	}
	return gl, nil
}

// Language returns the grammar for d.
func (gl *GrammarLoader) Language(d Dialect) (*sitter.Language, error) {
	lang, ok := gl.languages[d]
	if !ok || lang == nil {
		return nil, errors.AddContext(errors.New(errors.CodeNotSupported, "grammar not loaded"), errors.CtxDialect, string(d))
	}
	return lang, nil
}

func (gl *GrammarLoader) Dialects() []Dialect {
	return util.SortedStringKeys(gl.languages)
}

func (gl *GrammarLoader) DialectForPath(path string) (Dialect, bool) {
	return DialectForPath(gl.registry, path)
}

func (gl *GrammarLoader) IsSupportedPath(path string) bool {
	_, ok := gl.DialectForPath(path)
	return ok
}

func (gl *GrammarLoader) SupportedExtensions() []string {
	set := make(map[string]bool)
	for _, spec := range gl.registry {
		for _, ext := range spec.Extensions {
			set[ext] = true
		}
	}
	out := make([]string, 0, len(set))
	for ext := range set {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
