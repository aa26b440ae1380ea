package parser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"fnoutline/internal/core/errors"
	"fnoutline/internal/shared/util"
)

// Dialect selects the tree-sitter grammar used for a source file.
type Dialect string

const (
	// DialectJavaScript covers script and module JavaScript plus JSX.
	DialectJavaScript Dialect = "javascript"
	// DialectTypeScript covers TypeScript without JSX.
	DialectTypeScript Dialect = "typescript"
	// DialectTSX covers TypeScript with JSX. Plain JavaScript parses under it
	// as well, which makes it the default.
	DialectTSX Dialect = "tsx"
)

// DefaultDialect is used when no dialect was configured or detected.
const DefaultDialect = DialectTSX

func (d Dialect) Valid() bool {
	switch d {
	case DialectJavaScript, DialectTypeScript, DialectTSX:
		return true
	}
	return false
}

// ParseDialect normalizes a configured dialect name.
func ParseDialect(name string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(name)))
	if d == "" {
		return DefaultDialect, nil
	}
	if !d.Valid() {
		return "", errors.Newf(errors.CodeValidationError, "unknown dialect %q (want javascript, typescript or tsx)", name)
	}
	return d, nil
}

type LanguageSpec struct {
	Dialect    Dialect
	Extensions []string
}

// DefaultLanguageRegistry maps each dialect to the file extensions it owns.
func DefaultLanguageRegistry() map[Dialect]LanguageSpec {
	return map[Dialect]LanguageSpec{
		DialectJavaScript: {
			Dialect:    DialectJavaScript,
			Extensions: []string{".cjs", ".js", ".jsx", ".mjs"},
		},
		DialectTypeScript: {
			Dialect:    DialectTypeScript,
			Extensions: []string{".cts", ".mts", ".ts"},
		},
		DialectTSX: {
			Dialect:    DialectTSX,
			Extensions: []string{".tsx"},
		},
	}
}

// BuildLanguageRegistry applies extension overrides keyed by dialect name on
// top of the defaults. An override replaces the dialect's extension list.
func BuildLanguageRegistry(overrides map[string][]string) (map[Dialect]LanguageSpec, error) {
	registry := cloneLanguageRegistry(DefaultLanguageRegistry())
	for name, exts := range overrides {
		d := Dialect(strings.ToLower(strings.TrimSpace(name)))
		spec, ok := registry[d]
		if !ok {
			return nil, fmt.Errorf("unknown language override %q", name)
		}
		if len(exts) > 0 {
			spec.Extensions = normalizeExtensions(exts)
		}
		registry[d] = spec
	}
	if err := validateLanguageRegistry(registry); err != nil {
		return nil, err
	}
	return registry, nil
}

// DialectForPath resolves a file path to a dialect by extension.
func DialectForPath(registry map[Dialect]LanguageSpec, path string) (Dialect, bool) {
	ext := util.NormalizeExtension(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	for _, d := range util.SortedStringKeys(registry) {
		for _, candidate := range registry[d].Extensions {
			if candidate == ext {
				return d, true
			}
		}
	}
	return "", false
}

func cloneLanguageRegistry(in map[Dialect]LanguageSpec) map[Dialect]LanguageSpec {
	out := make(map[Dialect]LanguageSpec, len(in))
	for d, spec := range in {
		spec.Extensions = append([]string(nil), spec.Extensions...)
		out[d] = spec
	}
	return out
}

func validateLanguageRegistry(registry map[Dialect]LanguageSpec) error {
	owner := make(map[string]Dialect)
	for _, d := range util.SortedStringKeys(registry) {
		for _, ext := range registry[d].Extensions {
			if existing, ok := owner[ext]; ok && existing != d {
				return fmt.Errorf("duplicate extension %q owned by %q and %q", ext, existing, d)
			}
			owner[ext] = d
		}
	}
	return nil
}

func normalizeExtensions(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if ext := util.NormalizeExtension(v); ext != "" {
			out = append(out, ext)
		}
	}
	out = util.UniqueStrings(out)
	sort.Strings(out)
	return out
}
