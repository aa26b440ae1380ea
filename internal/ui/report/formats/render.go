package formats

import (
	"fnoutline/internal/core/errors"
	"fnoutline/internal/core/ports"
	"strings"
)

// Generator renders a run result in one output format.
type Generator interface {
	Generate(res ports.RunResult) (string, error)
}

// NewGenerator returns the generator for format (tsv, json or markdown).
func NewGenerator(format, version string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "tsv":
		return NewTSVGenerator(), nil
	case "json":
		return NewJSONGenerator(), nil
	case "markdown", "md":
		return NewMarkdownGenerator(MarkdownReportOptions{Version: version}), nil
	default:
		return nil, errors.AddContext(errors.Newf(errors.CodeNotSupported, "unknown output format %q", format), errors.CtxField, "output.format")
	}
}

// Render is NewGenerator followed by Generate.
func Render(format, version string, res ports.RunResult) (string, error) {
	gen, err := NewGenerator(format, version)
	if err != nil {
		return "", err
	}
	return gen.Generate(res)
}
