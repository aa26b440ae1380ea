package formats

import (
	"strings"

	"fnoutline/internal/engine/outline"
)

func contextColumns(d outline.Declaration) (kind, name string) {
	if d.Context == nil {
		return "", ""
	}
	return string(d.Context.Kind), d.Context.Name
}

var tsvReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func escapeTSV(s string) string {
	return tsvReplacer.Replace(s)
}

var markdownReplacer = strings.NewReplacer("|", "\\|", "\r", " ", "\n", " ")

func escapeMarkdownCell(s string) string {
	return markdownReplacer.Replace(s)
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
