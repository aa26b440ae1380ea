package formats

import (
	"fmt"
	"strings"
	"time"

	"fnoutline/internal/core/ports"
	"fnoutline/internal/engine/outline"
)

type MarkdownReportOptions struct {
	Version     string
	GeneratedAt time.Time
}

type MarkdownGenerator struct {
	opts MarkdownReportOptions
}

func NewMarkdownGenerator(opts MarkdownReportOptions) *MarkdownGenerator {
	return &MarkdownGenerator{opts: opts}
}

func (m *MarkdownGenerator) Generate(res ports.RunResult) (string, error) {
	opts := m.opts
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now().UTC()
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: Declaration Outline\n")
	b.WriteString("run_id: " + nonEmpty(res.RunID, "unknown") + "\n")
	b.WriteString("generated_at: " + opts.GeneratedAt.UTC().Format(time.RFC3339) + "\n")
	b.WriteString("version: " + nonEmpty(opts.Version, "unknown") + "\n")
	b.WriteString("---\n\n")

	b.WriteString("# Declaration Outline\n\n")

	counts := make(map[outline.Kind]int)
	total := 0
	for _, file := range res.Files {
		for _, d := range file.Declarations {
			counts[d.Kind]++
			total++
		}
	}

	b.WriteString("## Summary\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("| --- | --- |\n")
	b.WriteString(fmt.Sprintf("| Files | %d |\n", len(res.Files)))
	b.WriteString(fmt.Sprintf("| Declarations | %d |\n", total))
	for _, kind := range outline.Kinds() {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", kind, counts[kind]))
	}
	b.WriteString(fmt.Sprintf("| Warnings | %d |\n\n", len(res.Warnings)))

	for _, file := range res.Files {
		b.WriteString("## " + escapeMarkdownCell(file.Path) + "\n")
		note := string(file.Dialect)
		if file.Recovered {
			note += ", recovered from syntax errors"
		}
		b.WriteString("_" + note + "_\n\n")
		if len(file.Declarations) == 0 {
			b.WriteString("No declarations.\n\n")
			continue
		}
		b.WriteString("| Name | Kind | Line | Column | End | Context |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for _, d := range file.Declarations {
			b.WriteString(fmt.Sprintf("| `%s` | %s | %d | %d | %d | %s |\n",
				escapeMarkdownCell(d.QualifiedName()),
				d.Kind,
				d.NameLine,
				d.NameColumn,
				d.EndLine,
				contextLabel(d),
			))
		}
		b.WriteString("\n")
	}

	if len(res.Warnings) > 0 {
		b.WriteString("## Warnings\n")
		for _, w := range res.Warnings {
			b.WriteString("- " + escapeMarkdownCell(w) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func contextLabel(d outline.Declaration) string {
	kind, name := contextColumns(d)
	if kind == "" {
		return "-"
	}
	if name == "" {
		return kind + " (anonymous)"
	}
	return kind + " " + escapeMarkdownCell(name)
}
