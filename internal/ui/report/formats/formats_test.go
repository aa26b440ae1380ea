package formats

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"fnoutline/internal/core/errors"
	"fnoutline/internal/core/ports"
	"fnoutline/internal/engine/outline"
	"fnoutline/internal/engine/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() ports.RunResult {
	return ports.RunResult{
		RunID: "run-1",
		Files: []ports.FileOutline{
			{
				Path:    "src/config.js",
				Dialect: parser.DialectJavaScript,
				Declarations: []outline.Declaration{
					{Name: "greet", Kind: outline.KindArrowFunction, NameLine: 1, NameColumn: 11, EndLine: 1},
					{Name: "start", Kind: outline.KindObjectMethod, NameLine: 3, NameColumn: 9, EndLine: 5,
						Context: &outline.Context{Kind: outline.ContextObject, Name: "config.server"}},
				},
			},
			{
				Path:      "src/anon.ts",
				Dialect:   parser.DialectTypeScript,
				Recovered: true,
				Declarations: []outline.Declaration{
					{Name: "run", Kind: outline.KindClassMethod, NameLine: 2, NameColumn: 5, EndLine: 2,
						Context: &outline.Context{Kind: outline.ContextClass}},
				},
			},
			{Path: "src/empty.tsx", Dialect: parser.DialectTSX, Declarations: []outline.Declaration{}},
		},
		Warnings: []string{"outline big.js: too large"},
	}
}

func TestTSVGenerator(t *testing.T) {
	out, err := NewTSVGenerator().Generate(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "File\tName\tKind\tNameLine\tNameColumn\tEndLine\tContextKind\tContextName", lines[0])
	assert.Equal(t, "src/config.js\tgreet\tArrowFunctionExpression\t1\t11\t1\t\t", lines[1])
	assert.Equal(t, "src/config.js\tstart\tObjectMethod\t3\t9\t5\tObject\tconfig.server", lines[2])
	assert.Equal(t, "src/anon.ts\trun\tClassMethod\t2\t5\t2\tClass\t", lines[3])
}

func TestTSVGenerator_EscapesTabs(t *testing.T) {
	res := ports.RunResult{Files: []ports.FileOutline{{
		Path:         "dir\twith tab/a.js",
		Declarations: []outline.Declaration{{Name: "f", Kind: outline.KindFunctionDeclaration, NameLine: 1, EndLine: 1}},
	}}}
	out, err := NewTSVGenerator().Generate(res)
	require.NoError(t, err)
	assert.Contains(t, out, "dir with tab/a.js\tf\t")
}

func TestJSONGenerator(t *testing.T) {
	out, err := NewJSONGenerator().Generate(sampleResult())
	require.NoError(t, err)

	var decoded struct {
		RunID string `json:"runId"`
		Files []struct {
			Path         string           `json:"path"`
			Recovered    bool             `json:"recovered"`
			Declarations []map[string]any `json:"declarations"`
		} `json:"files"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Files, 3)
	assert.True(t, decoded.Files[1].Recovered)

	first := decoded.Files[0].Declarations[0]
	assert.Equal(t, "greet", first["name"])
	assert.Equal(t, float64(11), first["nameColumn"])
	assert.NotContains(t, first, "context")

	anon := decoded.Files[1].Declarations[0]["context"].(map[string]any)
	assert.Equal(t, "Class", anon["kind"])
	assert.NotContains(t, anon, "name")

	empty, err := NewJSONGenerator().Generate(ports.RunResult{RunID: "x"})
	require.NoError(t, err)
	assert.Contains(t, empty, `"files": []`)
}

func TestMarkdownGenerator(t *testing.T) {
	gen := NewMarkdownGenerator(MarkdownReportOptions{
		Version:     "1.2.3",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	out, err := gen.Generate(sampleResult())
	require.NoError(t, err)

	assert.Contains(t, out, "generated_at: 2026-01-02T03:04:05Z\n")
	assert.Contains(t, out, "version: 1.2.3\n")
	assert.Contains(t, out, "| Declarations | 3 |\n")
	assert.Contains(t, out, "| ObjectMethod | 1 |\n")
	assert.Contains(t, out, "| `config.server.start` | ObjectMethod | 3 | 9 | 5 | Object config.server |\n")
	assert.Contains(t, out, "| `run` | ClassMethod | 2 | 5 | 2 | Class (anonymous) |\n")
	assert.Contains(t, out, "| `greet` | ArrowFunctionExpression | 1 | 11 | 1 | - |\n")
	assert.Contains(t, out, "_typescript, recovered from syntax errors_")
	assert.Contains(t, out, "## src/empty.tsx\n_tsx_\n\nNo declarations.\n")
	assert.Contains(t, out, "## Warnings\n- outline big.js: too large\n")
}

func TestRender(t *testing.T) {
	for _, format := range []string{"tsv", "JSON", "markdown", "md", ""} {
		out, err := Render(format, "dev", sampleResult())
		require.NoError(t, err, format)
		assert.NotEmpty(t, out)
	}

	_, err := Render("yaml", "dev", sampleResult())
	assert.True(t, errors.IsCode(err, errors.CodeNotSupported))
}
