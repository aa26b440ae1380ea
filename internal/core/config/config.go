package config

import (
	"fnoutline/internal/engine/parser"
)

const (
	FormatTSV      = "tsv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{FormatTSV, FormatJSON, FormatMarkdown}

type Config struct {
	Version        int                 `toml:"version"`
	DefaultDialect string              `toml:"default_dialect"`
	Paths          []string            `toml:"paths"`
	Languages      map[string]Language `toml:"languages"`
	Exclude        Exclude             `toml:"exclude"`
	Scan           Scan                `toml:"scan"`
	Output         Output              `toml:"output"`
	Observability  Observability       `toml:"observability"`
}

type Language struct {
	Extensions []string `toml:"extensions"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Scan struct {
	Workers        int     `toml:"workers"`
	FilesPerSecond float64 `toml:"files_per_second"`
	MaxFileBytes   int64   `toml:"max_file_bytes"`
}

type Output struct {
	Format string `toml:"format"`
}

type Observability struct {
	MetricsAddr  string `toml:"metrics_addr"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
	ServiceName  string `toml:"service_name"`
}

const (
	defaultWorkers      = 4
	defaultMaxFileBytes = 2 << 20
	defaultServiceName  = "fnoutline"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Dialect returns the parsed default dialect. Load has already validated it.
func (c *Config) Dialect() parser.Dialect {
	d, err := parser.ParseDialect(c.DefaultDialect)
	if err != nil {
		return parser.DefaultDialect
	}
	return d
}

// LanguageOverrides flattens the languages table into the shape
// parser.BuildLanguageRegistry expects.
func (c *Config) LanguageOverrides() map[string][]string {
	if len(c.Languages) == 0 {
		return nil
	}
	out := make(map[string][]string, len(c.Languages))
	for name, lang := range c.Languages {
		out[name] = append([]string(nil), lang.Extensions...)
	}
	return out
}

// LanguageRegistry builds the extension registry for this configuration.
func (c *Config) LanguageRegistry() (map[parser.Dialect]parser.LanguageSpec, error) {
	return parser.BuildLanguageRegistry(c.LanguageOverrides())
}
