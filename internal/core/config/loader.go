package config

import (
	"log/slog"
	"os"
	"strings"

	"fnoutline/internal/core/errors"
	"fnoutline/internal/shared/util"

	"github.com/BurntSushi/toml"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.AddContext(errors.Wrap(err, errors.CodeNotFound, "config file not found"), errors.CtxPath, path)
		}
		return nil, errors.AddContext(errors.Wrap(err, errors.CodeInternal, "read config"), errors.CtxPath, path)
	}
	return Parse(string(data))
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		cfg := Default()
		ApplyEnvOverrides(cfg)
		return cfg, validate(cfg)
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	ApplyEnvOverrides(cfg)
	if err := validate(cfg); err != nil {
		return nil, errors.AddContext(err, errors.CtxPath, path)
	}
	return cfg, nil
}

// Parse decodes a TOML document, fills defaults and validates the result.
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "decode config")
	}
	for _, key := range md.Undecoded() {
		slog.Warn("ignoring unknown config key", "key", key.String())
	}

	applyDefaults(&cfg)
	normalize(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.DefaultDialect) == "" {
		cfg.DefaultDialect = "tsx"
	}
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}
	if cfg.Exclude.Dirs == nil {
		cfg.Exclude.Dirs = []string{"node_modules", ".git", "dist"}
	}
	if cfg.Exclude.Files == nil {
		cfg.Exclude.Files = []string{"*.min.js"}
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = defaultWorkers
	}
	if cfg.Scan.MaxFileBytes == 0 {
		cfg.Scan.MaxFileBytes = defaultMaxFileBytes
	}
	if strings.TrimSpace(cfg.Output.Format) == "" {
		cfg.Output.Format = FormatTSV
	}
	if strings.TrimSpace(cfg.Observability.ServiceName) == "" {
		cfg.Observability.ServiceName = defaultServiceName
	}
}

func normalize(cfg *Config) {
	cfg.DefaultDialect = strings.ToLower(strings.TrimSpace(cfg.DefaultDialect))
	cfg.Paths = util.UniqueStrings(cfg.Paths)
	cfg.Exclude.Dirs = util.UniqueStrings(cfg.Exclude.Dirs)
	cfg.Exclude.Files = util.UniqueStrings(cfg.Exclude.Files)
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Observability.MetricsAddr = strings.TrimSpace(cfg.Observability.MetricsAddr)
	cfg.Observability.OTLPEndpoint = strings.TrimSpace(cfg.Observability.OTLPEndpoint)
	for name, lang := range cfg.Languages {
		exts := make([]string, 0, len(lang.Extensions))
		for _, ext := range lang.Extensions {
			if ext = util.NormalizeExtension(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		lang.Extensions = util.UniqueStrings(exts)
		cfg.Languages[name] = lang
	}
}
